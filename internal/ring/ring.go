// Package ring implements the fixed-capacity FIFO used to detect positional
// superko: a small ring of recent position hashes with an O(n) membership
// test, allocated once at construction, never resized.
package ring

// Ring is a fixed-capacity circular buffer of uint32 hash values.
type Ring struct {
	values []uint32
	next   int
}

// New returns a Ring with the given capacity, every slot preloaded with
// fill. Preloading with the empty-board hash means a freshly constructed
// board's superko check behaves uniformly from the very first move,
// without a special case for "not enough history yet".
func New(capacity int, fill uint32) *Ring {
	if capacity <= 0 {
		panic("ring: capacity must be positive")
	}
	values := make([]uint32, capacity)
	for i := range values {
		values[i] = fill
	}
	return &Ring{values: values}
}

// Insert overwrites the oldest slot with v.
func (r *Ring) Insert(v uint32) {
	r.values[r.next] = v
	r.next = (r.next + 1) % len(r.values)
}

// Contains reports whether v is present anywhere in the ring.
func (r *Ring) Contains(v uint32) bool {
	for _, x := range r.values {
		if x == v {
			return true
		}
	}
	return false
}

// Clone returns an independent copy, for Board.Clone.
func (r *Ring) Clone() *Ring {
	values := make([]uint32, len(r.values))
	copy(values, r.values)
	return &Ring{values: values, next: r.next}
}

// CopyFrom overwrites r's contents with other's, without allocating — used
// by MCTS probes that reuse a scratch board across many clones.
func (r *Ring) CopyFrom(other *Ring) {
	copy(r.values, other.values)
	r.next = other.next
}
