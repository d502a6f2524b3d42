// Package grid implements the fixed-size, row-major 2D container the board
// core lays its Vertex slots over. It never resizes: callers size it once,
// padded by one cell of border on every side, so neighbour reads never run
// off the end of the backing slice.
package grid

// Grid is a width*height contiguous store of T, addressed by a single
// linear index computed by the caller (typically y*stride+x). Bounds
// checking is compiled in only under the "debug" build tag — see
// grid_checked.go / grid_unchecked.go — the usual release/debug
// split for a hot-path container.
type Grid[T any] struct {
	cells []T
}

// New allocates a grid with room for n cells, zero-valued.
func New[T any](n int) *Grid[T] {
	return &Grid[T]{cells: make([]T, n)}
}

// Len returns the number of cells the grid holds.
func (g *Grid[T]) Len() int { return len(g.cells) }

// At returns the value at i.
func (g *Grid[T]) At(i int) T { return g.at(i) }

// Set stores v at i.
func (g *Grid[T]) Set(i int, v T) { g.set(i, v) }

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns an independent copy backed by a fresh slice — a flat
// memcpy, no per-element deep copy, so Board.Clone stays cheap.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{cells: cells}
}

// CopyFrom overwrites g's cells from other's, without allocating. Panics if
// the lengths differ.
func (g *Grid[T]) CopyFrom(other *Grid[T]) {
	if len(g.cells) != len(other.cells) {
		panic("grid: size mismatch in CopyFrom")
	}
	copy(g.cells, other.cells)
}
