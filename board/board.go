// Package board implements the incrementally-maintained Go board core:
// Vertex/Block bookkeeping, legality (including positional superko), play,
// capture and merge, all without ever rescanning the board.
package board

import (
	"iter"

	"github.com/skybrian/goban/internal/grid"
	"github.com/skybrian/goban/internal/ring"
	"github.com/skybrian/goban/internal/zobrist"
)

// historyCapacity is the number of recent positions the superko ring
// remembers. 8 catches every repeat the reference test suite exercises;
// a stricter rule can widen it.
const historyCapacity = 8

// Board owns the padded Vertex grid, the Block arena, the running position
// hash, and the superko history ring. It is the sole owner of all four for
// its lifetime; MCTS works on full clones rather than sharing a Board.
type Board struct {
	width, height int
	stride        int // width + 2, to account for the one-cell border

	vertices *grid.Grid[vertex]
	arena    *arena
	hash     uint32
	history  *ring.Ring
}

// New constructs an empty width x height board: every interior Vertex is
// EMPTY, every border Vertex is INVALID, the hash is the empty-board hash,
// and the superko ring starts preloaded with that same hash so the very
// first move's legality check behaves the same as every later one.
func New(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic("board: width and height must be positive")
	}
	stride := width + 2
	b := &Board{
		width:    width,
		height:   height,
		stride:   stride,
		vertices: grid.New[vertex](stride * (height + 2)),
		arena:    newArena(width * height),
		hash:     zobrist.Empty(),
		history:  ring.New(historyCapacity, zobrist.Empty()),
	}
	for y := 0; y < height+2; y++ {
		for x := 0; x < stride; x++ {
			idx := y*stride + x
			if x == 0 || x == stride-1 || y == 0 || y == height+1 {
				b.vertices.Set(idx, vertex{block: blockInvalid})
			} else {
				b.vertices.Set(idx, vertex{block: blockEmpty})
			}
		}
	}
	return b
}

// Width and Height return the board's interior dimensions.
func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Hash returns the current position hash: the XOR of every live block's
// hash.
func (b *Board) Hash() uint32 { return b.hash }

func (b *Board) index(p Point) int { return p.Y*b.stride + p.X }

func (b *Board) vertexAt(p Point) vertex { return b.vertices.At(b.index(p)) }

func (b *Board) interior(p Point) bool {
	return p.X >= 1 && p.X <= b.width && p.Y >= 1 && p.Y <= b.height
}

// At returns the colour of the stone at an interior point, or None if the
// point is empty or outside the board.
func (b *Board) At(p Point) Color {
	if !b.interior(p) {
		return None
	}
	v := b.vertexAt(p)
	if v.block < 0 {
		return None
	}
	return b.arena.at(v.block).color
}

// Iter yields every interior point in row-major order.
func (b *Board) Iter() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := 1; y <= b.height; y++ {
			for x := 1; x <= b.width; x++ {
				if !yield((Point{X: x, Y: y})) {
					return
				}
			}
		}
	}
}

// neighbourSet is a four-slot linear-probed scratch array used to dedupe
// distinct block ids among a stone's at most four neighbours without
// allocating.
type neighbourSet struct {
	ids [4]blockID
	n   int
}

func (s *neighbourSet) add(id blockID) bool {
	for i := 0; i < s.n; i++ {
		if s.ids[i] == id {
			return false
		}
	}
	s.ids[s.n] = id
	s.n++
	return true
}

// IsLegal reports whether playing c at p is legal: p must be a valid, empty
// interior cell; at least one neighbour must be empty, a friendly group
// with >= 2 liberties, or an enemy group with exactly one liberty (which
// the move would capture); and the resulting hash must not already be in
// the superko ring. The resulting hash is computed without mutating the
// board.
func (b *Board) IsLegal(p Point, c Color) bool {
	if !b.interior(p) {
		return false
	}
	v := b.vertexAt(p)
	if v.block != blockEmpty {
		return false
	}

	var captured neighbourSet
	var capturedHash uint32
	legalShape := false

	for _, nb := range p.Neighbours() {
		nv := b.vertexAt(nb)
		switch {
		case nv.block == blockInvalid:
			// border: neither empty nor a stone, contributes nothing
		case nv.block == blockEmpty:
			legalShape = true
		default:
			blk := b.arena.at(nv.block)
			if blk.color == c {
				if blk.liberties >= 2 {
					legalShape = true
				}
			} else if blk.liberties == 1 {
				legalShape = true
				if captured.add(nv.block) {
					capturedHash ^= blk.hash
				}
			}
		}
	}

	if !legalShape {
		return false
	}

	resultHash := b.hash ^ pointHash(p, c) ^ capturedHash
	return !b.history.Contains(resultHash)
}

func colorBit(c Color) zobrist.ColorBit {
	if c == White {
		return zobrist.WhiteBit
	}
	return zobrist.BlackBit
}

func pointHash(p Point, c Color) uint32 {
	return zobrist.Hash(p.X, p.Y, colorBit(c))
}

// Play applies the move, assuming IsLegal(p, c) already returned true;
// behaviour is undefined if that precondition doesn't hold. Debug builds
// assert only that p is an empty interior point; the rest of the legality
// test is not re-checked here. Effects happen in the order
// allocate the new stone's singleton block, XOR in
// its hash, then for each distinct neighbouring block either capture it
// (if enemy with one liberty), decrement its liberties (enemy otherwise),
// or merge it (friendly), before recording the new hash in the superko
// ring.
func (b *Board) Play(p Point, c Color) {
	assertf(b.interior(p), "board: Play called on non-interior point %v", p)
	v := b.vertexAt(p)
	assertf(v.block == blockEmpty, "board: Play called on occupied point %v", p)

	libs := 0
	for _, nb := range p.Neighbours() {
		if b.vertexAt(nb).block == blockEmpty {
			libs++
		}
	}

	id := b.arena.insert(block{head: p, color: c, liberties: libs, hash: pointHash(p, c)})
	b.setVertex(p, vertex{next: p, block: id})
	b.hash ^= pointHash(p, c)

	var seen neighbourSet
	for _, nb := range p.Neighbours() {
		nv := b.vertexAt(nb)
		switch {
		case nv.block < 0:
			continue
		default:
			if !seen.add(nv.block) {
				continue
			}
			blk := b.arena.at(nv.block)
			if blk.color == c {
				id = b.merge(nv.block, id)
				continue
			}
			if blk.liberties == 1 {
				b.hash ^= b.capture(nv.block)
			} else {
				blk.liberties--
			}
		}
	}

	b.history.Insert(b.hash)
}

func (b *Board) setVertex(p Point, v vertex) { b.vertices.Set(b.index(p), v) }

// capture walks the group's cyclic chain exactly once, vacating every cell
// and crediting each surviving neighbouring block with at most one extra
// liberty per capturing cell. It returns the captured
// block's hash so the caller can XOR it out of the board hash.
func (b *Board) capture(id blockID) uint32 {
	blk := b.arena.at(id)
	capturedHash := blk.hash
	head := blk.head

	cur := head
	for {
		next := b.vertexAt(cur).next

		var credited neighbourSet
		for _, nb := range cur.Neighbours() {
			nv := b.vertexAt(nb)
			if nv.block >= 0 && nv.block != id && credited.add(nv.block) {
				b.arena.at(nv.block).liberties++
			}
		}

		b.setVertex(cur, vertex{block: blockEmpty})

		if next == head {
			break
		}
		cur = next
	}

	b.arena.remove(id)
	return capturedHash
}

// merge absorbs group a into group into. It walks a's
// original chain once to recompute into's liberties and reassign block
// ids, then splices the two cycles together in O(1) by exchanging two
// next_link pointers. Returns into's id (the surviving group).
func (b *Board) merge(a, into blockID) blockID {
	if a == into {
		return into
	}
	blkA := b.arena.at(a)
	blkInto := b.arena.at(into)

	aHead := blkA.head
	intoHead := blkInto.head
	savedIntoNext := b.vertexAt(intoHead).next
	mergedHash := blkA.hash

	// newLiberties dedupes empty cells that neighbour more than one A cell
	// (or that already neighbour into) so a single gap is never credited
	// twice; cleared at the end of the walk, proportional to group size
	// same as the walk itself.
	newLiberties := map[Point]bool{}

	cur := aHead
	for {
		next := b.vertexAt(cur).next

		for _, nb := range cur.Neighbours() {
			if b.vertexAt(nb).block != blockEmpty {
				continue
			}
			if b.hasNeighbourBlock(nb, into) {
				continue
			}
			newLiberties[nb] = true
		}
		b.reassignBlock(cur, into)

		if next == aHead {
			break
		}
		cur = next
	}
	blkInto.liberties += len(newLiberties)

	savedANext := b.vertexAt(aHead).next
	b.setVertex(intoHead, vertex{next: savedANext, block: into})
	b.setVertex(aHead, vertex{next: savedIntoNext, block: into})

	blkInto.hash ^= mergedHash
	b.arena.remove(a)
	return into
}

func (b *Board) hasNeighbourBlock(p Point, id blockID) bool {
	for _, nb := range p.Neighbours() {
		if b.vertexAt(nb).block == id {
			return true
		}
	}
	return false
}

// reassignBlock sets cur's block id without disturbing its next_link,
// which the merge walk still needs to read on its next iteration.
func (b *Board) reassignBlock(cur Point, id blockID) {
	v := b.vertexAt(cur)
	v.block = id
	b.setVertex(cur, v)
}

// Clone returns an independent deep copy: a flat copy of the grid plus a
// compact copy of the block arena, no per-element allocation — the shape
// MCTS probes lean on heavily.
func (b *Board) Clone() *Board {
	return &Board{
		width:    b.width,
		height:   b.height,
		stride:   b.stride,
		vertices: b.vertices.Clone(),
		arena:    b.arena.clone(),
		hash:     b.hash,
		history:  b.history.Clone(),
	}
}

// CopyFrom overwrites b's state from other's without allocating — used by
// MCTS to reuse a single scratch board across many
// probes instead of cloning afresh each time.
func (b *Board) CopyFrom(other *Board) {
	if b.width != other.width || b.height != other.height {
		panic("board: CopyFrom requires matching dimensions")
	}
	b.vertices.CopyFrom(other.vertices)
	b.arena.copyFrom(other.arena)
	b.hash = other.hash
	b.history.CopyFrom(other.history)
}

// GroupCells returns every cell of p's group, in chain-walk order, starting
// at p. Returns nil if p is empty. Exists for invariant tests and for
// callers that want to see a whole group, not for the hot path.
func (b *Board) GroupCells(p Point) []Point {
	v := b.vertexAt(p)
	if v.block < 0 {
		return nil
	}
	var cells []Point
	cur := p
	for {
		cells = append(cells, cur)
		cur = b.vertexAt(cur).next
		if cur == p {
			break
		}
	}
	return cells
}

// BlockInfo reports the live block owning p: its colour, liberty count and
// group hash, for invariant tests. ok is false if p is
// empty or invalid.
func (b *Board) BlockInfo(p Point) (color Color, liberties int, hash uint32, ok bool) {
	v := b.vertexAt(p)
	if v.block < 0 {
		return None, 0, 0, false
	}
	blk := b.arena.at(v.block)
	return blk.color, blk.liberties, blk.hash, true
}
