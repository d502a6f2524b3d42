package board_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skybrian/goban/internal/zobrist"

	. "github.com/skybrian/goban/board"
)

func pt(x, y int) Point { return NewPoint(x, y) }

func TestEmptyBoardHasNoStones(t *testing.T) {
	b := New(9, 9)
	for p := range b.Iter() {
		assert.Equal(t, None, b.At(p))
	}
	assert.Equal(t, 9, b.Width())
	assert.Equal(t, 9, b.Height())
}

func TestFillBoardLeavesEveryStoneInPlace(t *testing.T) {
	b := New(5, 5)
	turn := Black
	count := 0
	for p := range b.Iter() {
		if !b.IsLegal(p, turn) {
			continue
		}
		b.Play(p, turn)
		count++
		turn = turn.Opponent()
	}
	assert.Greater(t, count, 0)
	for p := range b.Iter() {
		if c := b.At(p); c != None {
			color, libs, _, ok := b.BlockInfo(p)
			require.True(t, ok)
			assert.Equal(t, c, color)
			assert.GreaterOrEqual(t, libs, 0)
		}
	}
}

func TestSingleStoneCapture(t *testing.T) {
	b := New(5, 5)
	// Surround the white stone at (2,2) with four black stones.
	b.Play(pt(2, 2), White)
	b.Play(pt(1, 2), Black)
	b.Play(pt(3, 2), Black)
	b.Play(pt(2, 1), Black)
	require.Equal(t, White, b.At(pt(2, 2)))

	b.Play(pt(2, 3), Black)

	assert.Equal(t, None, b.At(pt(2, 2)), "captured stone should be removed")

	for _, p := range []Point{pt(1, 2), pt(3, 2), pt(2, 1), pt(2, 3)} {
		_, libs, _, ok := b.BlockInfo(p)
		require.True(t, ok)
		assert.GreaterOrEqual(t, libs, 1, "capturing groups must regain the vacated liberty")
	}
}

func TestMergeDoesNotDoubleCountSharedLiberty(t *testing.T) {
	b := New(9, 9)
	// Two black stones sharing the empty point (2,1) as a liberty before
	// they are connected by a third stone.
	b.Play(pt(1, 1), Black)
	b.Play(pt(9, 9), White) // unrelated move so black/white alternate sensibly
	b.Play(pt(3, 1), Black)
	b.Play(pt(8, 9), White)
	b.Play(pt(2, 1), Black) // connects (1,1) and (3,1) into one group

	_, libs, _, ok := b.BlockInfo(pt(2, 1))
	require.True(t, ok)

	cells := b.GroupCells(pt(2, 1))
	assert.Len(t, cells, 3)

	// The merged group's liberties are the eight empty cells around it:
	// (1,0),(2,0),(3,0),(1,2),(2,2),(3,2) and the two ends (0,1)/(4,1) —
	// exactly the distinct empty neighbours, none counted twice.
	seen := map[Point]bool{}
	for _, c := range cells {
		for _, nb := range c.Neighbours() {
			if b.At(nb) == None && nb.X >= 1 && nb.X <= 9 && nb.Y >= 1 && nb.Y <= 9 {
				seen[nb] = true
			}
		}
	}
	assert.Equal(t, len(seen), libs)
}

func TestSuicideIsIllegal(t *testing.T) {
	b := New(5, 5)
	b.Play(pt(1, 2), Black)
	b.Play(pt(2, 1), Black)
	b.Play(pt(2, 3), Black)
	b.Play(pt(3, 2), Black)

	assert.False(t, b.IsLegal(pt(2, 2), White), "playing into a fully surrounded point is suicide")
}

func TestCaptureOverridesSuicide(t *testing.T) {
	b := New(5, 5)
	// White stone at (2,2) down to its last liberty at (3,2); black playing
	// there captures rather than committing suicide.
	b.Play(pt(2, 2), White)
	b.Play(pt(1, 2), Black)
	b.Play(pt(2, 1), Black)
	b.Play(pt(2, 3), Black)

	assert.True(t, b.IsLegal(pt(3, 2), Black))
	b.Play(pt(3, 2), Black)
	assert.Equal(t, None, b.At(pt(2, 2)))
}

func TestPositionalSuperkoForbidsRepeat(t *testing.T) {
	b := New(5, 5)
	// Corner ko: White fills the (0,0) corner and two of its supporting
	// points, Black reduces the corner stone to one liberty and captures
	// it, then White's immediate recapture would recreate the exact
	// position from right after Black's first corner move (1,0) — the
	// superko ring must refuse it.
	b.Play(pt(0, 0), White)
	b.Play(pt(1, 1), White)
	b.Play(pt(0, 2), White)
	b.Play(pt(1, 0), Black)

	require.True(t, b.IsLegal(pt(0, 1), Black))
	b.Play(pt(0, 1), Black) // captures White's corner stone at (0,0)

	assert.Equal(t, None, b.At(pt(0, 0)))
	assert.False(t, b.IsLegal(pt(0, 0), White), "recapture would repeat a prior position")
}

func TestSevenStoneUShapeHasSevenLiberties(t *testing.T) {
	b := New(9, 9)
	for _, p := range []Point{pt(0, 0), pt(0, 1), pt(0, 2), pt(1, 2), pt(2, 0), pt(2, 1), pt(2, 2)} {
		b.Play(p, White)
	}
	b.Play(pt(1, 0), Black)

	_, whiteLibs, _, ok := b.BlockInfo(pt(0, 0))
	require.True(t, ok)
	assert.Equal(t, 7, whiteLibs)

	_, blackLibs, _, ok := b.BlockInfo(pt(1, 0))
	require.True(t, ok)
	assert.Equal(t, 1, blackLibs)
}

// TestKoRecaptureForbiddenBySuperko reproduces a corner ko: White captures
// the Black stone at (0,0), leaving the capturing stone with that point as
// its only liberty, and Black's immediate recapture would exactly reproduce
// the position from right before the capture.
func TestKoRecaptureForbiddenBySuperko(t *testing.T) {
	b := New(9, 9)
	b.Play(pt(0, 0), Black)
	b.Play(pt(1, 1), Black)
	b.Play(pt(2, 0), Black)
	b.Play(pt(0, 1), White)

	require.True(t, b.IsLegal(pt(1, 0), White))
	b.Play(pt(1, 0), White) // captures the Black stone at (0,0)

	assert.Equal(t, None, b.At(pt(0, 0)))
	assert.False(t, b.IsLegal(pt(0, 0), Black), "recapture would reproduce the pre-capture position")
}

func TestCloneIsIndependent(t *testing.T) {
	b := New(9, 9)
	b.Play(pt(4, 4), Black)
	c := b.Clone()
	c.Play(pt(4, 5), White)

	assert.Equal(t, None, b.At(pt(4, 5)))
	assert.Equal(t, White, c.At(pt(4, 5)))
	assert.Equal(t, Black, b.At(pt(4, 4)))
	assert.Equal(t, Black, c.At(pt(4, 4)))
}

func TestCopyFromMatchesSource(t *testing.T) {
	a := New(9, 9)
	a.Play(pt(3, 3), Black)
	a.Play(pt(3, 4), White)

	scratch := New(9, 9)
	scratch.Play(pt(0, 0), Black)
	scratch.CopyFrom(a)

	assert.Equal(t, a.Hash(), scratch.Hash())
	assert.Equal(t, Black, scratch.At(pt(3, 3)))
	assert.Equal(t, White, scratch.At(pt(3, 4)))
	assert.Equal(t, None, scratch.At(pt(0, 0)))
}

func TestHashMatchesAfterEquivalentSequences(t *testing.T) {
	a := New(9, 9)
	a.Play(pt(2, 2), Black)
	a.Play(pt(6, 6), White)

	b := New(9, 9)
	b.Play(pt(6, 6), White)
	b.Play(pt(2, 2), Black)

	assert.Equal(t, a.Hash(), b.Hash(), "hash only depends on resulting position, not move order")
}

// colorBit mirrors the board package's private colour-to-zobrist-bit
// mapping, needed here because the invariant checks below must recompute
// group and board hashes from scratch to compare against the incrementally
// maintained ones.
func colorBit(c Color) zobrist.ColorBit {
	if c == White {
		return zobrist.WhiteBit
	}
	return zobrist.BlackBit
}

// checkLiberties verifies I4 for the block at p: its live liberty count
// must equal the number of distinct empty valid cells adjacent to any cell
// in the block.
func checkLiberties(t *testing.T, b *Board, p Point) {
	t.Helper()
	color, liberties, hash, ok := b.BlockInfo(p)
	require.True(t, ok)

	cells := b.GroupCells(p)
	libertySet := map[Point]bool{}
	var groupHash uint32
	for _, c := range cells {
		for _, nb := range c.Neighbours() {
			if b.At(nb) == None && nb.X >= 1 && nb.X <= b.Width() && nb.Y >= 1 && nb.Y <= b.Height() {
				libertySet[nb] = true
			}
		}
		groupHash ^= zobrist.Hash(c.X, c.Y, colorBit(color))
	}

	assert.Equal(t, len(libertySet), liberties, "I4: liberty count must equal distinct empty adjacent cells")
	assert.Greater(t, liberties, 0, "I7: no live block may have zero liberties after Play returns")
	assert.Equal(t, groupHash, hash, "I5: block hash must equal XOR of Zobrist(cell, colour) over its cells")
}

// checkBoardHash verifies I6: the board hash must equal the XOR of every
// live block's own hash, each counted exactly once.
func checkBoardHash(t *testing.T, b *Board) {
	t.Helper()
	seen := map[Point]bool{}
	var want uint32
	for p := range b.Iter() {
		if b.At(p) == None || seen[p] {
			continue
		}
		_, _, hash, ok := b.BlockInfo(p)
		require.True(t, ok)
		want ^= hash
		for _, c := range b.GroupCells(p) {
			seen[c] = true
		}
	}
	assert.Equal(t, want, b.Hash(), "I6: board hash must equal XOR of every live block's hash")
}

// TestRandomPlayoutsPreserveInvariants plays many seeded random-legal-move
// games and, after every single move, brute-force recomputes I4 (liberty
// count), I5 (group hash), I6 (board hash) and I7 (no zero-liberty
// survivors) against the incrementally maintained state, rather than only
// checking a handful of hand-picked scenarios.
func TestRandomPlayoutsPreserveInvariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for game := 0; game < 20; game++ {
		b := New(7, 7)
		turn := Black

		var points []Point
		for p := range b.Iter() {
			points = append(points, p)
		}

		for ply := 0; ply < 150; ply++ {
			rnd.Shuffle(len(points), func(i, j int) { points[i], points[j] = points[j], points[i] })

			var move Point
			found := false
			for _, p := range points {
				if b.IsLegal(p, turn) {
					move = p
					found = true
					break
				}
			}
			if !found {
				turn = turn.Opponent()
				continue
			}

			b.Play(move, turn)

			for p := range b.Iter() {
				if b.At(p) != None {
					checkLiberties(t, b, p)
				}
			}
			checkBoardHash(t, b)

			turn = turn.Opponent()
		}
	}
}
