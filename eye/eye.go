// Package eye classifies board cells as eyes using only their 3x3
// neighbourhood, built around a rolling 16-bit pattern rather than four
// unrolled neighbour reads each time: at the start of each row the
// pattern is computed from scratch, and stepping right reuses four of the
// eight neighbour codes from the previous cell, reading the new right-hand
// column and the new west neighbour.
//
// This package knows nothing about stones, groups or boards — it is a leaf
// primitive, like internal/grid and internal/ring, parameterised entirely
// by an Accessor callback so board and mcts can each supply their own view.
package eye

// Color is the 2-bit per-neighbour classification this package works with.
// It intentionally does not reuse board.Color: this package must not import
// board (board and mcts sit above it), so it defines the minimal four-way
// alphabet the pattern encoding needs.
type Color uint8

const (
	Empty Color = iota
	Black
	White
	OffBoard
)

// Accessor reports the colour at (x, y), or OffBoard for any coordinate
// outside the board. Scanner reads 0-based coordinates over
// [0,width) x [0,height); IsEye and Pattern pass coordinates through
// unchanged, so a caller may use any origin as long as its Accessor agrees.
type Accessor func(x, y int) Color

// code maps a neighbour's colour, as seen by a test for `test`, to its
// 2-bit pattern code: 00 empty, 01 off-board, 10 opposite, 11 same.
func code(c, test Color) uint16 {
	switch {
	case c == OffBoard:
		return 0b01
	case c == Empty:
		return 0b00
	case c == test:
		return 0b11
	default:
		return 0b10
	}
}

// neighbour offsets in bit-label order 1..8:
// label: 1=SE 2=E 3=NE 4=S 5=N 6=SW 7=W 8=NW
var labelDX = [9]int{0, 1, 1, 1, 0, 0, -1, -1, -1}
var labelDY = [9]int{0, -1, 0, 1, -1, 1, -1, 0, 1}

// Pattern computes the full 16-bit neighbourhood pattern for (x, y) tested
// against colour `test`, from scratch — used at the start of each row.
func Pattern(at Accessor, x, y int, test Color) uint16 {
	var p uint16
	for label := 1; label <= 8; label++ {
		c := at(x+labelDX[label], y+labelDY[label])
		p |= code(c, test) << uint((label-1)*2)
	}
	return p
}

// diagonal bit-label positions, in the 8 5 3 / 7 . 2 / 6 4 1 diagram.
const (
	labelSE = 1
	labelNE = 3
	labelSW = 6
	labelNW = 8
)

var diagonalLabels = [4]int{labelNE, labelNW, labelSE, labelSW}
var orthogonalLabels = [4]int{2, 4, 5, 7} // E, S, N, W

func bits(p uint16, label int) uint16 {
	return (p >> uint((label-1)*2)) & 0b11
}

// Classify decodes a pattern produced by Pattern (or maintained
// incrementally by a Scanner) and reports whether the centre cell is an eye
// for the tested colour.
//
// The orthogonal neighbours must all be `test`'s own stones or off-board.
// Of the diagonals, an interior cell (no off-board diagonal) tolerates at
// most one that is either empty or the opposite colour; an edge or corner
// cell (any diagonal off-board) tolerates none. This generalises the
// `enemies+haveEdge < 2` shape a simpler single-pass eye check would use to
// also spend the one-relaxation budget on an empty diagonal rather than
// only an enemy stone.
func Classify(p uint16) bool {
	for _, label := range orthogonalLabels {
		b := bits(p, label)
		if b != 0b11 && b != 0b01 {
			return false
		}
	}

	relaxations := 0
	hasOffBoardDiagonal := false
	for _, label := range diagonalLabels {
		b := bits(p, label)
		switch b {
		case 0b01:
			hasOffBoardDiagonal = true
		case 0b10, 0b00:
			relaxations++
		}
	}
	if hasOffBoardDiagonal {
		return relaxations == 0
	}
	return relaxations <= 1
}

// IsEye is a one-shot convenience for a single random-access query; it
// recomputes the pattern from scratch and is the right choice when only a
// handful of cells need checking (e.g. validating a single candidate move).
func IsEye(at Accessor, x, y int, test Color) bool {
	return Classify(Pattern(at, x, y, test))
}

// Scanner amortises full-board sweeps (as MCTS rollouts perform every ply)
// across the width of each row: the pattern is recomputed from scratch only
// at the start of a row, then shifted one column at a time.
type Scanner struct {
	at            Accessor
	width, height int
}

// NewScanner returns a Scanner over a width x height board of interior
// cells, using at to read colours (including off-board reads beyond the
// bounds).
func NewScanner(width, height int, at Accessor) *Scanner {
	return &Scanner{at: at, width: width, height: height}
}

// Eyes returns every interior (x, y) that is an eye for `test`, scanning
// row by row and reusing four of eight neighbour codes between adjacent
// cells in the same row.
func (s *Scanner) Eyes(test Color) []struct{ X, Y int } {
	var out []struct{ X, Y int }
	for y := 0; y < s.height; y++ {
		pattern := Pattern(s.at, 0, y, test)
		if Classify(pattern) {
			out = append(out, struct{ X, Y int }{0, y})
		}
		for x := 1; x < s.width; x++ {
			pattern = s.shift(pattern, x, y, test)
			if Classify(pattern) {
				out = append(out, struct{ X, Y int }{x, y})
			}
		}
	}
	return out
}

// shift advances the rolling pattern one column to the right. Four of the
// eight neighbour codes carry straight over from the previous centre (old
// N becomes new NW, old NE becomes new N, old S becomes new SW, old SE
// becomes new S); the other four must be read fresh, because they fall
// outside the old 3x3 window: the new right-hand column (NE, E, SE, three
// reads — the "new right column" the rolling design is named for) and the
// cell the old centre just vacated, which becomes the new west neighbour
// and was never part of the old pattern (the centre itself is never
// encoded). That's four fresh reads, not three; a pattern alone can't
// reconstruct a window's centre, so this is the minimum a correct shift
// needs, not a relaxation of the amortised-scan design.
func (s *Scanner) shift(prev uint16, newX, y int, test Color) uint16 {
	var next uint16
	next |= bits(prev, 5) << uint((labelNW-1)*2) // old N -> new NW
	next |= bits(prev, labelNE) << uint((5-1)*2) // old NE -> new N
	next |= bits(prev, 4) << uint((labelSW-1)*2) // old S -> new SW
	next |= bits(prev, labelSE) << uint((4-1)*2) // old SE -> new S

	fresh := [4]int{labelNE, 2, labelSE, 7} // NE, E, SE, W
	for _, label := range fresh {
		c := s.at(newX+labelDX[label], y+labelDY[label])
		next |= code(c, test) << uint((label-1)*2)
	}
	return next
}
