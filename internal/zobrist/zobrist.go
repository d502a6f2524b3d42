// Package zobrist holds a process-wide table of 32-bit position-hash
// constants, one per (point, colour) pair, in the style of the zobrist
// tables built ad hoc by every board game engine in this corpus (see
// herohde-morlock's pkg/board/zobrist.go and the TermChess engine's
// internal/engine/zobrist.go): a fixed-seed math/rand source populates the
// table once at init time so hashes are reproducible across runs and
// processes without needing to persist anything.
package zobrist

import "math/rand"

// maxCoord bounds the padded coordinate space: board sizes up to 25 plus a
// one-cell border on each side, plus one spare row/column so a diagonal
// step from the far corner never indexes out of range.
const maxCoord = 28

// seed is fixed so that two independently-constructed boards reaching the
// same position hash identically; this table must never be reseeded per
// board.
const seed = 0x676f6e676f // "gongo" in hex, chosen for reproducibility, not cryptographic strength

var table [maxCoord][maxCoord][2]uint32

func init() {
	r := rand.New(rand.NewSource(seed))
	for x := 0; x < maxCoord; x++ {
		for y := 0; y < maxCoord; y++ {
			table[x][y][0] = r.Uint32()
			table[x][y][1] = r.Uint32()
		}
	}
}

// ColorBit selects which of the two per-point constants to use: 0 for
// Black, 1 for White. Callers outside this package never see this encoding;
// it exists only so this leaf package has no dependency on board.Color.
type ColorBit uint8

const (
	BlackBit ColorBit = 0
	WhiteBit ColorBit = 1
)

// Hash returns the constant for placing a stone of the given colour at
// padded coordinate (x, y). Panics if (x, y) falls outside the space this
// table was sized for — a programmer error (an oversized board), not a
// runtime fault.
func Hash(x, y int, c ColorBit) uint32 {
	if x < 0 || x >= maxCoord || y < 0 || y >= maxCoord {
		panic("zobrist: coordinate out of range")
	}
	return table[x][y][c]
}

// Empty is the hash of the empty board, conventionally zero so that XOR
// accumulation starts from a neutral element.
func Empty() uint32 { return 0 }

// MaxCoord reports the coordinate bound this table supports, so callers can
// validate board sizes against it up front instead of panicking deep in a
// hot path.
func MaxCoord() int { return maxCoord }
