package board

// Point is a coordinate over the padded board: interior cells run from 1
// to width (or height), and 0 / width+1 (height+1) address the permanently
// invalid border. Constructors below canonicalise external, 0-based
// coordinates into this padded 1-based form so callers never need to know
// about the border.
type Point struct {
	X, Y int
}

// NewPoint canonicalises a 0-based (x, y) interior coordinate, the shape
// most callers reach for.
func NewPoint(x, y int) Point { return Point{X: x + 1, Y: y + 1} }

// NewPointU8 canonicalises a 0-based (x, y) pair given as bytes, the
// compact shape used when a caller stores many points (e.g. a move list)
// and a board size of at most 25 makes a byte wide enough.
func NewPointU8(x, y uint8) Point { return NewPoint(int(x), int(y)) }

// Neighbours returns the four orthogonal neighbours of p in the fixed
// order (-x, +x, -y, +y). A neighbour of a border point is itself always a
// valid Point value (Point is just a coordinate pair) even though its
// Vertex is invalid — that invalidity is what lets Board short-circuit
// edge checks without a separate bounds branch at each call site.
func (p Point) Neighbours() [4]Point {
	return [4]Point{
		{X: p.X - 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y - 1},
		{X: p.X, Y: p.Y + 1},
	}
}
