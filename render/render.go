// Package render draws a Board as the text grid the original robot
// printed for interactive and debugging use: one character per point, top
// row first, Black as '@' and White as 'O'.
package render

import (
	"strings"

	"github.com/skybrian/goban/board"
)

// String renders b as a width x height grid of characters with the last
// row (y = height) first, matching how a player reads a physical board
// from the top down.
func String(b *board.Board) string {
	var out strings.Builder
	for y := b.Height(); y >= 1; y-- {
		for x := 1; x <= b.Width(); x++ {
			switch b.At(board.NewPoint(x-1, y-1)) {
			case board.Black:
				out.WriteByte('@')
			case board.White:
				out.WriteByte('O')
			default:
				out.WriteByte('.')
			}
		}
		if y > 1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
