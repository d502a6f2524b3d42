package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skybrian/goban/board"
	"github.com/skybrian/goban/render"
)

func TestEmptyBoardIsAllDots(t *testing.T) {
	b := board.New(3, 3)
	out := render.String(b)
	rows := strings.Split(out, "\n")
	assert.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, "...", row)
	}
}

func TestStonesRenderWithTopRowFirst(t *testing.T) {
	b := board.New(3, 3)
	b.Play(board.NewPoint(0, 2), board.Black) // top-left
	b.Play(board.NewPoint(2, 0), board.White) // bottom-right

	out := render.String(b)
	rows := strings.Split(out, "\n")
	assert.Equal(t, byte('@'), rows[0][0])
	assert.Equal(t, byte('O'), rows[2][2])
}
