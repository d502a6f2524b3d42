package concurrent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skybrian/goban/board"
	"github.com/skybrian/goban/concurrent"
)

func TestRunnerReturnsAResultWithoutPanicking(t *testing.T) {
	b := board.New(5, 5)
	r := concurrent.NewRunner(b, board.Black, 0.5, 7, nil)

	result := r.Search(context.Background(), 200)
	assert.GreaterOrEqual(t, result.Visits, 0)
}

func TestRunnerRespectsCancellation(t *testing.T) {
	b := board.New(5, 5)
	r := concurrent.NewRunner(b, board.Black, 0.5, 1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := r.Search(ctx, 500)
	assert.True(t, result.IsPass)
}
