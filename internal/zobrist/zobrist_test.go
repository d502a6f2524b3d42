package zobrist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skybrian/goban/internal/zobrist"
)

func TestDeterministic(t *testing.T) {
	a := zobrist.Hash(3, 4, zobrist.BlackBit)
	b := zobrist.Hash(3, 4, zobrist.BlackBit)
	assert.Equal(t, a, b)
}

func TestDistinctByColorAndPoint(t *testing.T) {
	black := zobrist.Hash(3, 4, zobrist.BlackBit)
	white := zobrist.Hash(3, 4, zobrist.WhiteBit)
	other := zobrist.Hash(3, 5, zobrist.BlackBit)
	assert.NotEqual(t, black, white)
	assert.NotEqual(t, black, other)
}

func TestEmptyIsZero(t *testing.T) {
	assert.Equal(t, uint32(0), zobrist.Empty())
}

func TestOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { zobrist.Hash(-1, 0, zobrist.BlackBit) })
	assert.Panics(t, func() { zobrist.Hash(zobrist.MaxCoord(), 0, zobrist.BlackBit) })
}
