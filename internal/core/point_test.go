package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_Add(t *testing.T) {
	assert.Equal(t, Point{X: 3, Y: 1}, Point{X: 1, Y: 2}.Add(Point{X: 2, Y: -1}))
}

func TestPoint_MoveWith(t *testing.T) {
	p := Point{X: 2, Y: 2}
	assert.Equal(t, Point{X: 2, Y: 3}, p.MoveWith(MoveUp))
	assert.Equal(t, Point{X: 2, Y: 1}, p.MoveWith(MoveDown))
	assert.Equal(t, Point{X: 1, Y: 2}, p.MoveWith(MoveLeft))
	assert.Equal(t, Point{X: 3, Y: 2}, p.MoveWith(MoveRight))
	assert.Equal(t, p, p.MoveWith(Noop))
	assert.Equal(t, p, p.MoveWith(TurnLeft))
}

func TestPoint_MoveWithRevertWith_RoundTrip(t *testing.T) {
	p := Point{X: 4, Y: 5}
	for _, m := range AllMoves {
		moved := p.MoveWith(m)
		assert.Equal(t, p, moved.RevertWith(m), "move=%v", m)
	}
}
