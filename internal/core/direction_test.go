package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection_TurnCycle(t *testing.T) {
	d := Right
	seq := []Direction{Right, Up, Left, Down, Right}
	for _, want := range seq {
		assert.Equal(t, want, d)
		d = d.TurnRight()
	}
}

func TestDirection_TurnLeftIsInverse(t *testing.T) {
	for _, d := range []Direction{Right, Up, Left, Down} {
		assert.Equal(t, d, d.TurnRight().TurnLeft())
	}
}

func TestDirection_ConvertFormulas(t *testing.T) {
	p := Point{X: 2, Y: -3}
	assert.Equal(t, Point{2, -3}, Right.Convert(p))
	assert.Equal(t, Point{3, 2}, Up.Convert(p))
	assert.Equal(t, Point{-2, 3}, Left.Convert(p))
	assert.Equal(t, Point{-3, -2}, Down.Convert(p))
}

func TestDirection_ReconvertIsInverse(t *testing.T) {
	p := Point{X: 1, Y: -2}
	for _, d := range []Direction{Right, Up, Left, Down} {
		assert.Equal(t, p, d.Reconvert(d.Convert(p)))
	}
}
