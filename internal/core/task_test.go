package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask_DerivesWidthHeight(t *testing.T) {
	room := NewMap([]Point{{0, 0}, {3, 0}, {3, 2}, {0, 2}})
	task := NewTask("042", room, Point{X: 0, Y: 0}, nil, nil)

	assert.Equal(t, "042", task.ID)
	assert.Equal(t, 3, task.Width)
	assert.Equal(t, 2, task.Height)
}

func TestTask_String_RoundTripShape(t *testing.T) {
	room := NewMap([]Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}})
	obstacle := NewMap([]Point{{1, 1}, {2, 1}, {2, 2}, {1, 2}})
	boosters := []Booster{{Kind: FastMove, Point: Point{X: 0, Y: 1}}}
	task := NewTask("1", room, Point{X: 0, Y: 0}, []Map{obstacle}, boosters)

	s := task.String()
	assert.Contains(t, s, "#(0,0)#")
	assert.Contains(t, s, "F(0,1)")
}
