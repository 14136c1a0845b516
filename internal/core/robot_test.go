package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrimaryRobot(t *testing.T) {
	r := NewPrimaryRobot(Point{X: 2, Y: 3})
	assert.Equal(t, Place{Point: Point{X: 2, Y: 3}, Direction: Right}, r.Place)
	assert.Equal(t, []Point{{0, 0}, {1, 0}, {1, 1}, {1, -1}}, r.BodiesDiff)
	assert.Equal(t, []Point{{-1, 0}, {-1, 1}, {-1, -1}, {0, -1}, {0, 1}}, r.NewBodies)
	assert.Empty(t, r.Executed)
}

func TestRobot_Clone(t *testing.T) {
	r := NewPrimaryRobot(Point{X: 1, Y: 1})
	r.NewBodies = r.NewBodies[1:]
	r.Executed = []Command{NewMoveCommand(MoveUp)}

	clone := r.Clone()
	assert.Equal(t, r.Place, clone.Place)
	assert.Equal(t, []Point{{0, 0}, {1, 0}, {1, 1}, {1, -1}}, clone.BodiesDiff)
	assert.Equal(t, []Point{{-1, 0}, {-1, 1}}, clone.NewBodies)
	assert.Empty(t, clone.Executed, "a clone starts with no history")
}

func TestRobot_Clone_IndependentBodiesDiff(t *testing.T) {
	r := NewPrimaryRobot(Point{X: 0, Y: 0})
	clone := r.Clone()
	clone.BodiesDiff[0] = Point{X: 9, Y: 9}
	assert.NotEqual(t, clone.BodiesDiff[0], r.BodiesDiff[0])
}

func TestRobot_Hands(t *testing.T) {
	r := NewPrimaryRobot(Point{X: 5, Y: 5})
	hands := r.Hands()
	require.Len(t, hands, 4)
	assert.Contains(t, hands, Point{X: 5, Y: 5})
	assert.Contains(t, hands, Point{X: 6, Y: 5})
	assert.Contains(t, hands, Point{X: 6, Y: 6})
	assert.Contains(t, hands, Point{X: 6, Y: 4})
}

func TestRobot_Hands_RotateWithDirection(t *testing.T) {
	r := NewPrimaryRobot(Point{X: 0, Y: 0})
	r.Place.Direction = Up
	hands := r.Hands()
	assert.Contains(t, hands, Point{X: 0, Y: 0})
	assert.Contains(t, hands, Point{X: 0, Y: 1})
}
