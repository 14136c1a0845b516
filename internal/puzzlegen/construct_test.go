package puzzlegen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ichyo/icfpc2019-public/internal/core"
)

func TestRange_SplitExcludesMidpoint(t *testing.T) {
	r := NewRange(0, 10)
	left, right := r.Split(4)
	assert.Equal(t, Range{Start: 0, End: 4}, left)
	assert.Equal(t, Range{Start: 5, End: 10}, right)
}

func TestRange_ContainsAll(t *testing.T) {
	r := NewRange(2, 5)
	assert.True(t, r.ContainsAll([]int{2, 3, 4}))
	assert.False(t, r.ContainsAll([]int{2, 5}))
}

func TestRange_Intersect(t *testing.T) {
	assert.True(t, NewRange(0, 5).Intersect(NewRange(3, 8)))
	assert.False(t, NewRange(0, 3).Intersect(NewRange(3, 8)))
	assert.False(t, NewRange(0, 3).Intersect(NewRange(5, 8)))
}

func TestRange_RemoveBeginEnd(t *testing.T) {
	r := NewRange(2, 8)
	assert.Equal(t, Range{Start: 2, End: 7}, r.RemoveEnd())
	assert.Equal(t, Range{Start: 3, End: 8}, r.RemoveBegin())
}

// TestConstruct_Smallest mirrors spec.md's end-to-end scenario 5: a
// minimal puzzle whose include/exclude points force a small polygon.
func TestConstruct_Smallest(t *testing.T) {
	puzzle := core.Puzzle{
		MaxLength: 5,
		VertexMin: 4,
		VertexMax: 20,
		Includes:  []core.Point{{X: 1, Y: 1}},
		Excludes:  []core.Point{{X: 3, Y: 3}},
	}
	rng := rand.New(rand.NewSource(1))

	task, err := Construct(puzzle, rng)
	require.NoError(t, err)

	assert.LessOrEqual(t, task.Width, 4)
	assert.LessOrEqual(t, task.Height, 4)
	assert.GreaterOrEqual(t, task.Room.Len(), 4)

	points := task.Room.EnumeratePoints()
	assert.GreaterOrEqual(t, len(points), 3)

	contains := func(p core.Point) bool {
		for _, q := range points {
			if q == p {
				return true
			}
		}
		return false
	}
	assert.True(t, contains(core.Point{X: 1, Y: 1}))
	assert.False(t, contains(core.Point{X: 3, Y: 3}))
}

func TestConstruct_RejectsOutOfRangePoints(t *testing.T) {
	puzzle := core.Puzzle{
		MaxLength: 5,
		VertexMin: 4,
		VertexMax: 20,
		Includes:  []core.Point{{X: 10, Y: 10}},
	}
	_, err := Construct(puzzle, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestConstruct_BoostersPlacedWithinBudget(t *testing.T) {
	puzzle := core.Puzzle{
		MaxLength:  9,
		VertexMin:  4,
		VertexMax:  40,
		HandCount:  2,
		CloneCount: 1,
	}
	task, err := Construct(puzzle, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	assert.Len(t, task.Boosters, 3)
}
