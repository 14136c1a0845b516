package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(w, h int) Map {
	return NewMap([]Point{{0, 0}, {w, 0}, {w, h}, {0, h}})
}

func TestEnumeratePoints_Unit(t *testing.T) {
	pts := square(1, 1).EnumeratePoints()
	assert.ElementsMatch(t, []Point{{0, 0}}, pts)
}

func TestEnumeratePoints_Corridor(t *testing.T) {
	pts := square(2, 1).EnumeratePoints()
	assert.ElementsMatch(t, []Point{{0, 0}, {1, 0}}, pts)
}

func TestEnumeratePoints_LShape(t *testing.T) {
	m := NewMap([]Point{{0, 0}, {2, 0}, {2, 1}, {3, 1}, {3, 3}, {0, 3}})
	pts := m.EnumeratePoints()
	require.Len(t, pts, 8)
	want := map[Point]bool{
		{0, 0}: true, {1, 0}: true,
		{0, 1}: true, {1, 1}: true, {2, 1}: true,
		{0, 2}: true, {1, 2}: true, {2, 2}: true,
	}
	for _, p := range pts {
		assert.True(t, want[p], "unexpected point %v", p)
	}
}

func TestEnumeratePoints_OrderIndependent(t *testing.T) {
	base := []Point{{0, 0}, {2, 0}, {2, 1}, {3, 1}, {3, 3}, {0, 3}}
	first := NewMap(base).EnumeratePoints()

	n := len(base)
	for shift := 1; shift < n; shift++ {
		rotated := append(append([]Point(nil), base[shift:]...), base[:shift]...)
		got := NewMap(rotated).EnumeratePoints()
		assert.ElementsMatch(t, first, got, "shift=%d", shift)
	}
}

func TestEnumeratePoints_Reversed(t *testing.T) {
	base := []Point{{0, 0}, {2, 0}, {2, 1}, {3, 1}, {3, 3}, {0, 3}}
	first := NewMap(base).EnumeratePoints()

	reversed := make([]Point, len(base))
	for i, p := range base {
		reversed[len(base)-1-i] = p
	}
	got := NewMap(reversed).EnumeratePoints()
	assert.ElementsMatch(t, first, got)
}

func TestMap_Dimensions(t *testing.T) {
	m := square(3, 4)
	assert.Equal(t, 3, m.ComputeWidth())
	assert.Equal(t, 4, m.ComputeHeight())
}
