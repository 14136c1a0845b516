package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix_GetSetRoundTrip(t *testing.T) {
	m := NewMatrix[int](3, 2, 0)
	m.Set(Point{X: 1, Y: 1}, 7)

	v, ok := m.Get(Point{X: 1, Y: 1})
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	v, ok = m.Get(Point{X: 0, Y: 0})
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestMatrix_GetOutOfBounds(t *testing.T) {
	m := NewMatrix[bool](2, 2, false)

	_, ok := m.Get(Point{X: -1, Y: 0})
	assert.False(t, ok)

	_, ok = m.Get(Point{X: 2, Y: 0})
	assert.False(t, ok)

	_, ok = m.Get(Point{X: 0, Y: 2})
	assert.False(t, ok)
}

func TestMatrix_SetOutOfBoundsPanics(t *testing.T) {
	m := NewMatrix[bool](2, 2, false)
	assert.Panics(t, func() {
		m.Set(Point{X: 5, Y: 5}, true)
	})
}

func TestMatrix_WidthHeight(t *testing.T) {
	m := NewMatrix[int](4, 6, 0)
	assert.Equal(t, 4, m.Width())
	assert.Equal(t, 6, m.Height())
}
