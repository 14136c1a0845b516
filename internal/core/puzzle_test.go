package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPuzzle_Len(t *testing.T) {
	p := Puzzle{MaxLength: 10}
	assert.Equal(t, 9, p.Len())
}
