package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ichyo/icfpc2019-public/internal/core"
)

func TestParseTask_RoundTrip(t *testing.T) {
	raw := "(0,0),(4,0),(4,4),(0,4)#(1,1)#(1,1),(2,1),(2,2),(1,2)#B(3,3);C(0,3)"

	task, err := ParseTask(raw)
	require.NoError(t, err)

	assert.Equal(t, core.Point{X: 1, Y: 1}, task.Initial)
	require.Len(t, task.Obstacles, 1)
	require.Len(t, task.Boosters, 2)
	assert.Equal(t, core.NewHandBooster, task.Boosters[0].Kind)
	assert.Equal(t, core.Cloning, task.Boosters[1].Kind)

	assert.Equal(t, raw, EmitTask(task))
}

func TestParseTask_NoObstaclesNoBoosters(t *testing.T) {
	raw := "(0,0),(2,0),(2,2),(0,2)#(0,0)##"
	task, err := ParseTask(raw)
	require.NoError(t, err)
	assert.Empty(t, task.Obstacles)
	assert.Empty(t, task.Boosters)
	assert.Equal(t, raw, EmitTask(task))
}

func TestParseTask_NegativeCoordinates(t *testing.T) {
	raw := "(-2,-2),(2,-2),(2,2),(-2,2)#(-1,-1)##"
	task, err := ParseTask(raw)
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: -1, Y: -1}, task.Initial)
	assert.Equal(t, raw, EmitTask(task))
}

func TestParseTask_RejectsGarbage(t *testing.T) {
	_, err := ParseTask("not a task")
	assert.Error(t, err)
}

func TestParseCommands_RoundTrip(t *testing.T) {
	raw := "WWSDB(1,0)C#AAZ"
	cmds, err := ParseCommands(raw)
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, 6, len(cmds[0]))
	assert.Equal(t, 3, len(cmds[1]))
	assert.Equal(t, raw, EmitCommands(cmds))
}

func TestParseCommands_RejectsUnknownByte(t *testing.T) {
	_, err := ParseCommands("WWK")
	assert.Error(t, err)
}

func TestParsePuzzle_RoundTrip(t *testing.T) {
	raw := "1,1,5,4,20,0,0,0,0,0,0#(1,1)#(3,3)"
	p, err := ParsePuzzle(raw)
	require.NoError(t, err)
	assert.Equal(t, 5, p.MaxLength)
	assert.Equal(t, 4, p.VertexMin)
	assert.Equal(t, []core.Point{{X: 1, Y: 1}}, p.Includes)
	assert.Equal(t, []core.Point{{X: 3, Y: 3}}, p.Excludes)
	assert.Equal(t, raw, EmitPuzzle(p))
}

func TestParsePuzzle_EmptyIncludesExcludes(t *testing.T) {
	raw := "1,1,5,4,20,0,0,0,0,0,0##"
	p, err := ParsePuzzle(raw)
	require.NoError(t, err)
	assert.Empty(t, p.Includes)
	assert.Empty(t, p.Excludes)
}

func TestParseBuy_RoundTrip(t *testing.T) {
	raw := "CLRB"
	buy, err := ParseBuy(raw)
	require.NoError(t, err)
	assert.Equal(t, core.Buy{core.Cloning, core.Drill, core.Teleports, core.NewHandBooster}, buy)
	assert.Equal(t, raw, EmitBuy(buy))
}
