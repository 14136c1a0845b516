package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ichyo/icfpc2019-public/internal/core"
)

func squareTask(w, h int) core.Task {
	room := core.NewMap([]core.Point{{0, 0}, {w, 0}, {w, h}, {0, h}})
	return core.NewTask("t", room, core.Point{X: 0, Y: 0}, nil, nil)
}

func TestScoreTask_BestEstimatedFromFloorCellCount(t *testing.T) {
	task := squareTask(10, 10)
	commands := core.Commands{make(core.RobotCommands, 5)}

	info := ScoreTask(task, commands)
	assert.Equal(t, 10, info.Width)
	assert.Equal(t, 10, info.Height)
	assert.Equal(t, 100*24/100, info.BestEstimated)
	assert.Equal(t, 5, info.TeamTime)
}

func TestScoreTask_SubtractsObstacles(t *testing.T) {
	room := core.NewMap([]core.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}})
	obstacle := core.NewMap([]core.Point{{1, 1}, {2, 1}, {2, 2}, {1, 2}})
	task := core.NewTask("t", room, core.Point{X: 0, Y: 0}, []core.Map{obstacle}, nil)
	commands := core.Commands{make(core.RobotCommands, 1)}

	info := ScoreTask(task, commands)
	assert.Equal(t, 15*24/100, info.BestEstimated)
}

func TestScoreInfo_ScoreFormula(t *testing.T) {
	info := ScoreInfo{Width: 3, Height: 3, BestEstimated: 1, TeamTime: 5}
	assert.InDelta(t, 1000.0*info.LogWH()*info.Ratio(), info.Score(), 1e-9)
}

func TestCountBoosters(t *testing.T) {
	boosters := []core.Booster{
		{Kind: core.Cloning, Point: core.Point{X: 0, Y: 0}},
		{Kind: core.Cloning, Point: core.Point{X: 1, Y: 0}},
		{Kind: core.Drill, Point: core.Point{X: 2, Y: 0}},
	}
	c := CountBoosters(boosters)
	assert.Equal(t, 2, c.Cloning)
	assert.Equal(t, 1, c.Drill)
	assert.Equal(t, 0, c.FastMove)
}

func TestTaskID(t *testing.T) {
	assert.Equal(t, "042", taskID("/some/dir/prob-042.desc"))
	assert.Equal(t, "1", taskID("prob-1.desc"))
}
