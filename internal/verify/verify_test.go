package verify

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ichyo/icfpc2019-public/internal/core"
	"github.com/ichyo/icfpc2019-public/internal/solver"
)

func squareRoom(w, h int) core.Map {
	return core.NewMap([]core.Point{{0, 0}, {w, 0}, {w, h}, {0, h}})
}

func TestReplay_ActualSolverOutputPasses(t *testing.T) {
	task := core.NewTask("t", squareRoom(4, 3), core.Point{X: 0, Y: 0}, nil, nil)

	rng := rand.New(rand.NewSource(9))
	s := solver.NewState(&task, rng)
	for !s.Done() {
		s.Step()
	}
	commands := s.Commands()

	report, err := Replay(&task, commands)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, 0, report.RemainingFloor)
	assert.Equal(t, 1, report.RobotCount)
}

func TestReplay_RejectsMoveOffFloor(t *testing.T) {
	task := core.NewTask("t", squareRoom(1, 1), core.Point{X: 0, Y: 0}, nil, nil)
	commands := core.Commands{core.RobotCommands{core.NewMoveCommand(core.MoveUp)}}

	_, err := Replay(&task, commands)
	assert.Error(t, err)
}

func TestReplay_EmptyCommandsRejected(t *testing.T) {
	task := core.NewTask("t", squareRoom(1, 1), core.Point{X: 0, Y: 0}, nil, nil)
	_, err := Replay(&task, core.Commands{})
	assert.Error(t, err)
}

// TestReplay_ClonedRobotSequenceStaysGloballyAligned covers the 3x3
// room with one Cloning and one Spawn cell from spec.md's worked
// example: the solver fetches Cloning, returns to the Spawn cell, and
// emits a second robot partway through the attempt. Commands() must
// render the clone's sequence aligned to the global turn count so
// Replay (which indexes every robot by the shared turn number) reads
// the clone's real actions instead of dropping them.
func TestReplay_ClonedRobotSequenceStaysGloballyAligned(t *testing.T) {
	task := core.NewTask(
		"t",
		squareRoom(3, 3),
		core.Point{X: 0, Y: 0},
		nil,
		[]core.Booster{
			{Kind: core.Cloning, Point: core.Point{X: 2, Y: 2}},
			{Kind: core.Spawn, Point: core.Point{X: 0, Y: 0}},
		},
	)

	rng := rand.New(rand.NewSource(1))
	s := solver.NewState(&task, rng)
	for !s.Done() {
		s.Step()
	}
	commands := s.Commands()

	report, err := Replay(&task, commands)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, 0, report.RemainingFloor)
	assert.Equal(t, 1, report.CloneCommands)
	assert.Equal(t, 2, report.RobotCount)
}
