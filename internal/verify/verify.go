// Package verify replays a solved Commands sequence against its Task
// and checks the universal properties spec.md 8 requires of every
// emitted solution. Adapted from the shape of the teacher's
// internal/sim simulator (a config-driven replay loop collecting a
// findings struct) but purpose-built for one-shot correctness replay
// rather than continuous field-telemetry simulation.
package verify

import (
	"fmt"

	"github.com/ichyo/icfpc2019-public/internal/core"
	"github.com/ichyo/icfpc2019-public/internal/solver"
)

// Report is the outcome of replaying one Commands against its Task.
type Report struct {
	TurnsSimulated int
	RemainingFloor int
	CloneCommands  int
	RobotCount     int
}

// OK reports whether every universal property held.
func (r Report) OK() bool {
	return r.RemainingFloor == 0 && r.RobotCount == 1+r.CloneCommands
}

// Replay steps task forward turn by turn, feeding robot i the command
// at index turn of sequence i (Noop once a robot's own sequence is exhausted,
// matching trailing-Noop padding), and checks:
//   - every floor cell ends up passed,
//   - every robot's point never leaves valid floor,
//   - (0,0) is present in every robot's BodiesDiff,
//   - a Cloning command is only issued while standing on a Spawn cell
//     with a positive clone inventory, and a NewHand command only with
//     a positive hand inventory,
//   - the final robot count is 1 plus the number of Cloning commands.
//
// Grounded in the teacher's internal/sim/simulator.go — a config-driven
// replay loop that steps a scenario turn by turn and accumulates a
// findings struct — repurposed here for one-shot solution checking
// instead of continuous real-time telemetry.
func Replay(task *core.Task, commands core.Commands) (Report, error) {
	if len(commands) == 0 {
		return Report{}, fmt.Errorf("verify: empty commands")
	}
	turns := commands.Len()

	s := solver.NewState(task, nil)
	cloneCommands := 0

	for turn := 0; turn < turns; turn++ {
		snapshot := append([]*core.Robot(nil), s.Robots()...)
		for i, r := range snapshot {
			s.PassCurrentPoint(r)

			if !hasZeroOffset(r) {
				return Report{}, fmt.Errorf("verify: robot %d lost its (0,0) manipulator offset", i)
			}

			cmd := commandAt(commands, i, turn)

			switch cmd.Kind {
			case core.CmdMove:
				next := r.Place.MoveWith(cmd.Move)
				if isLinearMove(cmd.Move) && !s.IsValid(next.Point) {
					return Report{}, fmt.Errorf("verify: robot %d moved off floor to %v", i, next.Point)
				}
				r.Place = next
			case core.CmdNewHand:
				if !s.SpendHand() {
					return Report{}, fmt.Errorf("verify: robot %d issued NewHand without a collected hand", i)
				}
				r.BodiesDiff = append(r.BodiesDiff, cmd.Point)
			case core.CmdCloning:
				if !s.HasSpawnMarker(r.Place.Point) {
					return Report{}, fmt.Errorf("verify: robot %d issued Cloning off a Spawn cell", i)
				}
				if !s.SpendClone() {
					return Report{}, fmt.Errorf("verify: robot %d issued Cloning without a collected clone", i)
				}
				cloneCommands++
				s.AppendRobot(r.Clone())
			}
		}
	}

	return Report{
		TurnsSimulated: turns,
		RemainingFloor: s.Remaining(),
		CloneCommands:  cloneCommands,
		RobotCount:     len(s.Robots()),
	}, nil
}

func hasZeroOffset(r *core.Robot) bool {
	for _, d := range r.BodiesDiff {
		if d == (core.Point{}) {
			return true
		}
	}
	return false
}

func isLinearMove(m core.Move) bool {
	switch m {
	case core.MoveUp, core.MoveDown, core.MoveLeft, core.MoveRight:
		return true
	default:
		return false
	}
}

func commandAt(commands core.Commands, robotIdx, turn int) core.Command {
	if robotIdx >= len(commands) {
		return core.NewMoveCommand(core.Noop)
	}
	seq := commands[robotIdx]
	if turn >= len(seq) {
		return core.NewMoveCommand(core.Noop)
	}
	return seq[turn]
}
