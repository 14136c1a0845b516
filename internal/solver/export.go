package solver

import "github.com/ichyo/icfpc2019-public/internal/core"

// This file exposes the handful of State internals internal/verify
// needs to replay an externally supplied Commands sequence, as opposed
// to turn.go's Step (which plans its own commands via BFS). Kept
// separate from state.go/turn.go so those stay focused on the solver's
// own attempt loop.

// PassCurrentPoint marks robot's manipulator endpoints as passed and
// collects any booster at its own cell, exactly as Step does
// internally. Exported for replay-driven callers.
func (s *State) PassCurrentPoint(robot *core.Robot) { s.passCurrentPoint(robot) }

// HasSpawnMarker reports whether p carries the permanent Spawn marker.
func (s *State) HasSpawnMarker(p core.Point) bool {
	present, _ := s.spawnMarker(p)
	return present
}

// SpendHand reports whether a NewHand command may be issued right now
// (a collected hand is available) and, if so, consumes it.
func (s *State) SpendHand() bool {
	if s.handCount <= 0 {
		return false
	}
	s.handCount--
	return true
}

// SpendClone reports whether a Cloning command may be issued right now
// (a collected clone is available) and, if so, consumes it.
func (s *State) SpendClone() bool {
	if s.cloneCount <= 0 {
		return false
	}
	s.cloneCount--
	return true
}

// AppendRobot adds a newly cloned robot to the attempt, to act starting
// the next turn.
func (s *State) AppendRobot(r *core.Robot) { s.robots = append(s.robots, r) }
