package solver

import "github.com/ichyo/icfpc2019-public/internal/core"

// passCurrentPoint marks every manipulator endpoint of robot as passed
// and, if robot's own cell holds an uncollected booster, collects it.
// Only the robot's own cell is checked for pickup; manipulator
// endpoints only ever mark coverage, never collect.
func (s *State) passCurrentPoint(robot *core.Robot) {
	for _, diff := range robot.BodiesDiff {
		tip, reachable := s.handReach(robot.Place, diff)
		if !reachable {
			continue
		}
		if passed, ok := s.passed.Get(tip); ok && !passed {
			s.passed.Set(tip, true)
			s.remainingPass--
		}
	}

	cell, ok := s.boosterMap.Get(robot.Place.Point)
	if !ok || !cell.present || cell.kind == core.Spawn {
		return
	}
	s.boosterMap.Set(robot.Place.Point, boosterCell{})
	switch cell.kind {
	case core.NewHandBooster:
		s.handCount++
		s.remainingHand--
	case core.Cloning:
		s.cloneCount++
		s.remainingClone--
	case core.Teleports:
		s.teleCount++
	}
}

// issueCommand decides and applies robotIdx's action for the current
// turn, appending the resulting Command to its Executed history. It may
// append a freshly cloned robot to s.robots; the clone takes its first
// turn starting on the following call to Step.
func (s *State) issueCommand(snapshot []*core.Robot, robotIdx int) {
	robot := snapshot[robotIdx]

	if s.handCount > 0 && len(robot.NewBodies) > 0 {
		offset := robot.NewBodies[0]
		robot.NewBodies = robot.NewBodies[1:]
		robot.BodiesDiff = append(robot.BodiesDiff, offset)
		s.handCount--
		cmd := core.NewHandCommand(offset)
		robot.Executed = append(robot.Executed, cmd)
		// The manipulator just grew, so any already-planned path is
		// stale: drop it and let the next turn's BFS replan against
		// the new BodiesDiff.
		robot.Commands = nil
		return
	}

	if s.cloneCount > 0 {
		if present, _ := s.spawnMarker(robot.Place.Point); present {
			s.cloneCount--
			clone := robot.Clone()
			// The clone does not act on its birth turn (s.turn): it
			// only joins the loop starting next Step. Its rendered
			// sequence still needs an entry at that index so its own
			// Executed commands, which start accumulating next turn,
			// land at the matching global turn.
			clone.Prefix = append(clone.Prefix, core.NewMoveCommand(core.Noop))
			s.robots = append(s.robots, clone)
			robot.Executed = append(robot.Executed, core.CloningCommand)
			return
		}
	}

	if len(robot.Commands) == 0 {
		path := s.FindShortestRewardPath(snapshot, robotIdx)
		moves := make([]core.Command, len(path))
		for i, m := range path {
			moves[i] = core.NewMoveCommand(m)
		}
		if len(moves) == 0 {
			moves = []core.Command{core.NewMoveCommand(core.Noop)}
		}
		robot.Commands = moves
	}

	cmd := robot.Commands[0]
	robot.Commands = robot.Commands[1:]
	robot.Place = robot.Place.MoveWith(cmd.Move)
	robot.Executed = append(robot.Executed, cmd)
}

// spawnMarker reports whether p carries the permanent Spawn marker this
// attempt's boosterMap preserves (Spawn markers are never consumed).
func (s *State) spawnMarker(p core.Point) (bool, core.BoosterType) {
	cell, ok := s.boosterMap.Get(p)
	if !ok {
		return false, 0
	}
	return cell.present && cell.kind == core.Spawn, cell.kind
}

// Step advances the attempt by one turn: every robot alive at the
// start of the turn passes its current cell, then issues exactly one
// command. As soon as every floor cell is covered the loop stops, so
// that robot and the ones after it in the snapshot issue no command on
// that final turn. Clones spawned mid-turn act for the first time on
// the next call to Step.
func (s *State) Step() {
	snapshot := append([]*core.Robot(nil), s.robots...)
	for i, r := range snapshot {
		s.passCurrentPoint(r)
		if s.remainingPass <= 0 {
			break
		}
		s.issueCommand(snapshot, i)
	}
	s.turn++
}

// Done reports whether every floor cell has been covered.
func (s *State) Done() bool { return s.remainingPass <= 0 }

// Commands renders the attempt's command log, one sequence per robot
// that ever existed. Each sequence is aligned to the GLOBAL turn
// counter: seq[t] is the command in effect at turn t for every robot,
// including clones. A clone's own Executed history only starts the
// turn after it was cloned into existence, so its rendered sequence is
// Prefix (the parent's history through the cloning turn, including a
// Noop for the clone's own birth turn) followed by its own Executed,
// then padded with trailing Noop so every sequence ends on the same
// turn (required by the CMDS wire grammar).
func (s *State) Commands() core.Commands {
	out := make(core.Commands, len(s.robots))
	for i, r := range s.robots {
		seq := make([]core.Command, 0, len(r.Prefix)+len(r.Executed))
		seq = append(seq, r.Prefix...)
		seq = append(seq, r.Executed...)
		for len(seq) < s.turn {
			seq = append(seq, core.NewMoveCommand(core.Noop))
		}
		out[i] = seq
	}
	return out
}
