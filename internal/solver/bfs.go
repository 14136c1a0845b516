package solver

import (
	"math/rand"

	"github.com/ichyo/icfpc2019-public/internal/core"
)

// expandMoves is the full per-turn neighbor set a shortest-reward-path
// search considers from any place: the four linear steps plus the two
// turns.
var expandMoves = [6]core.Move{
	core.MoveUp, core.MoveDown, core.MoveLeft, core.MoveRight,
	core.TurnLeft, core.TurnRight,
}

type bfsNode struct {
	place  core.Place
	move   core.Move
	parent *bfsNode
	cost   int
}

// score is the lexicographic comparison tuple for a goal candidate:
// (inverted cost, manipulator-reachable uncovered cell count, a random
// tiebreak). Cost is inverted so "greater" always means "better" for
// every component, matching the reward-path comparator in
// original_source/src/solve.rs, generalized with a random third field.
type score struct {
	invCost        int
	reachUncovered int
	tiebreak       float64
}

func (s score) less(other score) bool {
	if s.invCost != other.invCost {
		return s.invCost < other.invCost
	}
	if s.reachUncovered != other.reachUncovered {
		return s.reachUncovered < other.reachUncovered
	}
	return s.tiebreak < other.tiebreak
}

// reachableUncovered counts the manipulator endpoints of robot that
// land on a not-yet-passed floor cell from place, honoring hand_reach
// gating.
func (s *State) reachableUncovered(robot *core.Robot, place core.Place) int {
	n := 0
	for _, diff := range robot.BodiesDiff {
		tip, reachable := s.handReach(place, diff)
		if !reachable {
			continue
		}
		if passed, ok := s.passed.Get(tip); ok && !passed {
			n++
		}
	}
	return n
}

// FindShortestRewardPath runs a breadth-first search from
// snapshot[robotIdx]'s current place, returning the move sequence to
// the best-scoring goal at the shallowest cost level a goal was found
// at. It returns nil if no goal is reachable.
//
// The search stops expanding new nodes the instant any goal is found,
// but keeps draining already-queued nodes at that same cost so the
// random tiebreak can compare every equal-cost candidate — mirroring
// "return on first goal found" from original_source/src/solve.rs,
// generalized to a full level rather than a single node so ties break
// by score instead of by queue order.
func (s *State) FindShortestRewardPath(snapshot []*core.Robot, robotIdx int) []core.Move {
	robot := snapshot[robotIdx]
	start := robot.Place

	visited := map[core.Place]bool{start: true}
	queue := []*bfsNode{{place: start, cost: 0}}

	foundGoal := false
	var bestScore score
	var bestNode *bfsNode
	var bestCost int

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if foundGoal && cur.cost > bestCost {
			break
		}

		if s.IsGoal(snapshot, robotIdx, cur.place) {
			sc := score{
				invCost:        -cur.cost,
				reachUncovered: s.reachableUncovered(robot, cur.place),
				tiebreak:       s.randFloat(),
			}
			if !foundGoal || bestScore.less(sc) {
				bestScore = sc
				bestNode = cur
				bestCost = cur.cost
			}
			foundGoal = true
			continue
		}

		if foundGoal {
			continue
		}

		order := s.movePerm()
		for _, idx := range order {
			m := expandMoves[idx]
			next := cur.place.MoveWith(m)
			if visited[next] {
				continue
			}
			if !s.validPlace(next) {
				continue
			}
			visited[next] = true
			queue = append(queue, &bfsNode{place: next, move: m, parent: cur, cost: cur.cost + 1})
		}
	}

	if bestNode == nil {
		return nil
	}

	path := make([]core.Move, bestNode.cost)
	for n := bestNode; n.parent != nil; n = n.parent {
		path[n.cost-1] = n.move
	}
	return path
}

// validPlace rejects places whose point has left the floor. Turns never
// move the point so they are always structurally valid.
func (s *State) validPlace(p core.Place) bool {
	return s.IsValid(p.Point)
}

func (s *State) randFloat() float64 {
	if s.rng != nil {
		return s.rng.Float64()
	}
	return rand.Float64()
}

func (s *State) movePerm() []int {
	if s.rng != nil {
		return s.rng.Perm(len(expandMoves))
	}
	return rand.Perm(len(expandMoves))
}
