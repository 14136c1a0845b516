// Package solver implements the per-turn coverage simulation: State
// construction from a Task, goal selection, the shortest-reward-path
// BFS, and the deadline-bounded best-of-N outer loop.
package solver

import (
	"math/rand"

	"github.com/ichyo/icfpc2019-public/internal/core"
)

// boosterCell is one cell of the booster grid: present marks whether an
// uncollected booster (or persistent Spawn marker) sits there.
type boosterCell struct {
	present bool
	kind    core.BoosterType
}

// State owns every grid and counter for a single solve attempt. It is
// discarded once the attempt finishes; concurrent attempts never share
// state.
type State struct {
	task *core.Task

	valid      *core.Matrix[bool]
	passed     *core.Matrix[bool]
	boosterMap *core.Matrix[boosterCell]

	remainingHand  int
	remainingClone int
	remainingPass  int

	handCount  int
	teleCount  int
	cloneCount int

	robots []*core.Robot
	turn   int

	rng *rand.Rand
}

// NewState builds the initial State for one attempt at solving task.
func NewState(task *core.Task, rng *rand.Rand) *State {
	mapPoints := task.Room.EnumeratePoints()

	valid := core.NewMatrix[bool](task.Width, task.Height, false)
	passed := core.NewMatrix[bool](task.Width, task.Height, true)
	boosterMap := core.NewMatrix[boosterCell](task.Width, task.Height, boosterCell{})

	remainingPass := 0
	for _, p := range mapPoints {
		valid.Set(p, true)
		passed.Set(p, false)
		remainingPass++
	}

	remainingClone := 0
	hasSpawn := false
	for _, b := range task.Boosters {
		boosterMap.Set(b.Point, boosterCell{present: true, kind: b.Kind})
		if b.Kind == core.Cloning {
			remainingClone++
		}
		if b.Kind == core.Spawn {
			hasSpawn = true
		}
	}
	if !hasSpawn {
		remainingClone = 0
	}

	for _, obstacle := range task.Obstacles {
		for _, p := range obstacle.EnumeratePoints() {
			if ok, _ := valid.Get(p); ok {
				valid.Set(p, false)
				passed.Set(p, true)
				remainingPass--
			}
		}
	}

	s := &State{
		task:           task,
		valid:          valid,
		passed:         passed,
		boosterMap:     boosterMap,
		remainingHand:  countBoosterKind(task.Boosters, core.NewHandBooster),
		remainingClone: remainingClone,
		remainingPass:  remainingPass,
		robots:         []*core.Robot{core.NewPrimaryRobot(task.Initial)},
		rng:            rng,
	}
	return s
}

func countBoosterKind(boosters []core.Booster, kind core.BoosterType) int {
	n := 0
	for _, b := range boosters {
		if b.Kind == kind {
			n++
		}
	}
	return n
}

// IsValid reports whether p is a floor cell.
func (s *State) IsValid(p core.Point) bool {
	ok, present := s.valid.Get(p)
	return present && ok
}

// Remaining returns the number of floor cells not yet covered.
func (s *State) Remaining() int { return s.remainingPass }

// Turn returns the current turn counter.
func (s *State) Turn() int { return s.turn }

// Robots exposes the attempt's live robot list (snapshot-safe: callers
// that need the turn-start count should capture len(s.Robots()) first).
func (s *State) Robots() []*core.Robot { return s.robots }

// lowestIndexWithNewBodies returns the index of the lowest-indexed robot
// (over the turn-start snapshot) with a non-empty NewBodies queue, or -1
// if none has one.
func (s *State) lowestIndexWithNewBodies(snapshot []*core.Robot) int {
	for i, r := range snapshot {
		if len(r.NewBodies) > 0 {
			return i
		}
	}
	return -1
}

// handReach resolves a manipulator offset from place, gating on
// line-of-sight for extended offsets (max component > 1). It returns the
// tip point and whether the offset's line of sight is unobstructed; for
// offsets with max component <= 1 it is always reachable. See spec open
// question (c): the stepping pattern only covers offsets that are
// purely horizontal, vertical, or 45-degree diagonal, preserved as
// specified rather than generalized to arbitrary slopes.
func (s *State) handReach(place core.Place, offset core.Point) (core.Point, bool) {
	tip := place.Hand(offset)
	maxComp := abs(offset.X)
	if abs(offset.Y) > maxComp {
		maxComp = abs(offset.Y)
	}
	if maxComp <= 1 {
		return tip, true
	}

	stepX, stepY := sign(offset.X), sign(offset.Y)
	for i := 1; i < maxComp; i++ {
		step := core.Point{X: stepX * i, Y: stepY * i}
		mid := place.Point.Add(place.Direction.Convert(step))
		if !s.IsValid(mid) {
			return tip, false
		}
	}
	return tip, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// IsGoal implements the first-match-wins goal-selection priority list
// from spec.md 4.C for robot snapshot[robotIdx] evaluating candidate
// place.
func (s *State) IsGoal(snapshot []*core.Robot, robotIdx int, place core.Place) bool {
	if s.remainingClone > 0 {
		cell, ok := s.boosterMap.Get(place.Point)
		return ok && cell.present && cell.kind == core.Cloning
	}
	if s.cloneCount > 0 {
		cell, ok := s.boosterMap.Get(place.Point)
		return ok && cell.present && cell.kind == core.Spawn
	}
	if s.remainingHand > 0 && robotIdx == s.lowestIndexWithNewBodies(snapshot) {
		cell, ok := s.boosterMap.Get(place.Point)
		return ok && cell.present && cell.kind == core.NewHandBooster
	}

	if !s.IsValid(place.Point) {
		return false
	}
	robot := snapshot[robotIdx]
	notPassed := false
	for _, diff := range robot.BodiesDiff {
		tip, reachable := s.handReach(place, diff)
		if !reachable {
			continue
		}
		if passedVal, ok := s.passed.Get(tip); ok && !passedVal {
			notPassed = true
			break
		}
	}
	if notPassed {
		return true
	}
	cell, ok := s.boosterMap.Get(place.Point)
	return ok && cell.present && cell.kind == core.NewHandBooster
}
