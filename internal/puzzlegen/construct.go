package puzzlegen

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/ichyo/icfpc2019-public/internal/core"
)

// reachable is one entry of the per-row reachability DP: to is a
// candidate range for the current row, from is the predecessor range
// in the previous row it was reached through.
type reachable struct {
	to, from Range
}

// Construct synthesizes a Task from puzzle, following the six-stage
// construction in spec.md 4.D. It returns an error for every failure
// case the original enumerates (unreachable rows, vertex inflation
// failure, polygon too small, vertex count out of bounds) instead of
// the original's log-and-return-None, since this is a constructor
// function rather than a CLI entry point.
//
// Grounded directly on original_source/src/puzzle.rs's solve_puzzle.
func Construct(puzzle core.Puzzle, rng *rand.Rand) (core.Task, error) {
	length := puzzle.Len()

	for _, p := range puzzle.Includes {
		if p.X < 0 || p.X >= length || p.Y < 0 || p.Y >= length {
			return core.Task{}, fmt.Errorf("puzzlegen: include point %v out of [0,%d)", p, length)
		}
	}
	for _, p := range puzzle.Excludes {
		if p.X < 0 || p.X >= length || p.Y < 0 || p.Y >= length {
			return core.Task{}, fmt.Errorf("puzzlegen: exclude point %v out of [0,%d)", p, length)
		}
	}

	includeXs := make([][]int, length)
	excludeXs := make([][]int, length)
	for _, p := range puzzle.Excludes {
		excludeXs[p.Y] = append(excludeXs[p.Y], p.X)
	}
	for _, p := range puzzle.Includes {
		includeXs[p.Y] = append(includeXs[p.Y], p.X)
	}

	global := NewRange(0, length)
	xRanges := make([][]Range, length)
	for y := 0; y < length; y++ {
		exs := append([]int(nil), excludeXs[y]...)
		if len(exs) == 0 {
			xRanges[y] = []Range{global}
			continue
		}
		sort.Ints(exs)
		first, _ := global.Split(exs[0])
		_, last := global.Split(exs[len(exs)-1])
		row := []Range{first, last}
		for i := 0; i < len(exs)-1; i++ {
			_, afterI := global.Split(exs[i])
			beforeNext, _ := afterI.Split(exs[i+1])
			row = append(row, beforeNext)
		}
		xRanges[y] = row
	}

	reachables := make([][]reachable, length)
	for _, r := range xRanges[0] {
		if r.ContainsAll(includeXs[0]) {
			reachables[0] = append(reachables[0], reachable{to: r, from: r})
		}
	}
	for y := 1; y < length; y++ {
		for _, to := range xRanges[y] {
			if !to.ContainsAll(includeXs[y]) {
				continue
			}
			for _, prev := range reachables[y-1] {
				if to.Intersect(prev.to) {
					reachables[y] = append(reachables[y], reachable{to: to, from: prev.to})
					break
				}
			}
		}
	}

	if len(reachables[length-1]) == 0 {
		return core.Task{}, fmt.Errorf("puzzlegen: unreachable")
	}

	ranges := make([]Range, length)
	cur, next := reachables[length-1][0].to, reachables[length-1][0].from
	ranges[length-1] = cur
	for y := length - 2; y >= 0; y-- {
		found := false
		for _, entry := range reachables[y] {
			if entry.to == next {
				cur, next = entry.to, entry.from
				found = true
				break
			}
		}
		if !found {
			return core.Task{}, fmt.Errorf("puzzlegen: broken reachability chain at row %d", y)
		}
		ranges[y] = cur
	}

	if !increaseVertexNumber(ranges, puzzle.Includes, puzzle.VertexMin) {
		return core.Task{}, fmt.Errorf("puzzlegen: failed to increase vertex count to minimum %d", puzzle.VertexMin)
	}

	room := constructMapFromRanges(ranges)

	if room.Len() < puzzle.VertexMin {
		return core.Task{}, fmt.Errorf("puzzlegen: vertex count %d is less than %d", room.Len(), puzzle.VertexMin)
	}
	if room.Len() > puzzle.VertexMax {
		return core.Task{}, fmt.Errorf("puzzlegen: vertex count %d is greater than %d", room.Len(), puzzle.VertexMax)
	}

	points := room.EnumeratePoints()
	if len(points) < length*length/5 {
		return core.Task{}, fmt.Errorf("puzzlegen: area %d is less than %d", len(points), length*length/5)
	}

	rng.Shuffle(len(points), func(i, j int) { points[i], points[j] = points[j], points[i] })
	source := points
	initial := source[0]
	source = source[1:]

	var boosters []core.Booster
	boosters, source = consumePointsFor(source, puzzle.HandCount, core.NewHandBooster, boosters)
	boosters, source = consumePointsFor(source, puzzle.FastCount, core.FastMove, boosters)
	boosters, source = consumePointsFor(source, puzzle.DrillCount, core.Drill, boosters)
	boosters, source = consumePointsFor(source, puzzle.TeleCount, core.Teleports, boosters)
	boosters, source = consumePointsFor(source, puzzle.CloneCount, core.Cloning, boosters)
	boosters, _ = consumePointsFor(source, puzzle.SpawnCount, core.Spawn, boosters)

	task := core.NewTask("", room, initial, nil, boosters)
	return task, nil
}

// consumePointsFor pops num points off the front of source, tagging
// each as a Booster of kind, and returns the updated booster list and
// remaining source.
func consumePointsFor(source []core.Point, num int, kind core.BoosterType, boosters []core.Booster) ([]core.Booster, []core.Point) {
	for i := 0; i < num; i++ {
		boosters = append(boosters, core.Booster{Kind: kind, Point: source[0]})
		source = source[1:]
	}
	return boosters, source
}

// constructMapFromRanges walks the accepted per-row ranges into a
// vertex list that runs counterclockwise on the y-up grid: bottom edge
// left to right, up each right-edge
// discontinuity row by row, across the top right to left, then down
// each left-edge discontinuity back to the start.
func constructMapFromRanges(ranges []Range) core.Map {
	n := len(ranges)
	var vertices []core.Point
	vertices = append(vertices, core.NewPoint(ranges[0].Start, 0))
	vertices = append(vertices, core.NewPoint(ranges[0].End, 0))
	for y := 0; y < n-1; y++ {
		if ranges[y].End != ranges[y+1].End {
			vertices = append(vertices, core.NewPoint(ranges[y].End, y+1))
			vertices = append(vertices, core.NewPoint(ranges[y+1].End, y+1))
		}
	}
	vertices = append(vertices, core.NewPoint(ranges[n-1].End, n))
	vertices = append(vertices, core.NewPoint(ranges[n-1].Start, n))
	for y := n - 2; y >= 0; y-- {
		if ranges[y].Start != ranges[y+1].Start {
			vertices = append(vertices, core.NewPoint(ranges[y+1].Start, y+1))
			vertices = append(vertices, core.NewPoint(ranges[y].Start, y+1))
		}
	}
	return core.NewMap(vertices)
}

func computeVertexNumber(ranges []Range) int {
	return constructMapFromRanges(ranges).Len()
}

// increaseVertexNumber greedily narrows rows by one cell at an end that
// is flush with the previous row, adding steps to the outline. It makes
// a single pass over rows 1..len-2 and stops early once the tracked
// vertex count reaches minVertex+10. ranges is mutated in place. It
// reports whether the tracked vertex count reached at least minVertex.
func increaseVertexNumber(ranges []Range, includes []core.Point, minVertex int) bool {
	vertexNum := computeVertexNumber(ranges)
	includeSet := make(map[core.Point]bool, len(includes))
	for _, p := range includes {
		includeSet[p] = true
	}

	for i := 1; i < len(ranges)-1; i++ {
		if vertexNum >= minVertex+10 {
			break
		}
		if ranges[i].End == ranges[i-1].End && ranges[i].Len() > 1 &&
			!includeSet[core.NewPoint(ranges[i].End-1, i)] {
			newRange := ranges[i].RemoveEnd()
			if newRange.Intersect(ranges[i-1]) && newRange.Intersect(ranges[i+1]) {
				prevEnd, nextEnd := ranges[i-1].End, ranges[i+1].End
				ranges[i] = newRange
				vertexNum += 2
				if prevEnd == nextEnd {
					vertexNum += 2
				}
				if newRange.End == nextEnd {
					vertexNum -= 2
				}
			}
		}
		if ranges[i].Start == ranges[i-1].Start && ranges[i].Len() > 1 &&
			!includeSet[core.NewPoint(ranges[i].Start, i)] {
			newRange := ranges[i].RemoveBegin()
			if newRange.Intersect(ranges[i-1]) && newRange.Intersect(ranges[i+1]) {
				prevStart, nextStart := ranges[i-1].Start, ranges[i+1].Start
				ranges[i] = newRange
				vertexNum += 2
				if prevStart == nextStart {
					vertexNum += 2
				}
				if newRange.Start == nextStart {
					vertexNum -= 2
				}
			}
		}
	}
	return vertexNum >= minVertex
}
