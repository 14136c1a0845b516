package core

import (
	"sort"
	"strings"
)

// edgeAxis tags whether a polygon edge runs horizontally or vertically.
type edgeAxis int

const (
	axisHorizontal edgeAxis = iota
	axisVertical
)

// Map is the ordered vertex list of an orthogonal (rectilinear) polygon,
// given clockwise or counterclockwise. Consecutive edges alternate
// horizontal/vertical.
type Map struct {
	Vertices []Point
}

// NewMap wraps a vertex slice as a Map.
func NewMap(vertices []Point) Map {
	return Map{Vertices: vertices}
}

// Len returns the vertex count.
func (m Map) Len() int { return len(m.Vertices) }

func (m Map) String() string {
	parts := make([]string, len(m.Vertices))
	for i, p := range m.Vertices {
		parts[i] = pointString(p)
	}
	return strings.Join(parts, ",")
}

// polyEdge is one edge of a Map, classified by axis.
type polyEdge struct {
	axis edgeAxis
	p, q Point
}

// iterEdges walks the polygon's edges by peeking the cyclic successor of
// each vertex, classifying each edge as horizontal or vertical. Panics if
// an edge is neither (a malformed, non-rectilinear polygon).
func (m Map) iterEdges() []polyEdge {
	n := len(m.Vertices)
	res := make([]polyEdge, 0, n)
	for i := 0; i < n; i++ {
		cur := m.Vertices[i]
		next := m.Vertices[(i+1)%n]
		switch {
		case cur.X == next.X:
			res = append(res, polyEdge{axisVertical, cur, next})
		case cur.Y == next.Y:
			res = append(res, polyEdge{axisHorizontal, cur, next})
		default:
			panic("core: polygon edge is neither horizontal nor vertical")
		}
	}
	return res
}

// ComputeWidth returns the polygon's vertex-extent width: max X.
func (m Map) ComputeWidth() int {
	maxX := m.Vertices[0].X
	for _, p := range m.Vertices[1:] {
		if p.X > maxX {
			maxX = p.X
		}
	}
	return maxX
}

// ComputeHeight returns the polygon's vertex-extent height: max Y.
func (m Map) ComputeHeight() int {
	maxY := m.Vertices[0].Y
	for _, p := range m.Vertices[1:] {
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return maxY
}

// EnumeratePoints yields the set of integer cells (identified by their
// lower-left corner) whose open unit square lies strictly inside the
// polygon, via a scanline over horizontal edges. The result is the same
// set regardless of vertex order (clockwise/counterclockwise) or which
// vertex the list starts at.
func (m Map) EnumeratePoints() []Point {
	minX, maxX := m.Vertices[0].X, m.Vertices[0].X
	for _, p := range m.Vertices[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
	}

	crossYs := make(map[int][]int)
	for _, e := range m.iterEdges() {
		if e.axis != axisHorizontal {
			continue
		}
		lo, hi := e.p.X, e.q.X
		if lo > hi {
			lo, hi = hi, lo
		}
		for x := lo; x < hi; x++ {
			crossYs[x] = append(crossYs[x], e.p.Y)
		}
	}

	var res []Point
	for x := minX; x < maxX; x++ {
		ys := crossYs[x]
		if len(ys)%2 != 0 {
			panic("core: odd horizontal-edge crossing count")
		}
		sort.Ints(ys)
		for i := 0; i+1 < len(ys); i += 2 {
			lo, hi := ys[i], ys[i+1]
			for y := lo; y < hi; y++ {
				res = append(res, Point{X: x, Y: y})
			}
		}
	}
	return res
}
