// Package core defines the domain model shared by the solver and the
// puzzle constructor: points, directions, orthogonal polygons, the dense
// grid store, tasks, boosters, commands, and robots.
package core

import "strconv"

// Point is an integer 2-D vector. The grid is y-up; (0,0) is the
// bottom-left cell.
type Point struct {
	X, Y int
}

// NewPoint constructs a Point.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// MoveWith returns the point reached by applying a single Move.
// Turns and Noop leave the point unchanged.
func (p Point) MoveWith(m Move) Point {
	switch m {
	case MoveUp:
		return Point{p.X, p.Y + 1}
	case MoveDown:
		return Point{p.X, p.Y - 1}
	case MoveRight:
		return Point{p.X + 1, p.Y}
	case MoveLeft:
		return Point{p.X - 1, p.Y}
	default:
		return p
	}
}

// RevertWith returns the point that MoveWith(m) would have been applied
// to in order to reach p. It is the inverse of MoveWith for linear moves.
func (p Point) RevertWith(m Move) Point {
	switch m {
	case MoveUp:
		return Point{p.X, p.Y - 1}
	case MoveDown:
		return Point{p.X, p.Y + 1}
	case MoveRight:
		return Point{p.X - 1, p.Y}
	case MoveLeft:
		return Point{p.X + 1, p.Y}
	default:
		return p
	}
}

// pointString renders a Point in the wire grammar's POINT form: (x,y).
func pointString(p Point) string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}
