// Package puzzlegen implements the puzzle constructor: turning a
// Puzzle descriptor (size bounds, vertex bounds, required/forbidden
// points, booster counts) into a concrete Task whose room polygon
// satisfies every constraint.
package puzzlegen

// Range is a half-open integer interval [Start, End) along one row's
// X axis. Its interface is reconstructed from every call site in
// original_source/src/puzzle.rs — the concrete type was not present in
// the retrieved utils.rs snapshot.
type Range struct {
	Start, End int
}

// NewRange builds the interval [start, end).
func NewRange(start, end int) Range { return Range{Start: start, End: end} }

// Len returns the interval's width.
func (r Range) Len() int { return r.End - r.Start }

// Split cuts r around mid, excluding mid itself: the point at x=mid is
// never included in either half (it is the forbidden column). The
// first half is [r.Start, mid); the second is [mid+1, r.End).
func (r Range) Split(mid int) (Range, Range) {
	return Range{Start: r.Start, End: mid}, Range{Start: mid + 1, End: r.End}
}

// ContainsAll reports whether every x in xs lies in [r.Start, r.End).
func (r Range) ContainsAll(xs []int) bool {
	for _, x := range xs {
		if x < r.Start || x >= r.End {
			return false
		}
	}
	return true
}

// Intersect reports whether r and other overlap at all.
func (r Range) Intersect(other Range) bool {
	lo, hi := r.Start, r.End
	if other.Start > lo {
		lo = other.Start
	}
	if other.End < hi {
		hi = other.End
	}
	return lo < hi
}

// RemoveEnd shrinks the interval by one cell from its end.
func (r Range) RemoveEnd() Range { return Range{Start: r.Start, End: r.End - 1} }

// RemoveBegin shrinks the interval by one cell from its start.
func (r Range) RemoveBegin() Range { return Range{Start: r.Start + 1, End: r.End} }
