package core

// Matrix is a fixed-capacity, row-major dense grid. Get on an
// out-of-range point returns the zero value of T and ok=false instead of
// panicking, so callers never need a boundary check of their own.
type Matrix[T any] struct {
	width, height int
	inner         []T
}

// NewMatrix allocates a width x height grid with every cell set to init.
func NewMatrix[T any](width, height int, init T) *Matrix[T] {
	m := &Matrix[T]{width: width, height: height, inner: make([]T, width*height)}
	for i := range m.inner {
		m.inner[i] = init
	}
	return m
}

// Width returns the grid width.
func (m *Matrix[T]) Width() int { return m.width }

// Height returns the grid height.
func (m *Matrix[T]) Height() int { return m.height }

// inBounds reports whether p falls within [0,width) x [0,height).
func (m *Matrix[T]) inBounds(p Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

func (m *Matrix[T]) index(p Point) int {
	return p.Y*m.width + p.X
}

// Get returns the cell at p and true, or the zero value and false when p
// is outside the grid.
func (m *Matrix[T]) Get(p Point) (T, bool) {
	if !m.inBounds(p) {
		var zero T
		return zero, false
	}
	return m.inner[m.index(p)], true
}

// Set stores value at p. It is a fatal usage error (panic) to Set an
// out-of-bounds point, matching the spec's "Out-of-bounds Matrix.set is
// fatal" invariant.
func (m *Matrix[T]) Set(p Point, value T) {
	if !m.inBounds(p) {
		panic("core: Matrix.Set out of bounds")
	}
	m.inner[m.index(p)] = value
}
