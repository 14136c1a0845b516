package core

// Puzzle is the input to the Puzzle Constructor: size and vertex bounds,
// booster counts, and the point sets the synthesized room must include
// or exclude.
type Puzzle struct {
	Block, Epoch int
	MaxLength    int
	VertexMin    int
	VertexMax    int

	HandCount  int
	FastCount  int
	DrillCount int
	TeleCount  int
	CloneCount int
	SpawnCount int

	Includes []Point
	Excludes []Point
}

// Len is the working grid side length, one less than MaxLength.
func (p Puzzle) Len() int { return p.MaxLength - 1 }
