package core

// BoosterType tags a pickup lying on a floor cell, or a persistent Spawn
// marker (Spawn is never picked up or bought).
type BoosterType int

const (
	NewHandBooster BoosterType = iota
	FastMove
	Drill
	Teleports
	Cloning
	Spawn
)

func (t BoosterType) String() string {
	switch t {
	case NewHandBooster:
		return "B"
	case FastMove:
		return "F"
	case Drill:
		return "L"
	case Teleports:
		return "R"
	case Cloning:
		return "C"
	case Spawn:
		return "X"
	default:
		return "?"
	}
}

// BoosterTypeFromByte maps a single wire-grammar letter to a BoosterType.
// ok is false for an unrecognized letter.
func BoosterTypeFromByte(c byte) (BoosterType, bool) {
	switch c {
	case 'B':
		return NewHandBooster, true
	case 'F':
		return FastMove, true
	case 'L':
		return Drill, true
	case 'R':
		return Teleports, true
	case 'C':
		return Cloning, true
	case 'X':
		return Spawn, true
	default:
		return 0, false
	}
}

// Booster is a booster pickup (or Spawn marker) sitting on a floor cell.
type Booster struct {
	Kind  BoosterType
	Point Point
}

func (b Booster) String() string {
	return b.Kind.String() + pointString(b.Point)
}
