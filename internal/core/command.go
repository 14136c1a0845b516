package core

import (
	"strconv"
	"strings"
)

// Move is a single per-turn action common to every robot.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
	Noop
	TurnLeft
	TurnRight
)

// AllMoves are the four linear moves. The shortest reward-path search
// also expands the two turns (TurnLeft/TurnRight); see expandMoves in
// internal/solver/bfs.go for the full neighbor set.
var AllMoves = [4]Move{MoveUp, MoveDown, MoveLeft, MoveRight}

func (m Move) String() string {
	switch m {
	case MoveUp:
		return "W"
	case MoveDown:
		return "S"
	case MoveLeft:
		return "A"
	case MoveRight:
		return "D"
	case Noop:
		return "Z"
	case TurnLeft:
		return "Q"
	case TurnRight:
		return "E"
	default:
		return "?"
	}
}

// CommandKind tags which wire-level action a Command carries.
type CommandKind int

const (
	CmdMove CommandKind = iota
	CmdNewHand
	CmdFastWheel
	CmdDrill
	CmdResetBeacon
	CmdShiftBeacon
	CmdCloning
)

// Command is a single wire-level player action: a Move, or a booster
// activation. NewHand and ShiftBeacon carry a point argument.
type Command struct {
	Kind  CommandKind
	Move  Move  // valid when Kind == CmdMove
	Point Point // valid when Kind == CmdNewHand or CmdShiftBeacon
}

// NewMoveCommand wraps a Move as a Command.
func NewMoveCommand(m Move) Command { return Command{Kind: CmdMove, Move: m} }

// NewHandCommand builds a NewHand(offset) command.
func NewHandCommand(offset Point) Command { return Command{Kind: CmdNewHand, Point: offset} }

// CloningCommand is the single Cloning command value.
var CloningCommand = Command{Kind: CmdCloning}

func (c Command) String() string {
	switch c.Kind {
	case CmdMove:
		return c.Move.String()
	case CmdNewHand:
		return "B(" + strconv.Itoa(c.Point.X) + "," + strconv.Itoa(c.Point.Y) + ")"
	case CmdFastWheel:
		return "F"
	case CmdDrill:
		return "L"
	case CmdResetBeacon:
		return "R"
	case CmdShiftBeacon:
		return "T(" + strconv.Itoa(c.Point.X) + "," + strconv.Itoa(c.Point.Y) + ")"
	case CmdCloning:
		return "C"
	default:
		return "?"
	}
}

// RobotCommands is the full, ordered command sequence for one robot.
type RobotCommands []Command

func (rc RobotCommands) String() string {
	var b strings.Builder
	for _, c := range rc {
		b.WriteString(c.String())
	}
	return b.String()
}

// Commands is the full per-robot command listing for a solved task. Its
// external representation joins each robot's sequence with '#'. Len is
// the length of the first robot's sequence; every robot's sequence has
// equal length by construction (one command issued per robot per turn).
type Commands []RobotCommands

// Len returns the length of robot 0's sequence, or 0 for an empty task.
func (c Commands) Len() int {
	if len(c) == 0 {
		return 0
	}
	return len(c[0])
}

func (c Commands) String() string {
	parts := make([]string, len(c))
	for i, rc := range c {
		parts[i] = rc.String()
	}
	return strings.Join(parts, "#")
}

// Buy is a multiset of purchasable BoosterTypes (Spawn is never
// buyable). Its wire form is the concatenation of single-letter codes.
type Buy []BoosterType

// Price returns the credit cost of one unit of a booster type, or 0 for
// a type that cannot be bought (Spawn).
func Price(t BoosterType) int {
	switch t {
	case Cloning:
		return 2000
	case Drill:
		return 700
	case Teleports:
		return 1200
	case FastMove:
		return 300
	case NewHandBooster:
		return 1000
	default:
		return 0
	}
}

func (b Buy) String() string {
	var s strings.Builder
	for _, t := range b {
		s.WriteString(t.String())
	}
	return s.String()
}
