package codec

import (
	"fmt"
	"strings"

	"github.com/ichyo/icfpc2019-public/internal/core"
)

// ParseCommands parses a full solution: one CMDS sequence per robot,
// joined by '#'. Grounded on spec.md 4.E's CMDS grammar; '#' never
// appears inside a command so splitting on it first is safe and
// matches the original's segment-by-segment structure.
func ParseCommands(s string) (core.Commands, error) {
	parts := strings.Split(s, "#")
	out := make(core.Commands, len(parts))
	for i, part := range parts {
		rc, err := parseRobotCommands(part)
		if err != nil {
			return nil, fmt.Errorf("codec: robot %d commands: %w", i, err)
		}
		out[i] = rc
	}
	return out, nil
}

// EmitCommands renders cmds back into the CMDS wire grammar; the
// inverse of ParseCommands. Commands.String already implements it.
func EmitCommands(cmds core.Commands) string { return cmds.String() }

func parseRobotCommands(s string) (core.RobotCommands, error) {
	sc := newScanner(s)
	var cmds core.RobotCommands
	for {
		r, ok := sc.peek()
		if !ok {
			return cmds, nil
		}
		sc.next()
		switch r {
		case 'W':
			cmds = append(cmds, core.NewMoveCommand(core.MoveUp))
		case 'S':
			cmds = append(cmds, core.NewMoveCommand(core.MoveDown))
		case 'A':
			cmds = append(cmds, core.NewMoveCommand(core.MoveLeft))
		case 'D':
			cmds = append(cmds, core.NewMoveCommand(core.MoveRight))
		case 'Z':
			cmds = append(cmds, core.NewMoveCommand(core.Noop))
		case 'E':
			cmds = append(cmds, core.NewMoveCommand(core.TurnRight))
		case 'Q':
			cmds = append(cmds, core.NewMoveCommand(core.TurnLeft))
		case 'B':
			p, err := readPoint(sc)
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, core.NewHandCommand(p))
		case 'F':
			cmds = append(cmds, core.Command{Kind: core.CmdFastWheel})
		case 'L':
			cmds = append(cmds, core.Command{Kind: core.CmdDrill})
		case 'R':
			cmds = append(cmds, core.Command{Kind: core.CmdResetBeacon})
		case 'T':
			p, err := readPoint(sc)
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, core.Command{Kind: core.CmdShiftBeacon, Point: p})
		case 'C':
			cmds = append(cmds, core.CloningCommand)
		default:
			return nil, fmt.Errorf("codec: unknown command byte %q", r)
		}
	}
}
