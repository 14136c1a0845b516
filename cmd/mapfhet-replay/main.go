// Command mapfhet-replay steps through a solved task turn by turn in
// a terminal, letting an operator watch coverage progress. This is a
// supplemental feature: the teacher's cmd/mapfhetvis used a gioui GUI
// window, which has no counterpart in this module's dependency set, so
// a tcell terminal viewer fills the same "watch the solver run" role.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v2"

	"github.com/ichyo/icfpc2019-public/internal/codec"
	"github.com/ichyo/icfpc2019-public/internal/core"
)

func main() {
	app := &cli.App{
		Name:  "mapfhet-replay",
		Usage: "step through a solved task's command log in a terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "task", Usage: "path to a prob-*.desc file", Required: true},
			&cli.StringFlag{Name: "sol", Usage: "path to the matching .sol file", Required: true},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	taskRaw, err := os.ReadFile(c.String("task"))
	if err != nil {
		return err
	}
	task, err := codec.ParseTask(strings.TrimRight(string(taskRaw), "\r\n"))
	if err != nil {
		return err
	}

	solRaw, err := os.ReadFile(c.String("sol"))
	if err != nil {
		return err
	}
	commands, err := codec.ParseCommands(strings.TrimRight(string(solRaw), "\r\n"))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := newViewer(screen, task, commands)
	return v.loop()
}

type viewer struct {
	screen   tcell.Screen
	task     core.Task
	commands core.Commands
	turn     int
	robots   []core.Point
	floor    *core.Matrix[bool]
	valid    *core.Matrix[bool]
}

func newViewer(screen tcell.Screen, task core.Task, commands core.Commands) *viewer {
	valid := core.NewMatrix[bool](task.Width, task.Height, false)
	for _, p := range task.Room.EnumeratePoints() {
		valid.Set(p, true)
	}
	for _, obstacle := range task.Obstacles {
		for _, p := range obstacle.EnumeratePoints() {
			valid.Set(p, false)
		}
	}

	floor := core.NewMatrix[bool](task.Width, task.Height, false)
	robots := make([]core.Point, len(commands))
	for i := range robots {
		robots[i] = task.Initial
	}
	if isFloor, _ := valid.Get(task.Initial); isFloor {
		floor.Set(task.Initial, true)
	}

	return &viewer{screen: screen, task: task, commands: commands, valid: valid, floor: floor, robots: robots}
}

// loop renders the current turn, advances on space/right-arrow, rewinds
// on left-arrow, and quits on q/Esc.
func (v *viewer) loop() error {
	v.render()
	for {
		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyRight || ev.Rune() == ' ':
				v.advance()
			case ev.Key() == tcell.KeyLeft:
				v.rewind()
			}
			v.render()
		case *tcell.EventResize:
			v.screen.Sync()
		}
	}
}

func (v *viewer) advance() {
	if v.turn >= v.commands.Len() {
		return
	}
	for i, rc := range v.commands {
		if v.turn >= len(rc) {
			continue
		}
		v.applyCommand(i, rc[v.turn])
	}
	v.turn++
}

// rewind replays from turn 0 up to turn-1; simpler than tracking undo
// deltas for every command kind, and this viewer is a diagnostic tool,
// not a hot path.
func (v *viewer) rewind() {
	if v.turn == 0 {
		return
	}
	target := v.turn - 1
	*v = *newViewer(v.screen, v.task, v.commands)
	for v.turn < target {
		v.advance()
	}
}

func (v *viewer) applyCommand(robot int, cmd core.Command) {
	p := v.robots[robot]
	switch cmd.Kind {
	case core.CmdMove:
		p = p.MoveWith(cmd.Move)
	case core.CmdCloning:
		// spawns a new robot slot; the viewer only tracks existing slots'
		// positions, so cloning is a no-op for rendering purposes.
	}
	if isFloor, _ := v.valid.Get(p); isFloor {
		v.robots[robot] = p
		v.floor.Set(p, true)
	}
}

func (v *viewer) render() {
	v.screen.Clear()
	for y := 0; y < v.task.Height; y++ {
		for x := 0; x < v.task.Width; x++ {
			ch, style := v.cellGlyph(x, y)
			v.screen.SetContent(x, v.task.Height-1-y, ch, nil, style)
		}
	}
	status := fmt.Sprintf("turn %d/%d  (space/-> advance, <- rewind, q quit)", v.turn, v.commands.Len())
	for i, r := range status {
		v.screen.SetContent(i, v.task.Height+1, r, nil, tcell.StyleDefault)
	}
	v.screen.Show()
}

func (v *viewer) cellGlyph(x, y int) (rune, tcell.Style) {
	p := core.Point{X: x, Y: y}
	for _, r := range v.robots {
		if r == p {
			return '@', tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		}
	}
	if isFloor, _ := v.valid.Get(p); !isFloor {
		return ' ', tcell.StyleDefault
	}
	if covered, _ := v.floor.Get(p); covered {
		return '.', tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
	return '.', tcell.StyleDefault.Foreground(tcell.ColorGray)
}
