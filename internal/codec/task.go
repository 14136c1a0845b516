package codec

import (
	"fmt"

	"github.com/ichyo/icfpc2019-public/internal/core"
)

// ParseTask parses one TASK descriptor: MAP '#' POINT '#' OBSTACLES '#'
// BOOSTERS. Grounded on original_source/src/parse.rs's read_task.
func ParseTask(s string) (core.Task, error) {
	sc := newScanner(s)

	room, err := readMap(sc)
	if err != nil {
		return core.Task{}, fmt.Errorf("codec: task map: %w", err)
	}
	initial, err := readInitial(sc)
	if err != nil {
		return core.Task{}, fmt.Errorf("codec: task initial point: %w", err)
	}
	obstacles, err := readObstacles(sc)
	if err != nil {
		return core.Task{}, fmt.Errorf("codec: task obstacles: %w", err)
	}
	boosters, err := readBoosters(sc)
	if err != nil {
		return core.Task{}, fmt.Errorf("codec: task boosters: %w", err)
	}

	return core.NewTask("", room, initial, obstacles, boosters), nil
}

// EmitTask renders t back into the TASK grammar; the inverse of
// ParseTask. Task.String already implements it.
func EmitTask(t core.Task) string { return t.String() }

func readInitial(s *scanner) (core.Point, error) {
	p, err := readPoint(s)
	if err != nil {
		return core.Point{}, err
	}
	if err := s.skip('#'); err != nil {
		return core.Point{}, err
	}
	return p, nil
}

func readObstacles(s *scanner) ([]core.Map, error) {
	if r, ok := s.peek(); ok && r == '#' {
		s.next()
		return nil, nil
	}

	var res []core.Map
	for {
		m, c, err := readMapInternal(s)
		if err != nil {
			return nil, err
		}
		res = append(res, m)
		if c == '#' {
			return res, nil
		}
		if c != ';' {
			return nil, fmt.Errorf("codec: expected ';' or '#' between obstacles, got %q", c)
		}
	}
}

func readBoosters(s *scanner) ([]core.Booster, error) {
	var res []core.Booster
	for {
		c, ok := s.next()
		if !ok {
			return res, nil
		}
		kind, ok := core.BoosterTypeFromByte(byte(c))
		if !ok {
			return nil, fmt.Errorf("codec: unknown booster type %q", c)
		}
		p, err := readPoint(s)
		if err != nil {
			return nil, err
		}
		res = append(res, core.Booster{Kind: kind, Point: p})
		if err := s.skipOrEmpty(';'); err != nil {
			return nil, err
		}
	}
}
