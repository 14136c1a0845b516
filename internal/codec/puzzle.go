package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ichyo/icfpc2019-public/internal/core"
)

// ParsePuzzle parses a PUZZLE descriptor: CNTS '#' MAP '#' MAP, where
// CNTS is the 11 comma-separated counts and the two MAPs are the
// includes and excludes point sets (the excludes MAP may be empty).
// Grounded on spec.md 4.E's PUZZLE grammar.
func ParsePuzzle(s string) (core.Puzzle, error) {
	fields := strings.SplitN(s, "#", 3)
	if len(fields) != 3 {
		return core.Puzzle{}, fmt.Errorf("codec: puzzle descriptor needs 3 '#'-separated fields, got %d", len(fields))
	}

	cnts, err := parseCounts(fields[0])
	if err != nil {
		return core.Puzzle{}, fmt.Errorf("codec: puzzle counts: %w", err)
	}

	includes, err := readPointListEOF(newScanner(fields[1]))
	if err != nil {
		return core.Puzzle{}, fmt.Errorf("codec: puzzle includes: %w", err)
	}
	excludes, err := readPointListEOF(newScanner(fields[2]))
	if err != nil {
		return core.Puzzle{}, fmt.Errorf("codec: puzzle excludes: %w", err)
	}

	cnts.Includes = includes
	cnts.Excludes = excludes
	return cnts, nil
}

func parseCounts(s string) (core.Puzzle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 11 {
		return core.Puzzle{}, fmt.Errorf("expected 11 counts, got %d", len(parts))
	}
	ints := make([]int, 11)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return core.Puzzle{}, fmt.Errorf("count %d (%q): %w", i, p, err)
		}
		ints[i] = n
	}
	return core.Puzzle{
		Block:      ints[0],
		Epoch:      ints[1],
		MaxLength:  ints[2],
		VertexMin:  ints[3],
		VertexMax:  ints[4],
		HandCount:  ints[5],
		FastCount:  ints[6],
		DrillCount: ints[7],
		TeleCount:  ints[8],
		CloneCount: ints[9],
		SpawnCount: ints[10],
	}, nil
}

// EmitPuzzle renders p back into the PUZZLE wire grammar; the inverse
// of ParsePuzzle.
func EmitPuzzle(p core.Puzzle) string {
	var b strings.Builder
	counts := []int{p.Block, p.Epoch, p.MaxLength, p.VertexMin, p.VertexMax,
		p.HandCount, p.FastCount, p.DrillCount, p.TeleCount, p.CloneCount, p.SpawnCount}
	for i, c := range counts {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c))
	}
	b.WriteByte('#')
	b.WriteString(core.NewMap(p.Includes).String())
	b.WriteByte('#')
	b.WriteString(core.NewMap(p.Excludes).String())
	return b.String()
}
