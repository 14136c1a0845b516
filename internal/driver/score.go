package driver

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/ichyo/icfpc2019-public/internal/codec"
	"github.com/ichyo/icfpc2019-public/internal/core"
)

// ScoreInfo is one task's score breakdown, grounded 1:1 on
// original_source/src/bin/score.rs's ScoreInfo.
type ScoreInfo struct {
	Width, Height int
	BestEstimated int
	TeamTime      int
}

// LogWH returns log2(width*height).
func (s ScoreInfo) LogWH() float64 {
	return math.Log2(float64(s.Width) * float64(s.Height))
}

// Ratio returns best_estimated/team_time.
func (s ScoreInfo) Ratio() float64 {
	return float64(s.BestEstimated) / float64(s.TeamTime)
}

// Score is 1000 * LogWH * Ratio, per spec.md 6.
func (s ScoreInfo) Score() float64 {
	return 1000.0 * s.LogWH() * s.Ratio()
}

// Debug renders the exact per-task debug line original_source/src/bin/
// score.rs prints, reproduced verbatim since spec.md 6 only gives the
// formula, not the report layout.
func (s ScoreInfo) Debug() string {
	return fmt.Sprintf(
		"1000.0 * %5.2f * %4.2f = %8.2f (%6d steps) (%3d x %3d = %6d)",
		s.LogWH(), s.Ratio(), s.Score(), s.TeamTime, s.Width, s.Height, s.Width*s.Height,
	)
}

// ScoreTask computes ScoreInfo for one task against its commands,
// following original_source/src/bin/score.rs's score_small exactly:
// width/height come from the enumerated map's vertex extent, obstacles
// are subtracted from the floor-cell count, best_estimated is the
// resulting remaining-cell count times 24/100 via integer division,
// and team_time is Commands.Len() (the turn count), not a string
// length, despite spec.md 6's looser "byte length" phrasing — the
// worked example in spec.md 8 scenario 6 only reproduces with turn
// count as team_time.
func ScoreTask(task core.Task, commands core.Commands) ScoreInfo {
	points := task.Room.EnumeratePoints()

	remaining := len(points)
	for _, obstacle := range task.Obstacles {
		remaining -= len(obstacle.EnumeratePoints())
	}

	return ScoreInfo{
		Width:         task.Width,
		Height:        task.Height,
		BestEstimated: remaining * 24 / 100,
		TeamTime:      commands.Len(),
	}
}

// BoosterCounts tallies a task's booster inventory by type, for the
// "B:%d F:%d L:%d X:%d R:%d C:%d" summary line score.rs prints
// alongside each task's debug line.
type BoosterCounts struct {
	NewHand, FastMove, Drill, Spawn, Teleports, Cloning int
}

func CountBoosters(boosters []core.Booster) BoosterCounts {
	var c BoosterCounts
	for _, b := range boosters {
		switch b.Kind {
		case core.NewHandBooster:
			c.NewHand++
		case core.FastMove:
			c.FastMove++
		case core.Drill:
			c.Drill++
		case core.Spawn:
			c.Spawn++
		case core.Teleports:
			c.Teleports++
		case core.Cloning:
			c.Cloning++
		}
	}
	return c
}

func (c BoosterCounts) String() string {
	return fmt.Sprintf("B:%d F:%d L:%d X:%d R:%d C:%d",
		c.NewHand, c.FastMove, c.Drill, c.Spawn, c.Teleports, c.Cloning)
}

// RunScore reads every prob-*.desc under inputDir and its matching
// solution under outputDir, prints score.rs's per-task debug line plus
// booster summary to stderr, and returns the summed score (printed by
// the caller as "total_score: <sum>" to mirror the original CLI).
func RunScore(inputDir, outputDir string) (float64, error) {
	paths, err := filepath.Glob(filepath.Join(inputDir, "prob-*.desc"))
	if err != nil {
		return 0, errors.Wrap(err, "driver: globbing input directory")
	}

	var sum float64
	for _, path := range paths {
		id := taskID(path)

		raw, err := os.ReadFile(path)
		if err != nil {
			return sum, errors.Wrapf(err, "driver: reading %s", path)
		}
		task, err := codec.ParseTask(strings.TrimRight(string(raw), "\r\n"))
		if err != nil {
			return sum, errors.Wrapf(err, "driver: parsing %s", path)
		}

		solPath := filepath.Join(outputDir, "prob-"+id+".sol")
		solRaw, err := os.ReadFile(solPath)
		if err != nil {
			return sum, errors.Wrapf(err, "driver: reading %s", solPath)
		}
		commands, err := codec.ParseCommands(strings.TrimRight(string(solRaw), "\r\n"))
		if err != nil {
			return sum, errors.Wrapf(err, "driver: parsing %s", solPath)
		}

		info := ScoreTask(task, commands)
		counts := CountBoosters(task.Boosters)
		fmt.Fprintf(os.Stderr, "%s: %s (%s)\n", id, info.Debug(), counts)
		sum += info.Score()
	}
	return sum, nil
}
