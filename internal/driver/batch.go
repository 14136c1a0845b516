// Package driver implements the external-facing CLI behaviors spec.md
// 4.F and 6 describe: the batch solver, the score and compare
// reporters, and the mining poll/submit loop. Each cmd/mapfhet-*
// binary is a thin urfave/cli wrapper around one function here.
package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ichyo/icfpc2019-public/internal/codec"
	"github.com/ichyo/icfpc2019-public/internal/core"
	"github.com/ichyo/icfpc2019-public/internal/solver"
)

// BatchOptions configures one run of the batch solver.
type BatchOptions struct {
	InputDir  string
	OutputDir string // empty: write solutions to stdout, skip buy files
	Duration  time.Duration
	WithBuy   bool
	Log       *zap.Logger
}

// RunBatch discovers every prob-*.desc file under opts.InputDir,
// solves each with opts.Duration as its SolveWhile budget, and writes
// a .sol (and, if opts.WithBuy, a .buy) file per task. Tasks are solved
// concurrently across a worker pool bounded to the logical CPU count,
// matching spec.md 5's "fixed-size worker pool of size = logical-CPU
// count"; a single task's failure is logged and does not abort the
// batch (spec.md 7's "failures in one task are contained to that
// task").
func RunBatch(ctx context.Context, opts BatchOptions) error {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	paths, err := filepath.Glob(filepath.Join(opts.InputDir, "prob-*.desc"))
	if err != nil {
		return errors.Wrap(err, "driver: globbing input directory")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := solveOne(gctx, path, opts, log); err != nil {
				log.Error("task failed", zap.String("path", path), zap.Error(err))
			}
			return nil
		})
	}

	return g.Wait()
}

func solveOne(ctx context.Context, path string, opts BatchOptions, log *zap.Logger) error {
	id := taskID(path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "driver: reading %s", path)
	}
	task, err := codec.ParseTask(strings.TrimRight(string(raw), "\r\n"))
	if err != nil {
		return errors.Wrapf(err, "driver: parsing %s", path)
	}
	task.ID = id

	deadline, cancel := context.WithTimeout(ctx, opts.Duration)
	defer cancel()

	result := solver.SolveWhile(deadline, &task, log, int64(len(id))+time.Now().UnixNano())
	sol := codec.EmitCommands(result.Commands)

	if opts.OutputDir == "" {
		fmt.Println(sol)
		return nil
	}

	solPath := filepath.Join(opts.OutputDir, "prob-"+id+".sol")
	if err := os.WriteFile(solPath, []byte(sol), 0o644); err != nil {
		return errors.Wrapf(err, "driver: writing %s", solPath)
	}

	if opts.WithBuy {
		buyPath := filepath.Join(opts.OutputDir, "prob-"+id+".buy")
		buy := PlaceholderBuy(task)
		if err := os.WriteFile(buyPath, []byte(codec.EmitBuy(buy)), 0o644); err != nil {
			return errors.Wrapf(err, "driver: writing %s", buyPath)
		}
	}

	log.Info("solved task",
		zap.String("task_id", id),
		zap.Int("turns", result.Turns),
	)
	return nil
}

// PlaceholderBuy is the batch driver's buy strategy: spec.md 4.F
// explicitly calls buy computation "a placeholder strategy", so this
// deliberately buys nothing rather than inventing a purchasing
// algorithm the source material never specified.
func PlaceholderBuy(task core.Task) core.Buy { return nil }

// taskID extracts "NNN" from a "prob-NNN.desc" path, matching the
// original parse.rs Input::new's input_file[5..8] slicing.
func taskID(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimPrefix(base, "prob-")
}
