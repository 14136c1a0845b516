package solver

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ichyo/icfpc2019-public/internal/core"
)

// Result is one completed attempt: its command log and the turn count
// it took to cover every floor cell.
type Result struct {
	Commands core.Commands
	Turns    int
}

// runOnce drives a single attempt to completion and returns its Result.
func runOnce(task *core.Task, rng *rand.Rand) Result {
	s := NewState(task, rng)
	for !s.Done() {
		s.Step()
	}
	return Result{Commands: s.Commands(), Turns: s.turn}
}

// Solve runs a single attempt and returns its command log. It exists
// for callers that only need a correct solution, not the best of many
// tries; SolveWhile should be preferred whenever a deadline is
// available.
func Solve(task *core.Task, seed int64) core.Commands {
	return runOnce(task, rand.New(rand.NewSource(seed))).Commands
}

// SolveWhile repeatedly attempts task, drawing every attempt's
// randomness from one generator seeded with seed, until ctx is done,
// keeping the attempt with the fewest
// turns. It always returns at least one result (the deadline is only
// checked between attempts, so a task whose first attempt alone
// exceeds the deadline still finishes it). Grounded on
// original_source/src/solve.rs's solve_small_while, generalized from a
// single robot to the multi-robot turn loop in turn.go and extended
// with structured per-attempt logging.
func SolveWhile(ctx context.Context, task *core.Task, log *zap.Logger, seed int64) Result {
	if log == nil {
		log = zap.NewNop()
	}
	rng := rand.New(rand.NewSource(seed))

	var best Result
	haveBest := false
	attempts := 0

	for {
		attemptID := uuid.New()
		start := time.Now()
		result := runOnce(task, rng)
		attempts++

		log.Debug("solve attempt finished",
			zap.String("task_id", task.ID),
			zap.String("attempt_id", attemptID.String()),
			zap.Int("attempt", attempts),
			zap.Int("turns", result.Turns),
			zap.Duration("elapsed", time.Since(start)),
		)

		if !haveBest || result.Turns < best.Turns {
			best = result
			haveBest = true
		}

		select {
		case <-ctx.Done():
			log.Info("solve deadline reached",
				zap.String("task_id", task.ID),
				zap.Int("attempts", attempts),
				zap.Int("best_turns", best.Turns),
			)
			return best
		default:
		}
	}
}
