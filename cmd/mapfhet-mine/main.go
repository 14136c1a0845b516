// Command mapfhet-mine runs the background poll/solve/submit loop
// against a lambda-mining JSON-RPC endpoint.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ichyo/icfpc2019-public/internal/driver"
	"github.com/ichyo/icfpc2019-public/internal/logging"
)

func main() {
	app := &cli.App{
		Name:  "mapfhet-mine",
		Usage: "poll, solve, and submit mining blocks",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "endpoint", Value: "http://localhost:8332", Usage: "lambda-mining JSON-RPC endpoint"},
			&cli.StringFlag{Name: "mining-dir", Value: "./mining", Usage: "directory to dump task/puzzle solutions into"},
			&cli.DurationFlag{Name: "solve-for", Value: 180 * time.Second, Usage: "per-block task solve deadline"},
			&cli.DurationFlag{Name: "poll-every", Value: 10 * time.Second, Usage: "poll interval between submit attempts"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	log, err := logging.New()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return driver.Mine(ctx, driver.MineOptions{
		Endpoint:  c.String("endpoint"),
		MiningDir: c.String("mining-dir"),
		SolveFor:  c.Duration("solve-for"),
		PollEvery: c.Duration("poll-every"),
		Log:       log,
	})
}
