// Command mapfhet-solve batch-solves every task description in an input
// directory and writes one .sol (and optionally .buy) file per task.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ichyo/icfpc2019-public/internal/config"
	"github.com/ichyo/icfpc2019-public/internal/driver"
	"github.com/ichyo/icfpc2019-public/internal/logging"
)

func main() {
	app := &cli.App{
		Name:  "mapfhet-solve",
		Usage: "solve every prob-*.desc task under an input directory",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a mapfhet.yaml defaults file"},
			&cli.StringFlag{Name: "input", Usage: "input directory containing prob-*.desc files"},
			&cli.StringFlag{Name: "output", Usage: "output directory for .sol/.buy files (stdout if empty)"},
			&cli.IntFlag{Name: "duration", Usage: "per-task solve deadline in milliseconds"},
			&cli.BoolFlag{Name: "buy", Usage: "also emit a .buy file per task"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if v := c.String("input"); v != "" {
		cfg.Input = v
	}
	if v := c.String("output"); v != "" {
		cfg.Output = v
	}
	if v := c.Int("duration"); v != 0 {
		cfg.DurationMS = v
	}
	if c.Bool("buy") {
		cfg.Buy = true
	}
	if cfg.Input == "" {
		return cli.Exit("--input is required", 1)
	}

	log, err := logging.New()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	return driver.RunBatch(context.Background(), driver.BatchOptions{
		InputDir:  cfg.Input,
		OutputDir: cfg.Output,
		Duration:  time.Duration(cfg.DurationMS) * time.Millisecond,
		WithBuy:   cfg.Buy,
		Log:       log,
	})
}
