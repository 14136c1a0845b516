// Command mapfhet-score reports each task's score against a solutions
// directory and prints the summed total, mirroring
// original_source/src/bin/score.rs's report.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ichyo/icfpc2019-public/internal/driver"
)

func main() {
	app := &cli.App{
		Name:  "mapfhet-score",
		Usage: "score a directory of solutions against their tasks",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Usage: "input directory containing prob-*.desc files", Required: true},
			&cli.StringFlag{Name: "output", Usage: "directory containing matching .sol files", Required: true},
		},
		Action: func(c *cli.Context) error {
			total, err := driver.RunScore(c.String("input"), c.String("output"))
			if err != nil {
				return err
			}
			fmt.Printf("total_score: %.2f\n", total)
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
