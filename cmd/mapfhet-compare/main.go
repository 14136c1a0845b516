// Command mapfhet-compare picks, per task, the best of several
// candidate solution directories by turn count and assembles the
// winners into one output directory, mirroring
// original_source/src/bin/compare.rs.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ichyo/icfpc2019-public/internal/driver"
)

func main() {
	app := &cli.App{
		Name:  "mapfhet-compare",
		Usage: "merge the best of several solution directories by turn count",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Usage: "input directory containing prob-*.desc files", Required: true},
			&cli.StringSliceFlag{Name: "root", Usage: "candidate solution directory (repeatable)", Required: true},
			&cli.StringFlag{Name: "output", Usage: "output directory to assemble the winners into", Required: true},
		},
		Action: func(c *cli.Context) error {
			return driver.RunCompare(c.String("input"), c.StringSlice("root"), c.String("output"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
