package driver

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/ichyo/icfpc2019-public/internal/codec"
)

// candidate is one solution root's turn count for a single task,
// grounded on original_source/src/bin/compare.rs's (usize, String)
// tuple.
type candidate struct {
	turns int
	root  string
}

// RunCompare reads every prob-*.desc under inputDir, scores each
// candidate root's .sol file by turn count, and copies the winning
// .sol (and .buy, if present) into outputDir. Ties and runner-ups are
// reported the way compare.rs does: "<id>: <best_root> (<best> <second>)".
// Any number of candidate roots is accepted; with a single root, the
// second count repeats the best one.
func RunCompare(inputDir string, roots []string, outputDir string) error {
	paths, err := filepath.Glob(filepath.Join(inputDir, "prob-*.desc"))
	if err != nil {
		return errors.Wrap(err, "driver: globbing input directory")
	}

	for _, path := range paths {
		id := taskID(path)

		var cands []candidate
		for _, root := range roots {
			solPath := filepath.Join(root, "prob-"+id+".sol")
			raw, err := os.ReadFile(solPath)
			if err != nil {
				return errors.Wrapf(err, "driver: reading %s", solPath)
			}
			commands, err := codec.ParseCommands(strings.TrimRight(string(raw), "\r\n"))
			if err != nil {
				return errors.Wrapf(err, "driver: parsing %s", solPath)
			}
			cands = append(cands, candidate{turns: commands.Len(), root: root})
		}

		sort.Slice(cands, func(i, j int) bool {
			if cands[i].turns != cands[j].turns {
				return cands[i].turns < cands[j].turns
			}
			return cands[i].root < cands[j].root
		})

		best := cands[0]
		second := best.turns
		if len(cands) > 1 {
			second = cands[1].turns
		}
		fmt.Printf("%s: %s (%d %d)\n", id, best.root, best.turns, second)

		if err := copyFile(filepath.Join(best.root, "prob-"+id+".sol"), filepath.Join(outputDir, "prob-"+id+".sol")); err != nil {
			return err
		}

		bestBuy := filepath.Join(best.root, "prob-"+id+".buy")
		if _, err := os.Stat(bestBuy); err == nil {
			if err := copyFile(bestBuy, filepath.Join(outputDir, "prob-"+id+".buy")); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "driver: opening %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "driver: creating %s", dst)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrapf(err, "driver: copying %s to %s", src, dst)
	}
	return nil
}
