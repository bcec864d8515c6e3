// Command gridsolve solves one grid puzzle from a file or standard input and
// prints both parts.
//
//	gridsolve -day 16 -input day16.txt
//	gridsolve -day 20 -min-savings 50 < sample.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/jpbougie/aoc2024/puzzles"
)

var (
	log = logrus.New()
	cfg = puzzles.DefaultConfig()

	day     int
	input   string
	verbose bool
)

func init() {
	flag.IntVar(&day, "day", 0, fmt.Sprintf("puzzle day, one of %v", puzzles.Days()))
	flag.StringVar(&input, "input", "-", "input file, - for stdin")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.IntVar(&cfg.Size, "size", cfg.Size, "day 18: side of the memory grid")
	flag.IntVar(&cfg.Falls, "falls", cfg.Falls, "day 18: bytes fallen before part 1")
	flag.IntVar(&cfg.ShortSkip, "short-skip", cfg.ShortSkip, "day 20: part 1 skip budget")
	flag.IntVar(&cfg.LongSkip, "max-skip", cfg.LongSkip, "day 20: part 2 skip budget")
	flag.IntVar(&cfg.MinSavings, "min-savings", cfg.MinSavings, "day 20: minimum steps a skip must save")

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true, FullTimestamp: true})
	log.SetOutput(os.Stderr)
}

func open(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

func main() {
	flag.Parse()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	in, err := open(input)
	if err != nil {
		log.WithError(err).Fatal("cannot open input")
	}
	defer in.Close()

	ans, err := puzzles.Run(day, in, cfg, log)
	if err != nil {
		log.WithError(err).WithField("input", input).Fatal("solve failed")
	}

	fmt.Printf("Part 1: %s\nPart 2: %s\n", ans.Part1, ans.Part2)
}
