// Package puzzles parses puzzle inputs into grids and turns search results
// into answers. Each solver reads the whole input, runs to completion and
// returns both parts; printing is left to the caller.
//
// Solvers:
//
//   - Day 6:  guard patrol simulation (Grid.Set, Clone, TurnRight).
//   - Day 12: garden regions (grid.Regions).
//   - Day 16: turn-weighted maze, cost and cells on any optimal path.
//   - Day 18: falling bytes, uniform search re-run between mutations.
//   - Day 20: race track shortcuts (skips.Count).
package puzzles

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for puzzle solving.
var (
	// ErrBadInput indicates malformed puzzle input.
	ErrBadInput = errors.New("puzzles: malformed input")
	// ErrUnknownDay indicates no solver is registered for the requested day.
	ErrUnknownDay = errors.New("puzzles: no solver for day")
)

// Answer holds the two results of one puzzle.
type Answer struct {
	Day   int
	Part1 string
	Part2 string
}

// Fields returns the answer as structured log fields.
func (a Answer) Fields() logrus.Fields {
	return logrus.Fields{
		"day":   a.Day,
		"part1": a.Part1,
		"part2": a.Part2,
	}
}

// Config carries the tunable constants of the solvers. The defaults are the
// values of the full-size puzzles; tests shrink them for the samples.
type Config struct {
	Size       int // Day 18: side of the square memory grid
	Falls      int // Day 18: bytes fallen before part 1
	ShortSkip  int // Day 20: part 1 skip budget
	LongSkip   int // Day 20: part 2 skip budget
	MinSavings int // Day 20: minimum steps a skip must save
}

// DefaultConfig returns the full-size puzzle constants.
func DefaultConfig() Config {
	return Config{
		Size:       71,
		Falls:      1024,
		ShortSkip:  2,
		LongSkip:   20,
		MinSavings: 100,
	}
}

// Solver computes both parts of one puzzle from its raw input. log already
// carries the day field.
type Solver func(in io.Reader, cfg Config, log *logrus.Entry) (Answer, error)

var solvers = map[int]Solver{
	6:  solveGuard,
	12: solveGarden,
	16: solveMaze,
	18: solveFalls,
	20: solveRace,
}

// Days lists the days that have a solver, ascending.
func Days() []int {
	days := make([]int, 0, len(solvers))
	for d := range solvers {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// Run solves the given day and logs the answer and elapsed time.
func Run(day int, in io.Reader, cfg Config, log logrus.FieldLogger) (Answer, error) {
	solve, ok := solvers[day]
	if !ok {
		return Answer{}, fmt.Errorf("%w %d", ErrUnknownDay, day)
	}

	entry := log.WithField("day", day)
	start := time.Now()
	ans, err := solve(in, cfg, entry)
	if err != nil {
		return Answer{}, fmt.Errorf("day %d: %w", day, err)
	}
	ans.Day = day

	entry.WithFields(ans.Fields()).WithField("elapsed", time.Since(start)).Info("solved")
	return ans, nil
}
