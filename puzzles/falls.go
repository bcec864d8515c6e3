package puzzles

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/jpbougie/aoc2024/grid"
	"github.com/jpbougie/aoc2024/search"
)

type memory bool

const (
	safe      memory = false
	corrupted memory = true
)

func isSafe(m memory) bool { return m == safe }

// solveFalls (day 18): bytes fall onto a Size×Size memory space. Part 1 is
// the shortest walk from the top-left to the bottom-right corner after the
// first Falls bytes; part 2 the coordinate of the first byte that cuts the
// exit off.
//
// The grid is only mutated between searches. A search is re-run only when a
// byte lands on the current path, since any other cell cannot lengthen it.
func solveFalls(in io.Reader, cfg Config, log *logrus.Entry) (Answer, error) {
	falls, err := readCoords(in)
	if err != nil {
		return Answer{}, err
	}
	if cfg.Size <= 0 || cfg.Falls < 0 || cfg.Falls > len(falls) {
		return Answer{}, fmt.Errorf("%w: %d falls for size %d, want at least %d", ErrBadInput, len(falls), cfg.Size, cfg.Falls)
	}

	g := grid.Filled(cfg.Size, cfg.Size, safe)
	p := search.Problem[memory]{
		Grid:     g,
		Start:    grid.Pos(0, 0),
		Goal:     grid.Pos(cfg.Size-1, cfg.Size-1),
		Passable: isSafe,
	}
	for _, f := range falls[:cfg.Falls] {
		if f == p.Start || f == p.Goal {
			return Answer{}, fmt.Errorf("%w: byte %d,%d lands on a corner before part 1", ErrBadInput, f.Col, f.Row)
		}
		if err := g.Set(f.Row, f.Col, corrupted); err != nil {
			return Answer{}, fmt.Errorf("%w: %v", ErrBadInput, err)
		}
	}

	res, err := search.Shortest(p, search.WithPath())
	if errors.Is(err, search.ErrNoPath) {
		return Answer{}, fmt.Errorf("%w: exit cut off after %d falls: %w", ErrBadInput, cfg.Falls, err)
	}
	if err != nil {
		return Answer{}, err
	}
	ans := Answer{Part1: strconv.Itoa(res.Cost)}

	path := res.Path
	runs := 1
	for _, f := range falls[cfg.Falls:] {
		if err := g.Set(f.Row, f.Col, corrupted); err != nil {
			return Answer{}, fmt.Errorf("%w: %v", ErrBadInput, err)
		}
		if !slices.Contains(path, f) {
			continue
		}
		if f == p.Start || f == p.Goal {
			ans.Part2 = fmt.Sprintf("%d,%d", f.Col, f.Row)
			break
		}
		runs++
		res, err = search.Shortest(p, search.WithPath())
		if errors.Is(err, search.ErrNoPath) {
			ans.Part2 = fmt.Sprintf("%d,%d", f.Col, f.Row)
			break
		}
		if err != nil {
			return Answer{}, err
		}
		path = res.Path
	}
	log.WithField("searches", runs).Debug("falls simulated")

	if ans.Part2 == "" {
		return Answer{}, fmt.Errorf("%w: no byte blocks the exit", ErrBadInput)
	}
	return ans, nil
}
