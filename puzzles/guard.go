package puzzles

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/jpbougie/aoc2024/grid"
)

const (
	tileObstacle = '#'
	tileOpen     = '.'
)

var guardHeadings = map[rune]grid.Direction{
	'^': grid.North,
	'>': grid.East,
	'v': grid.South,
	'V': grid.South,
	'<': grid.West,
}

// patrol is the outcome of one guard walk.
type patrol struct {
	visited map[grid.Position]struct{}
	loops   bool
}

// walk moves the guard until it leaves the grid or repeats a (position,
// heading) state. Blocked cells make the guard turn right in place.
func walk(g *grid.Grid[rune], pos grid.Position, dir grid.Direction) patrol {
	p := patrol{visited: make(map[grid.Position]struct{})}
	seen := make(map[[2]int]struct{})
	for {
		key := [2]int{pos.Row*g.ColCount() + pos.Col, int(dir)}
		if _, ok := seen[key]; ok {
			p.loops = true
			return p
		}
		seen[key] = struct{}{}
		p.visited[pos] = struct{}{}

		next, ok := g.Step(pos, dir)
		if !ok {
			return p
		}
		if c, _ := g.At(next); c.Value == tileObstacle {
			dir = dir.TurnRight()
			continue
		}
		pos = next
	}
}

// solveGuard (day 6): part 1 counts the cells the guard visits before
// leaving; part 2 counts the single obstructions that trap it in a loop.
// Only cells on the original route can change the walk, so only those are
// tried, each on a private copy of the grid.
func solveGuard(in io.Reader, _ Config, log *logrus.Entry) (Answer, error) {
	g, err := readGrid(in, "#.^>vV<")
	if err != nil {
		return Answer{}, err
	}

	var (
		from  grid.Position
		dir   grid.Direction
		found int
	)
	for c := range g.Cells() {
		if d, ok := guardHeadings[c.Value]; ok {
			from, dir = c.Pos(), d
			found++
		}
	}
	if found != 1 {
		return Answer{}, fmt.Errorf("%w: want exactly one guard, found %d", ErrBadInput, found)
	}
	g.MustSet(from.Row, from.Col, tileOpen)

	route := walk(g, from, dir)
	loops := 0
	for cell := range route.visited {
		if cell == from {
			continue
		}
		trial := g.Clone()
		trial.MustSet(cell.Row, cell.Col, tileObstacle)
		if walk(trial, from, dir).loops {
			loops++
		}
	}
	log.WithField("candidates", len(route.visited)-1).Debug("obstructions tried")

	return Answer{
		Part1: strconv.Itoa(len(route.visited)),
		Part2: strconv.Itoa(loops),
	}, nil
}
