package puzzles

import (
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/jpbougie/aoc2024/grid"
)

// region is a set of plots of one plant.
type region map[grid.Position]struct{}

func (r region) has(p grid.Position) bool {
	_, ok := r[p]
	return ok
}

// perimeter counts plot edges not shared with the same region.
func (r region) perimeter() int {
	n := 0
	for p := range r {
		for _, d := range grid.Headings {
			dr, dc := d.Offset()
			if !r.has(p.Add(dr, dc)) {
				n++
			}
		}
	}
	return n
}

// sides counts straight fence segments. A polygon has as many sides as
// corners; each plot contributes an outer corner where two adjacent
// neighbors are both missing, and an inner corner where both are present
// but the diagonal between them is not.
func (r region) sides() int {
	n := 0
	for p := range r {
		for _, d := range grid.Headings {
			ar, ac := d.Offset()
			br, bc := d.TurnRight().Offset()
			a, b := r.has(p.Add(ar, ac)), r.has(p.Add(br, bc))
			switch {
			case !a && !b:
				n++
			case a && b && !r.has(p.Add(ar+br, ac+bc)):
				n++
			}
		}
	}
	return n
}

// solveGarden (day 12): fence price per region is area × perimeter for
// part 1 and area × sides for part 2.
func solveGarden(in io.Reader, _ Config, log *logrus.Entry) (Answer, error) {
	g, err := readGrid(in, "")
	if err != nil {
		return Answer{}, err
	}

	var part1, part2 int
	regions := grid.Regions(g, grid.Equal[rune])
	for _, plots := range regions {
		r := make(region, len(plots))
		for _, p := range plots {
			r[p] = struct{}{}
		}
		part1 += len(r) * r.perimeter()
		part2 += len(r) * r.sides()
	}
	log.WithField("regions", len(regions)).Debug("garden mapped")

	return Answer{
		Part1: strconv.Itoa(part1),
		Part2: strconv.Itoa(part2),
	}, nil
}
