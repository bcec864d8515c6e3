package puzzles

import (
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/jpbougie/aoc2024/grid"
	"github.com/jpbougie/aoc2024/search"
)

// solveMaze (day 16): the reindeer starts on S facing east. Part 1 is the
// lowest score to reach E, part 2 the number of tiles on any lowest-score path.
func solveMaze(in io.Reader, _ Config, log *logrus.Entry) (Answer, error) {
	g, from, to, err := readMaze(in)
	if err != nil {
		return Answer{}, err
	}

	p := search.Problem[rune]{
		Grid:     g,
		Start:    from,
		StartDir: grid.East,
		Goal:     to,
		Passable: walkable,
	}
	regime := search.WithRegime(search.TurnWeighted)

	best, err := search.Shortest(p, regime)
	if err != nil {
		return Answer{}, err
	}
	log.WithFields(logrus.Fields{"cost": best.Cost, "expanded": best.Expanded}).Debug("shortest route")

	all, err := search.AllShortest(p, regime)
	if err != nil {
		return Answer{}, err
	}
	log.WithFields(logrus.Fields{"goals": len(all.Goals), "expanded": all.Expanded}).Debug("all tied routes")

	return Answer{
		Part1: strconv.Itoa(best.Cost),
		Part2: strconv.Itoa(len(all.OnOptimal)),
	}, nil
}
