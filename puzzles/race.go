package puzzles

import (
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/jpbougie/aoc2024/search"
	"github.com/jpbougie/aoc2024/skips"
)

// solveRace (day 20): the track has a single route from S to E. Part 1
// counts skips of at most ShortSkip cells saving MinSavings or more steps,
// part 2 the same with LongSkip.
func solveRace(in io.Reader, cfg Config, log *logrus.Entry) (Answer, error) {
	g, from, to, err := readMaze(in)
	if err != nil {
		return Answer{}, err
	}

	res, err := search.Shortest(search.Problem[rune]{
		Grid:     g,
		Start:    from,
		Goal:     to,
		Passable: walkable,
	}, search.WithPath())
	if err != nil {
		return Answer{}, err
	}
	log.WithFields(logrus.Fields{"length": search.PathLen(res.Path), "expanded": res.Expanded}).Debug("benchmark route")

	short, err := skips.CountChecked(res.Path, cfg.ShortSkip, cfg.MinSavings)
	if err != nil {
		return Answer{}, err
	}
	long, err := skips.CountChecked(res.Path, cfg.LongSkip, cfg.MinSavings)
	if err != nil {
		return Answer{}, err
	}

	if log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		log.WithField("savings", skips.Histogram(res.Path, cfg.LongSkip, cfg.MinSavings)).Trace("skip histogram")
	}

	return Answer{
		Part1: strconv.Itoa(short),
		Part2: strconv.Itoa(long),
	}, nil
}
