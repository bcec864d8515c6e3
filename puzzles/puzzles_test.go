package puzzles_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpbougie/aoc2024/puzzles"
	"github.com/jpbougie/aoc2024/search"
)

const (
	mazeSmall = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`
	mazeLarge = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`
	race = `###############
#...#...#.....#
#.#.#.#.#.###.#
#S#...#.#.#...#
#######.#.#.###
#######.#.#...#
#######.#.###.#
###..E#...#...#
###.#######.###
#...###...#...#
#.#####.#.###.#
#.#...#.#.#...#
#.#.#.#.#.#.###
#...#...#...###
###############
`
	falls = `5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0
`
	patrol = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`
	gardenSmall = "AAAA\nBBCD\nBBCC\nEEEC\n"
	gardenXO    = "OOOOO\nOXOXO\nOOOOO\nOXOXO\nOOOOO\n"
	gardenLarge = `RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
`
)

// sampleConfig shrinks the constants to the sample inputs.
func sampleConfig() puzzles.Config {
	cfg := puzzles.DefaultConfig()
	cfg.Size = 7
	cfg.Falls = 12
	return cfg
}

func TestSamples(t *testing.T) {
	raceCfg := sampleConfig()
	raceCfg.MinSavings = 2
	raceLong := sampleConfig()
	raceLong.ShortSkip = 2
	raceLong.MinSavings = 50

	cases := []struct {
		name  string
		day   int
		input string
		cfg   puzzles.Config
		part1 string
		part2 string
	}{
		{"MazeSmall", 16, mazeSmall, sampleConfig(), "7036", "45"},
		{"MazeLarge", 16, mazeLarge, sampleConfig(), "11048", "64"},
		{"Falls", 18, falls, sampleConfig(), "22", "6,1"},
		{"RaceShort", 20, race, raceCfg, "44", ""},
		{"RaceLong", 20, race, raceLong, "", "285"},
		{"Patrol", 6, patrol, sampleConfig(), "41", "6"},
		{"GardenSmall", 12, gardenSmall, sampleConfig(), "140", "80"},
		{"GardenXO", 12, gardenXO, sampleConfig(), "772", "436"},
		{"GardenLarge", 12, gardenLarge, sampleConfig(), "1930", "1206"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			log, hook := test.NewNullLogger()
			log.SetLevel(logrus.DebugLevel)

			ans, err := puzzles.Run(tc.day, strings.NewReader(tc.input), tc.cfg, log)
			require.NoError(t, err)
			assert.Equal(t, tc.day, ans.Day)
			if tc.part1 != "" {
				assert.Equal(t, tc.part1, ans.Part1)
			}
			if tc.part2 != "" {
				assert.Equal(t, tc.part2, ans.Part2)
			}

			last := hook.LastEntry()
			require.NotNil(t, last)
			assert.Equal(t, "solved", last.Message)
			assert.Equal(t, logrus.InfoLevel, last.Level)
			assert.Equal(t, tc.day, last.Data["day"])
		})
	}
}

// TestRaceNoSkipsAtFullThreshold: the sample track is too short for any
// skip to save 100 steps.
func TestRaceNoSkipsAtFullThreshold(t *testing.T) {
	log, _ := test.NewNullLogger()
	ans, err := puzzles.Run(20, strings.NewReader(race), puzzles.DefaultConfig(), log)
	require.NoError(t, err)
	assert.Equal(t, "0", ans.Part1)
	assert.Equal(t, "0", ans.Part2)
}

func TestRun_Errors(t *testing.T) {
	log, _ := test.NewNullLogger()

	negativeFalls := sampleConfig()
	negativeFalls.Falls = -1
	oneFall := sampleConfig()
	oneFall.Falls = 1
	twoFalls := sampleConfig()
	twoFalls.Falls = 2

	cases := []struct {
		name  string
		day   int
		input string
		cfg   puzzles.Config
		want  error
	}{
		{"UnknownDay", 25, "", sampleConfig(), puzzles.ErrUnknownDay},
		{"EmptyMaze", 16, "\n\n", sampleConfig(), puzzles.ErrBadInput},
		{"RaggedMaze", 16, "#####\n#S.E\n#####\n", sampleConfig(), puzzles.ErrBadInput},
		{"UnknownTile", 16, "#####\n#SxE#\n#####\n", sampleConfig(), puzzles.ErrBadInput},
		{"NoExit", 20, "#####\n#S..#\n#####\n", sampleConfig(), puzzles.ErrBadInput},
		{"TwoStarts", 20, "#####\n#SSE#\n#####\n", sampleConfig(), puzzles.ErrBadInput},
		{"BadCoord", 18, "1;2\n", sampleConfig(), puzzles.ErrBadInput},
		{"TooFewFalls", 18, "1,2\n", sampleConfig(), puzzles.ErrBadInput},
		{"NoGuard", 6, "....\n..#.\n", sampleConfig(), puzzles.ErrBadInput},
		{"NegativeFalls", 18, falls, negativeFalls, puzzles.ErrBadInput},
		{"FallOnStart", 18, "0,0\n", oneFall, puzzles.ErrBadInput},
		{"FallOnExit", 18, "6,6\n", oneFall, puzzles.ErrBadInput},
		{"ExitCutOff", 18, "5,6\n6,5\n", twoFalls, puzzles.ErrBadInput},
		{"FallOutsideGrid", 18, "7,0\n", oneFall, puzzles.ErrBadInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := puzzles.Run(tc.day, strings.NewReader(tc.input), tc.cfg, log)
			assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

func TestFalls_ExitCutOffKeepsCause(t *testing.T) {
	log, _ := test.NewNullLogger()
	cfg := sampleConfig()
	cfg.Falls = 2
	_, err := puzzles.Run(18, strings.NewReader("5,6\n6,5\n"), cfg, log)
	assert.ErrorIs(t, err, puzzles.ErrBadInput)
	assert.ErrorIs(t, err, search.ErrNoPath)
}

func TestRace_TraceHistogram(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.TraceLevel)
	cfg := sampleConfig()
	cfg.MinSavings = 50

	_, err := puzzles.Run(20, strings.NewReader(race), cfg, log)
	require.NoError(t, err)

	var savings map[int]int
	for _, e := range hook.AllEntries() {
		if e.Message == "skip histogram" {
			savings = e.Data["savings"].(map[int]int)
		}
	}
	require.NotNil(t, savings, "histogram logged at trace level")
	total := 0
	for _, n := range savings {
		total += n
	}
	assert.Equal(t, 285, total)
	assert.Equal(t, 3, savings[76])
}

func TestMaze_Unreachable(t *testing.T) {
	log, _ := test.NewNullLogger()
	_, err := puzzles.Run(16, strings.NewReader("#####\n#S#E#\n#####\n"), sampleConfig(), log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}

func TestDays(t *testing.T) {
	assert.Equal(t, []int{6, 12, 16, 18, 20}, puzzles.Days())
}
