package search_test

import (
	"math/rand"
	"testing"

	"github.com/jpbougie/aoc2024/grid"
	"github.com/jpbougie/aoc2024/search"
)

// randomMaze returns an n×n grid with roughly density% walls from a fixed
// seed. The corners are always open.
func randomMaze(n, density int) *grid.Grid[rune] {
	r := rand.New(rand.NewSource(42))
	g := grid.New[rune](n)
	for y := 0; y < n; y++ {
		row := make([]rune, n)
		for x := range row {
			row[x] = '.'
			if r.Intn(100) < density {
				row[x] = '#'
			}
		}
		g.AddRow(row)
	}
	g.MustSet(0, 0, '.')
	g.MustSet(n-1, n-1, '.')
	return g
}

func benchProblem(n int) search.Problem[rune] {
	return search.Problem[rune]{
		Grid:     randomMaze(n, 20),
		Start:    grid.Pos(0, 0),
		StartDir: grid.East,
		Goal:     grid.Pos(n-1, n-1),
		Passable: open,
	}
}

// BenchmarkShortest_Uniform measures single-answer search on a 141×141 grid.
func BenchmarkShortest_Uniform(b *testing.B) {
	p := benchProblem(141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Shortest(p)
	}
}

// BenchmarkShortest_TurnWeighted measures the direction-aware regime.
func BenchmarkShortest_TurnWeighted(b *testing.B) {
	p := benchProblem(141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Shortest(p, search.WithRegime(search.TurnWeighted))
	}
}

// BenchmarkAllShortest_TurnWeighted measures the all-ties mode.
func BenchmarkAllShortest_TurnWeighted(b *testing.B) {
	p := benchProblem(141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.AllShortest(p, search.WithRegime(search.TurnWeighted))
	}
}
