// Package search_test provides examples demonstrating the search engine.
package search_test

import (
	"fmt"

	"github.com/jpbougie/aoc2024/grid"
	"github.com/jpbougie/aoc2024/search"
)

// ExampleShortest finds the cheapest route through a small maze where each
// quarter turn costs 1000 and each step forward costs 1.
func ExampleShortest() {
	g := grid.New[rune](5)
	for _, row := range []string{
		"#####",
		"#..E#",
		"#.#.#",
		"#S..#",
		"#####",
	} {
		g.AddRow([]rune(row))
	}

	res, err := search.Shortest(search.Problem[rune]{
		Grid:     g,
		Start:    grid.Pos(3, 1),
		StartDir: grid.East,
		Goal:     grid.Pos(1, 3),
		Passable: func(r rune) bool { return r != '#' },
	}, search.WithRegime(search.TurnWeighted), search.WithPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("cost:", res.Cost)
	fmt.Println("path:", res.Path)
	// Output:
	// cost: 1004
	// path: [3,1 3,2 3,3 2,3 1,3]
}

// ExampleAllShortest counts the cells lying on any optimal route.
func ExampleAllShortest() {
	g := grid.Filled(3, 3, '.')

	res, err := search.AllShortest(search.Problem[rune]{
		Grid:     g,
		Start:    grid.Pos(0, 0),
		Goal:     grid.Pos(1, 2),
		Passable: func(r rune) bool { return r != '#' },
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("cost:", res.Cost)
	fmt.Println("cells:", len(res.OnOptimal))
	// Output:
	// cost: 3
	// cells: 6
}
