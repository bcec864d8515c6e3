// Package skips counts shortcuts ("cheats") along a single optimal path.
//
// A skip connects path[i] to path[j] (i < j) directly, ignoring whatever lies
// between them. It costs the Manhattan distance d between the two positions
// instead of the j−i forward moves the path takes, saving (j−i)−d steps.
//
// Complexity: O(n²) in the path length. Paths in this domain are a few
// thousand cells long, so every pair is examined exactly.
package skips

import (
	"errors"
	"fmt"

	"github.com/jpbougie/aoc2024/grid"
)

// ErrNegativeBudget indicates a negative maxSkip or minSavings.
var ErrNegativeBudget = errors.New("skips: budgets must be non-negative")

// Count returns the number of index pairs i < j of path such that
// d = manhattan(path[i], path[j]) ≤ maxSkip and (j−i)−d ≥ minSavings.
// path[k] must be the position reached after k forward moves.
func Count(path []grid.Position, maxSkip, minSavings int) int {
	n := 0
	for i := range path {
		// j−i ≥ d+minSavings ≥ minSavings, so closer indices cannot qualify.
		for j := i + max(minSavings, 1); j < len(path); j++ {
			d := path[i].Manhattan(path[j])
			if d <= maxSkip && (j-i)-d >= minSavings {
				n++
			}
		}
	}
	return n
}

// CountChecked is Count with argument validation.
func CountChecked(path []grid.Position, maxSkip, minSavings int) (int, error) {
	if maxSkip < 0 || minSavings < 0 {
		return 0, fmt.Errorf("%w: maxSkip=%d minSavings=%d", ErrNegativeBudget, maxSkip, minSavings)
	}
	return Count(path, maxSkip, minSavings), nil
}

// Histogram groups qualifying pairs by the number of steps they save.
func Histogram(path []grid.Position, maxSkip, minSavings int) map[int]int {
	h := make(map[int]int)
	for i := range path {
		for j := i + max(minSavings, 1); j < len(path); j++ {
			d := path[i].Manhattan(path[j])
			if saved := (j - i) - d; d <= maxSkip && saved >= minSavings {
				h[saved]++
			}
		}
	}
	return h
}
