package search

import (
	"slices"

	"github.com/jpbougie/aoc2024/grid"
)

// path follows the first predecessor of each node from goal back to the
// seed and returns the visited positions in start→goal order. Turns in
// place repeat a position; those repeats are collapsed so that each entry
// corresponds to one forward move.
func (t *table) path(goal int) []grid.Position {
	var rev []grid.Position
	for at := goal; at >= 0; {
		p := t.nodes[at].Pos
		if n := len(rev); n == 0 || rev[n-1] != p {
			rev = append(rev, p)
		}
		if len(t.preds[at]) == 0 {
			break
		}
		at = t.preds[at][0]
	}
	slices.Reverse(rev)
	return rev
}

// positionsOnOptimal walks the predecessor sets backwards from every goal
// index with an explicit work-list and returns the union of all positions
// met, sorted row-major. Each node is visited once, so the walk is linear
// in the number of predecessor links even when the number of distinct
// optimal paths is exponential.
func (t *table) positionsOnOptimal(goals []int) []grid.Position {
	seen := make([]bool, len(t.nodes))
	set := make(map[grid.Position]struct{})
	stack := make([]int, 0, len(goals))
	for _, g := range goals {
		if !seen[g] {
			seen[g] = true
			stack = append(stack, g)
		}
	}
	for len(stack) > 0 {
		at := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		set[t.nodes[at].Pos] = struct{}{}
		for _, p := range t.preds[at] {
			if !seen[p] {
				seen[p] = true
				stack = append(stack, p)
			}
		}
	}

	out := make([]grid.Position, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	slices.SortFunc(out, grid.Position.Compare)
	return out
}
