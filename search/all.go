package search

import (
	"errors"
	"math"

	"github.com/jpbougie/aoc2024/grid"
)

// AllShortest computes the minimal cost from p.Start to p.Goal together with
// every position that lies on at least one path of that cost.
//
// Unlike Shortest it does not return at the first goal pop: several headings
// or routes can reach the goal at the same minimal cost. It keeps popping
// while the frontier's minimum f does not exceed the best goal cost found;
// since h never overstates, no state beyond that bound can lead to an
// equally cheap goal.
//
// Returns:
//
//   - Result.Cost:      the minimal total cost.
//   - Result.Goals:     goal nodes reached at that cost.
//   - Result.OnOptimal: union of positions over all optimal paths, sorted.
//   - Result.Path:      one of those paths when WithPath is given.
//   - err: a validation error, or ErrNoPath when the goal is unreachable.
//
// Complexity:
//
//   - Time:  O(S log S + L), L = number of predecessor links.
//   - Space: O(S + L).
func AllShortest[T any](p Problem[T], opts ...Option) (Result, error) {
	r, err := newRunner(p, true, opts)
	if err != nil {
		return Result{}, err
	}
	r.seed()

	bestGoal := math.MaxInt
	var goals []int
	for !r.fr.empty() {
		s := r.fr.pop()

		// Every remaining state has f ≥ s.F(); none can tie the best goal.
		if s.F() > bestGoal {
			break
		}

		id, fresh := r.tab.settle(s)
		if !fresh {
			continue
		}

		if r.isGoal(s) {
			if s.G < bestGoal {
				bestGoal = s.G
				goals = goals[:0]
			}
			goals = append(goals, id)
			continue
		}

		r.expand(s, id)
	}

	if len(goals) == 0 {
		return Result{Expanded: r.expanded}, ErrNoPath
	}

	res := Result{
		Cost:      bestGoal,
		Goals:     make([]Node, len(goals)),
		OnOptimal: r.tab.positionsOnOptimal(goals),
		Expanded:  r.expanded,
	}
	for i, g := range goals {
		res.Goals[i] = r.tab.nodes[g]
	}
	if r.opts.ReturnPath {
		res.Path = r.tab.path(goals[0])
	}
	return res, nil
}

// CountOnOptimal is a convenience wrapper returning len(OnOptimal).
func CountOnOptimal[T any](p Problem[T], opts ...Option) (int, error) {
	res, err := AllShortest(p, opts...)
	if err != nil {
		return 0, err
	}
	return len(res.OnOptimal), nil
}

// Reachable reports whether any path leads from p.Start to p.Goal. An
// unreachable goal is not an error here; validation errors still are.
func Reachable[T any](p Problem[T], opts ...Option) (bool, error) {
	_, err := Shortest(p, opts...)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNoPath):
		return false, nil
	}
	return false, err
}

// PathLen returns the number of forward moves along path.
func PathLen(path []grid.Position) int {
	if len(path) == 0 {
		return 0
	}
	return len(path) - 1
}
