// Package search implements single-answer and all-ties best-first search
// over a grid.
//
// Notes on implementation choices:
//
//   - Inputs are validated up front and fail fast with a sentinel error.
//   - Predecessors are recorded when a successor is relaxed, not when it is
//     popped, so that every equally good predecessor is seen in multi-path
//     mode.
//   - Goal states are never expanded: any extension costs strictly more.
package search

import (
	"fmt"

	"github.com/jpbougie/aoc2024/grid"
)

// Shortest returns the minimal cost from p.Start to p.Goal. The search
// stops at the first goal state popped from the frontier.
//
// Returns:
//
//   - Result.Cost: the minimal total cost.
//   - Result.Path: one optimal path when WithPath is given, nil otherwise.
//   - err: a validation error, or ErrNoPath when the goal is unreachable
//     (Result.Cost is then 0).
//
// Complexity:
//
//   - Time:  O(S log S), S = reachable states.
//   - Space: O(S).
func Shortest[T any](p Problem[T], opts ...Option) (Result, error) {
	r, err := newRunner(p, false, opts)
	if err != nil {
		return Result{}, err
	}
	r.seed()

	for !r.fr.empty() {
		s := r.fr.pop()

		// Skip stale entries superseded by a cheaper push or already expanded.
		id, fresh := r.tab.settle(s)
		if !fresh {
			continue
		}

		// The first goal popped is optimal: the heuristic is consistent.
		if r.isGoal(s) {
			res := Result{Cost: s.G, Expanded: r.expanded}
			if r.opts.ReturnPath {
				res.Path = r.tab.path(id)
			}
			return res, nil
		}

		r.expand(s, id)
	}

	return Result{Expanded: r.expanded}, ErrNoPath
}

// runner holds the mutable state for a single search execution.
type runner[T any] struct {
	p        Problem[T] // The problem; the grid is read-only within the run.
	opts     Options    // Configuration options (regime, costs, heuristic).
	tab      *table     // Best-cost and predecessor table.
	fr       frontier   // Min-priority queue of states.
	expanded int        // Number of expanded states.
}

// newRunner applies opts, validates p and allocates the run state.
func newRunner[T any](p Problem[T], multi bool, opts []Option) (*runner[T], error) {
	// 1) Build Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the problem
	if err := validate(p, cfg); err != nil {
		return nil, err
	}

	// 3) Size the table for one entry per cell, per heading when turning
	hint := p.Grid.RowCount() * p.Grid.ColCount()
	if cfg.Regime == TurnWeighted {
		hint *= len(grid.Headings)
	}

	return &runner[T]{
		p:    p,
		opts: cfg,
		tab:  newTable(multi, hint),
	}, nil
}

// validate checks p in a fixed order so that the reported error is stable.
func validate[T any](p Problem[T], cfg Options) error {
	if p.Grid == nil {
		return ErrNilGrid
	}
	if p.Grid.RowCount() == 0 || p.Grid.ColCount() == 0 {
		return ErrEmptyGrid
	}
	if p.Passable == nil {
		return ErrNilPassable
	}
	if !p.Grid.InBounds(p.Start) {
		return fmt.Errorf("%w: %v", ErrStartOutOfBounds, p.Start)
	}
	if !p.Grid.InBounds(p.Goal) {
		return fmt.Errorf("%w: %v", ErrGoalOutOfBounds, p.Goal)
	}
	if c, _ := p.Grid.At(p.Start); !p.Passable(c.Value) {
		return fmt.Errorf("%w: %v", ErrStartBlocked, p.Start)
	}
	if cfg.Regime == TurnWeighted && p.StartDir == grid.None {
		return ErrDirectionRequired
	}
	return nil
}

// seed pushes the start state with g = 0.
func (r *runner[T]) seed() {
	dir := grid.None
	if r.opts.Regime == TurnWeighted {
		dir = r.p.StartDir
	}
	s := r.state(r.p.Start, dir, 0)
	r.tab.relax(s.Node(), 0, -1)
	r.fr.push(s)
}

// state builds a State with its heuristic estimate.
func (r *runner[T]) state(pos grid.Position, dir grid.Direction, g int) State {
	return State{Pos: pos, Dir: dir, G: g, H: r.opts.Heuristic(pos, r.p.Goal)}
}

// isGoal reports whether s satisfies the goal predicate. The goal heading is
// only meaningful in the TurnWeighted regime.
func (r *runner[T]) isGoal(s State) bool {
	if s.Pos != r.p.Goal {
		return false
	}
	return r.opts.Regime != TurnWeighted || r.p.GoalDir == grid.None || s.Dir == r.p.GoalDir
}

// passable reports whether the cell at pos may be entered.
func (r *runner[T]) passable(pos grid.Position) bool {
	c, ok := r.p.Grid.At(pos)
	return ok && r.p.Passable(c.Value)
}

// expand relaxes every successor of s, whose arena index is id, and pushes
// those whose cost improved.
func (r *runner[T]) expand(s State, id int) {
	r.expanded++
	for _, next := range r.successors(s) {
		if next.G > r.opts.MaxCost {
			continue
		}
		if r.tab.relax(next.Node(), next.G, id) {
			r.fr.push(next)
		}
	}
}

// successors generates the moves allowed from s under the configured regime.
//
//   - Uniform:      one forward move per passable orthogonal neighbor.
//   - TurnWeighted: turn left, turn right, and forward if the cell ahead
//     is in bounds and passable.
func (r *runner[T]) successors(s State) []State {
	out := make([]State, 0, len(grid.Headings))
	switch r.opts.Regime {
	case TurnWeighted:
		out = append(out,
			r.state(s.Pos, s.Dir.TurnLeft(), s.G+r.opts.TurnCost),
			r.state(s.Pos, s.Dir.TurnRight(), s.G+r.opts.TurnCost),
		)
		if n, ok := r.p.Grid.Step(s.Pos, s.Dir); ok && r.passable(n) {
			out = append(out, r.state(n, s.Dir, s.G+r.opts.ForwardCost))
		}
	default:
		for _, n := range r.p.Grid.OrthogonalNeighbors(s.Pos) {
			if r.passable(n) {
				out = append(out, r.state(n, grid.None, s.G+r.opts.ForwardCost))
			}
		}
	}
	return out
}
