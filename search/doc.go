// Package search implements a best-first (A*) shortest-path engine over a
// grid.Grid whose states may carry a facing direction.
//
// Overview:
//
//   - The frontier is a min-heap ordered by f = g + h, where g is the
//     accumulated cost and h the Manhattan distance to the goal position.
//     Manhattan distance is admissible and consistent for step costs ≥ 1,
//     so the first goal state popped is optimal.
//   - Ties on f are broken by position, then direction, then insertion
//     order. This only makes runs reproducible; it never affects the cost.
//   - A "lazy decrease-key" strategy is used: improved states are pushed again
//     and stale entries are discarded when popped.
//
// Cost regimes:
//
//   - Uniform:      every forward move costs 1 (WithForwardCost); heading is
//     ignored and every node carries grid.None.
//   - TurnWeighted: moving forward costs 1, turning left or right in place
//     costs 1000 (WithTurnCost). The heading is part of node identity.
//
// Modes:
//
//   - Shortest:    single-answer mode. Stops at the first goal pop and,
//     with WithPath, reconstructs one optimal path of forward positions.
//   - AllShortest: multi-path mode. Keeps popping while f ≤ best goal cost,
//     stores a set of equally good predecessors per node and returns every
//     position lying on at least one optimal path.
//
// Complexity:
//
//   - Time:  O(S log S), S = number of states (cells × headings).
//   - Space: O(S) for the best-cost table and the heap.
//
// Errors (sentinel):
//
//   - ErrNilGrid / ErrEmptyGrid:            no grid, or a grid without cells.
//   - ErrNilPassable:                       Problem.Passable is nil.
//   - ErrStartOutOfBounds / ErrGoalOutOfBounds.
//   - ErrStartBlocked:                      the start cell is not passable.
//   - ErrDirectionRequired:                 TurnWeighted with a None heading.
//   - ErrNoPath:                            the frontier emptied without
//     reaching the goal. This is a normal outcome; callers decide how to
//     surface it.
//   - ErrBadCost / ErrBadMaxCost:           invalid option values (panic).
//
// Thread safety:
//
//   - A search borrows the grid read-only and owns all of its state. The
//     grid must not be mutated while a search runs.
//
// Example:
//
//	res, err := search.Shortest(search.Problem[rune]{
//	    Grid:     g,
//	    Start:    start,
//	    StartDir: grid.East,
//	    Goal:     exit,
//	    Passable: func(r rune) bool { return r != '#' },
//	}, search.WithRegime(search.TurnWeighted))
package search
