// Package search defines the state model, configuration options and
// sentinel errors for the grid search engine.
//
// Options:
//
//	– Regime:      Uniform (default) or TurnWeighted.
//	– ForwardCost: cost of one forward move (> 0, default 1).
//	– TurnCost:    cost of a quarter turn in place (> 0, default 1000).
//	– MaxCost:     states with g beyond this are not explored (≥ 0).
//	– ReturnPath:  Shortest also reconstructs one optimal path.
//	– Heuristic:   estimate of remaining cost; must stay admissible.
package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/jpbougie/aoc2024/grid"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilGrid indicates that Problem.Grid is nil.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("search: grid has no cells")

	// ErrNilPassable indicates that Problem.Passable is nil.
	ErrNilPassable = errors.New("search: passable predicate is nil")

	// ErrStartOutOfBounds indicates the start position lies outside the grid.
	ErrStartOutOfBounds = errors.New("search: start position out of bounds")

	// ErrGoalOutOfBounds indicates the goal position lies outside the grid.
	ErrGoalOutOfBounds = errors.New("search: goal position out of bounds")

	// ErrStartBlocked indicates the start cell is not passable.
	ErrStartBlocked = errors.New("search: start cell is blocked")

	// ErrDirectionRequired indicates a TurnWeighted search seeded with grid.None.
	ErrDirectionRequired = errors.New("search: turn-weighted search needs a start direction")

	// ErrNoPath indicates the frontier emptied without reaching the goal.
	ErrNoPath = errors.New("search: goal unreachable")

	// ErrBadCost indicates a forward or turn cost ≤ 0.
	ErrBadCost = errors.New("search: step costs must be positive")

	// ErrBadMaxCost indicates a negative MaxCost.
	ErrBadMaxCost = errors.New("search: MaxCost must be non-negative")
)

// Regime selects how moves are generated and priced.
type Regime int

const (
	// Uniform moves to any passable orthogonal neighbor at ForwardCost.
	Uniform Regime = iota

	// TurnWeighted moves forward in the current heading at ForwardCost, or
	// turns left/right in place at TurnCost.
	TurnWeighted
)

// String returns the regime name.
func (r Regime) String() string {
	switch r {
	case Uniform:
		return "uniform"
	case TurnWeighted:
		return "turn-weighted"
	}
	return fmt.Sprintf("Regime(%d)", int(r))
}

// Heuristic estimates the remaining cost from a position to the goal.
// It must never overstate the true cost, or AllShortest may stop early.
type Heuristic func(from, goal grid.Position) int

// Manhattan is the default heuristic.
func Manhattan(from, goal grid.Position) int {
	return from.Manhattan(goal)
}

// Zero disables guidance and turns the search into plain Dijkstra.
func Zero(grid.Position, grid.Position) int {
	return 0
}

// Options configures a search run.
type Options struct {
	Regime      Regime    // Uniform or TurnWeighted
	ForwardCost int       // Cost of one forward move
	TurnCost    int       // Cost of one quarter turn in place
	MaxCost     int       // States whose g exceeds this are not explored
	ReturnPath  bool      // Shortest reconstructs one optimal path
	Heuristic   Heuristic // Remaining-cost estimate; Manhattan by default
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the settings used when no option is passed.
//
// Defaults:
//   - Regime:      Uniform.
//   - ForwardCost: 1.
//   - TurnCost:    1000.
//   - MaxCost:     math.MaxInt (no cap).
//   - ReturnPath:  false.
//   - Heuristic:   Manhattan.
func DefaultOptions() Options {
	return Options{
		Regime:      Uniform,
		ForwardCost: 1,
		TurnCost:    1000,
		MaxCost:     math.MaxInt,
		Heuristic:   Manhattan,
	}
}

// WithRegime selects the cost regime.
func WithRegime(r Regime) Option {
	return func(o *Options) {
		o.Regime = r
	}
}

// WithForwardCost sets the cost of one forward move. Panics if c ≤ 0.
func WithForwardCost(c int) Option {
	return func(o *Options) {
		if c <= 0 {
			panic(ErrBadCost.Error())
		}
		o.ForwardCost = c
	}
}

// WithTurnCost sets the cost of one quarter turn. Panics if c ≤ 0.
func WithTurnCost(c int) Option {
	return func(o *Options) {
		if c <= 0 {
			panic(ErrBadCost.Error())
		}
		o.TurnCost = c
	}
}

// WithMaxCost stops exploration of states whose g would exceed max.
// Panics if max < 0.
func WithMaxCost(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithPath makes Shortest return one reconstructed optimal path.
func WithPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithHeuristic replaces the Manhattan estimate. A nil h selects Zero.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			h = Zero
		}
		o.Heuristic = h
	}
}

// Problem describes one search: where to start, where to go and which
// cells may be entered. The grid is borrowed read-only for the run.
type Problem[T any] struct {
	Grid     *grid.Grid[T]
	Start    grid.Position
	StartDir grid.Direction // Ignored by Uniform; required by TurnWeighted
	Goal     grid.Position
	GoalDir  grid.Direction // None accepts the goal in any heading
	Passable func(T) bool
}

// Node identifies a search state for cost comparison. Cost is not part of
// identity.
type Node struct {
	Pos grid.Position
	Dir grid.Direction
}

// State is a frontier entry: a node plus its accumulated cost G and its
// heuristic estimate H.
type State struct {
	Pos grid.Position
	Dir grid.Direction
	G   int
	H   int
}

// F returns G + H, the expansion priority.
func (s State) F() int {
	return s.G + s.H
}

// Node returns the identity of s.
func (s State) Node() Node {
	return Node{Pos: s.Pos, Dir: s.Dir}
}

// Result is the outcome of a search.
type Result struct {
	// Cost is the minimal total cost, 0 when the goal is unreachable.
	Cost int
	// Path lists the positions occupied from Start to Goal, one entry per
	// forward move. Set by Shortest with WithPath.
	Path []grid.Position
	// OnOptimal holds every position lying on at least one optimal path,
	// sorted row-major. Set by AllShortest.
	OnOptimal []grid.Position
	// Goals lists the goal nodes reached at Cost. Set by AllShortest.
	Goals []Node
	// Expanded counts the states whose successors were generated.
	Expanded int
}
