package grid

import (
	"fmt"
	"iter"
)

// Grid is a row-major 2D container. All rows must share the same length once
// populated; this is a precondition on the caller and is not checked.
// The zero value is an empty grid ready for AddRow.
type Grid[T any] struct {
	rows [][]T
}

// New returns an empty grid with room for the given number of rows.
func New[T any](rowCapacity int) *Grid[T] {
	return &Grid[T]{rows: make([][]T, 0, rowCapacity)}
}

// Filled returns a rows×cols grid with every cell set to v.
// Complexity: O(W×H) time and memory.
func Filled[T any](rows, cols int, v T) *Grid[T] {
	g := New[T](rows)
	for r := 0; r < rows; r++ {
		row := make([]T, cols)
		for c := range row {
			row[c] = v
		}
		g.AddRow(row)
	}
	return g
}

// AddRow appends row below the existing rows. The slice is retained, not copied.
func (g *Grid[T]) AddRow(row []T) {
	g.rows = append(g.rows, row)
}

// RowCount returns the number of rows.
func (g *Grid[T]) RowCount() int {
	return len(g.rows)
}

// ColCount returns the length of the first row, or 0 for a grid without rows.
func (g *Grid[T]) ColCount() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < len(g.rows) && p.Col >= 0 && p.Col < len(g.rows[p.Row])
}

// Get returns a view of the cell at (row, col). The boolean is false when the
// coordinate is out of bounds; Get never panics.
func (g *Grid[T]) Get(row, col int) (Cell[T], bool) {
	if !g.InBounds(Position{Row: row, Col: col}) {
		return Cell[T]{}, false
	}
	return Cell[T]{Row: row, Col: col, Value: g.rows[row][col]}, true
}

// At is Get keyed by Position.
func (g *Grid[T]) At(p Position) (Cell[T], bool) {
	return g.Get(p.Row, p.Col)
}

// Set replaces the value at (row, col). It returns ErrIndexOutOfRange,
// wrapped with the offending coordinate, when either index is outside the grid.
func (g *Grid[T]) Set(row, col int, v T) error {
	if !g.InBounds(Position{Row: row, Col: col}) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrIndexOutOfRange, row, col, g.RowCount(), g.ColCount())
	}
	g.rows[row][col] = v
	return nil
}

// MustSet is Set for callers that treat an out-of-range write as fatal.
func (g *Grid[T]) MustSet(row, col int, v T) {
	if err := g.Set(row, col, v); err != nil {
		panic(err)
	}
}

// Clone returns a deep copy of g so that one copy can be mutated without
// affecting the other.
// Complexity: O(W×H) time and memory.
func (g *Grid[T]) Clone() *Grid[T] {
	c := New[T](len(g.rows))
	for _, row := range g.rows {
		dup := make([]T, len(row))
		copy(dup, row)
		c.AddRow(dup)
	}
	return c
}

// Cells returns a lazy row-major traversal: every column of row 0, then
// row 1, and so on. The sequence can be ranged over any number of times.
func (g *Grid[T]) Cells() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for r, row := range g.rows {
			for c, v := range row {
				if !yield(Cell[T]{Row: r, Col: c, Value: v}) {
					return
				}
			}
		}
	}
}

// Find returns the first cell, in row-major order, whose value satisfies match.
func (g *Grid[T]) Find(match func(T) bool) (Cell[T], bool) {
	for c := range g.Cells() {
		if match(c.Value) {
			return c, true
		}
	}
	return Cell[T]{}, false
}

// Step moves one cell from p in direction d. It reports false when the
// target lies outside the grid or d is None.
func (g *Grid[T]) Step(p Position, d Direction) (Position, bool) {
	n, ok := d.Apply(p)
	if !ok || !g.InBounds(n) {
		return p, false
	}
	return n, true
}

// OrthogonalNeighbors returns the in-bounds neighbors of p in the fixed
// order North, East, South, West. Diagonals are never included.
func (g *Grid[T]) OrthogonalNeighbors(p Position) []Position {
	out := make([]Position, 0, len(Headings))
	for _, d := range Headings {
		if n, ok := g.Step(p, d); ok {
			out = append(out, n)
		}
	}
	return out
}
