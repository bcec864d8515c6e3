package grid

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates a write outside the grid's allocated extent.
// It signals a logic defect in the caller; MustSet turns it into a panic.
var ErrIndexOutOfRange = errors.New("grid: index out of range")

// Position is a zero-based (row, column) coordinate.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns p translated by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// Compare orders positions by row, then column. It returns -1, 0 or +1.
func (p Position) Compare(q Position) int {
	switch {
	case p.Row < q.Row:
		return -1
	case p.Row > q.Row:
		return 1
	case p.Col < q.Col:
		return -1
	case p.Col > q.Col:
		return 1
	}
	return 0
}

// String formats p as "row,col".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Direction is one of the four orthogonal headings, or None for searches
// that do not track a heading.
type Direction int

const (
	// None is the heading-agnostic sentinel. Apply on None yields no move.
	None Direction = iota
	// North decreases the row.
	North
	// East increases the column.
	East
	// South increases the row.
	South
	// West decreases the column.
	West
)

// Headings lists the four orthogonal directions in clockwise order from North.
var Headings = [4]Direction{North, East, South, West}

// offsets is indexed by Direction.
var offsets = [...][2]int{
	None:  {0, 0},
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

// Offset returns the (Δrow, Δcol) of a single step in direction d.
func (d Direction) Offset() (dr, dc int) {
	o := offsets[d]
	return o[0], o[1]
}

// Apply moves p one step in direction d without knowing any grid extent;
// use Grid.Step for a fully bounds-checked move. The second result is false
// only when the step would go below row or column 0, or d is None.
func (d Direction) Apply(p Position) (Position, bool) {
	if d == None {
		return p, false
	}
	dr, dc := d.Offset()
	n := p.Add(dr, dc)
	if n.Row < 0 || n.Col < 0 {
		return p, false
	}
	return n, true
}

// TurnLeft rotates d a quarter turn counter-clockwise. None stays None.
func (d Direction) TurnLeft() Direction {
	switch d {
	case North:
		return West
	case East:
		return North
	case South:
		return East
	case West:
		return South
	}
	return None
}

// TurnRight rotates d a quarter turn clockwise. None stays None.
func (d Direction) TurnRight() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	}
	return None
}

// String returns the compass letter for d, or "-" for None.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "-"
}

// Cell is a read-only view of one grid position. Value is a copy of the
// stored value taken when the view was produced.
type Cell[T any] struct {
	Row, Col int
	Value    T
}

// Pos returns the cell's coordinate.
func (c Cell[T]) Pos() Position {
	return Position{Row: c.Row, Col: c.Col}
}
