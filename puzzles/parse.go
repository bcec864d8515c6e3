package puzzles

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jpbougie/aoc2024/grid"
)

// Maze tiles shared by days 16 and 20.
const (
	tileWall  = '#'
	tileFloor = '.'
	tileStart = 'S'
	tileExit  = 'E'
)

func walkable(r rune) bool { return r != tileWall }

// readGrid reads one row per non-empty line. Every rune must belong to
// alphabet (any rune when alphabet is empty) and every row must have the
// same length.
func readGrid(in io.Reader, alphabet string) (*grid.Grid[rune], error) {
	g := grid.New[rune](0)
	sc := bufio.NewScanner(in)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}
		row := []rune(text)
		if g.RowCount() > 0 && len(row) != g.ColCount() {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrBadInput, line, len(row), g.ColCount())
		}
		if alphabet != "" {
			for col, r := range row {
				if !strings.ContainsRune(alphabet, r) {
					return nil, fmt.Errorf("%w: unexpected %q at line %d col %d", ErrBadInput, r, line, col+1)
				}
			}
		}
		g.AddRow(row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if g.RowCount() == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrBadInput)
	}
	return g, nil
}

// findOne returns the position of the single cell holding r.
func findOne(g *grid.Grid[rune], r rune) (grid.Position, error) {
	var (
		found grid.Position
		n     int
	)
	for c := range g.Cells() {
		if c.Value == r {
			found = c.Pos()
			n++
		}
	}
	if n != 1 {
		return grid.Position{}, fmt.Errorf("%w: want exactly one %q, found %d", ErrBadInput, r, n)
	}
	return found, nil
}

// readMaze parses a '#', '.', 'S', 'E' maze and returns its endpoints.
func readMaze(in io.Reader) (g *grid.Grid[rune], from, to grid.Position, err error) {
	if g, err = readGrid(in, string([]rune{tileWall, tileFloor, tileStart, tileExit})); err != nil {
		return nil, from, to, err
	}
	if from, err = findOne(g, tileStart); err != nil {
		return nil, from, to, err
	}
	if to, err = findOne(g, tileExit); err != nil {
		return nil, from, to, err
	}
	return g, from, to, nil
}

// readCoords parses "x,y" lines.
func readCoords(in io.Reader) ([]grid.Position, error) {
	var out []grid.Position
	sc := bufio.NewScanner(in)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		xs, ys, ok := strings.Cut(text, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q is not x,y", ErrBadInput, line, text)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadInput, line, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadInput, line, err)
		}
		out = append(out, grid.Pos(y, x))
	}
	return out, sc.Err()
}
