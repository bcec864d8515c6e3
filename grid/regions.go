package grid

// Regions finds all contiguous groups of cells whose values are equal under
// same, using 4-directional connectivity. Regions are discovered in
// row-major order of their first cell; within a region cells appear in BFS
// order from that cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for the seen flags and output.
func Regions[T any](g *Grid[T], same func(a, b T) bool) [][]Position {
	rows, cols := g.RowCount(), g.ColCount()
	seen := make([]bool, rows*cols)
	index := func(p Position) int { return p.Row*cols + p.Col }

	var regions [][]Position
	for start := range g.Cells() {
		p0 := start.Pos()
		if seen[index(p0)] {
			continue
		}
		// BFS to collect the region
		queue := []Position{p0}
		seen[index(p0)] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range g.OrthogonalNeighbors(u) {
				if seen[index(v)] || !same(start.Value, g.rows[v.Row][v.Col]) {
					continue
				}
				seen[index(v)] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, queue)
	}
	return regions
}

// Equal is a same-function for comparable cell types.
func Equal[T comparable](a, b T) bool {
	return a == b
}
