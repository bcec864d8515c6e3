package search

import "math"

// table is the best-cost/predecessor store of one search run. Nodes live in
// an arena and refer to their predecessors by arena index, so a node's
// predecessor set can be revised without touching any other node.
type table struct {
	multi bool         // keep every equally good predecessor
	nodes []Node       // arena: index → node
	index map[Node]int // node → arena index
	best  []int        // best known g per index
	preds [][]int      // predecessor indices per index
	done  []bool       // expanded at its current best g
}

func newTable(multi bool, sizeHint int) *table {
	return &table{
		multi: multi,
		nodes: make([]Node, 0, sizeHint),
		index: make(map[Node]int, sizeHint),
		best:  make([]int, 0, sizeHint),
		preds: make([][]int, 0, sizeHint),
		done:  make([]bool, 0, sizeHint),
	}
}

// id returns the arena index of n, allocating an unreached slot if needed.
func (t *table) id(n Node) int {
	if i, ok := t.index[n]; ok {
		return i
	}
	i := len(t.nodes)
	t.index[n] = i
	t.nodes = append(t.nodes, n)
	t.best = append(t.best, math.MaxInt)
	t.preds = append(t.preds, nil)
	t.done = append(t.done, false)
	return i
}

// relax records that n is reachable with cost g from the node at index
// from (-1 for the seed). A strictly better g resets the predecessor set
// and reopens the node; an equal g adds from to the set in multi mode.
// It reports whether n must be pushed onto the frontier.
func (t *table) relax(n Node, g, from int) bool {
	i := t.id(n)
	switch {
	case g < t.best[i]:
		t.best[i] = g
		t.preds[i] = t.preds[i][:0]
		if from >= 0 {
			t.preds[i] = append(t.preds[i], from)
		}
		t.done[i] = false
		return true
	case g == t.best[i] && t.multi && from >= 0:
		for _, p := range t.preds[i] {
			if p == from {
				return false
			}
		}
		t.preds[i] = append(t.preds[i], from)
	}
	return false
}

// settle marks the node of s as expanded. It reports false for stale
// entries: those whose g is worse than the best known or whose node was
// already expanded at that cost.
func (t *table) settle(s State) (int, bool) {
	i := t.id(s.Node())
	if s.G > t.best[i] || t.done[i] {
		return i, false
	}
	t.done[i] = true
	return i, true
}
