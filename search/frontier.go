package search

import "container/heap"

// entry is a frontier item: a state and its push sequence number.
type entry struct {
	state State
	seq   int
}

// byPriority orders entries by ascending f. Equal f falls back to position,
// heading and push order so that runs are reproducible; none of these
// tie-breaks affect optimality.
func byPriority(a, b *entry) bool {
	if fa, fb := a.state.F(), b.state.F(); fa != fb {
		return fa < fb
	}
	if c := a.state.Pos.Compare(b.state.Pos); c != 0 {
		return c < 0
	}
	if a.state.Dir != b.state.Dir {
		return a.state.Dir < b.state.Dir
	}
	return a.seq < b.seq
}

// entryHeap adapts a slice of entries to container/heap using byPriority.
type entryHeap []*entry

// Len returns the number of items in the heap.
func (h entryHeap) Len() int { return len(h) }

// Less delegates to byPriority.
func (h entryHeap) Less(i, j int) bool { return byPriority(h[i], h[j]) }

// Swap swaps two elements in the heap.
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be *entry.
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(*entry)) }

// Pop is called by heap.Pop and removes the last element.
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// frontier is the min-priority queue of a single search run.
type frontier struct {
	h   entryHeap
	seq int
}

func (f *frontier) push(s State) {
	heap.Push(&f.h, &entry{state: s, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() State {
	return heap.Pop(&f.h).(*entry).state
}

func (f *frontier) empty() bool {
	return f.h.Len() == 0
}
