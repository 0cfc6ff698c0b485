package search

import (
	"container/heap"

	"github.com/beka-birhanu/vinom-jumpmaze/maze"
)

// entry is a tentative cost for reaching a coordinate.
type entry struct {
	cost int
	pos  maze.Coordinate
}

// openSet is a binary min-heap ordered by cost, then row-major coordinate.
// Stale entries are left in place and skipped by the caller.
type openSet []entry

var _ heap.Interface = (*openSet)(nil)

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].cost != s[j].cost {
		return s[i].cost < s[j].cost
	}
	return s[i].pos.Less(s[j].pos)
}

func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x any) { *s = append(*s, x.(entry)) }

func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	e := old[n-1]
	*s = old[:n-1]
	return e
}

func (s *openSet) push(cost int, pos maze.Coordinate) {
	heap.Push(s, entry{cost: cost, pos: pos})
}

func (s *openSet) pop() entry {
	return heap.Pop(s).(entry)
}
