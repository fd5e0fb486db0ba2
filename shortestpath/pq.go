package shortestpath

import (
	"github.com/foldwell/webfontgen/graph"
	"github.com/foldwell/webfontgen/weight"
)

// node is a (vertex, length) pair held in the priority queue.
type node struct {
	vertex *graph.Vertex
	length weight.Vector
}

// nodePQ is a min-heap of *node ordered by length ascending, using the
// lazy-decrease-key pattern: a shorter length to an already-queued vertex is
// pushed as a new entry rather than mutating the old one in place; stale
// entries are discarded when popped (see Solve's settled check).
type nodePQ []*node

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].length.Less(pq[j].length) }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*node)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
