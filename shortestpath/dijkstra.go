package shortestpath

import (
	"container/heap"

	"github.com/foldwell/webfontgen/graph"
	"github.com/foldwell/webfontgen/weight"
)

// Solve runs Dijkstra from source until the priority queue is empty or
// every vertex in destinations has been settled, whichever comes first. It
// records length/parent-edge scratch on each vertex it visits via
// graph.Vertex.SetLength, and returns the set of settled (completed)
// vertices — destinations absent from this set are unreachable from
// source.
//
// A vertex's first settlement is final: subsequent relaxations only update
// an unsettled vertex's recorded length, and only when the candidate length
// is strictly less than what's already recorded, so ties keep the earlier
// parent edge.
func Solve(source *graph.Vertex, destinations []*graph.Vertex) map[*graph.Vertex]bool {
	settled := make(map[*graph.Vertex]bool)
	remaining := make(map[*graph.Vertex]bool, len(destinations))
	for _, d := range destinations {
		remaining[d] = true
	}

	source.SetLength(weight.Zero(), nil)
	q := &nodePQ{{vertex: source, length: weight.Zero()}}
	heap.Init(q)

	for q.Len() > 0 && len(remaining) > 0 {
		it := heap.Pop(q).(*node)
		u := it.vertex
		if settled[u] {
			continue
		}
		settled[u] = true
		delete(remaining, u)

		for _, e := range u.Outgoing() {
			newLength := it.length.Add(e.Weight)
			curLength, known := e.To.Length()

			switch {
			case !known:
				e.To.SetLength(newLength, e)
				heap.Push(q, &node{vertex: e.To, length: newLength})
			case !settled[e.To] && newLength.Less(curLength):
				e.To.SetLength(newLength, e)
				heap.Push(q, &node{vertex: e.To, length: newLength})
			}
		}
	}

	return settled
}
