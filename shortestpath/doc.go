// Package shortestpath implements Dijkstra's algorithm over graph.Graph
// using weight.Vector distances instead of a scalar, so the planner can rank
// candidate conversion chains by the lexicographic preference hierarchy
// described in weight's package doc rather than a single tuned number.
//
// Grounded on github.com/katalvlaran/lvlath/dijkstra's lazy-decrease-key
// container/heap implementation, generalized from int64 distances to
// weight.Vector and from a string-keyed vertex universe to direct
// *graph.Vertex pointers (this package's graph already stores its scratch
// length/parent-edge fields on the vertex itself, per the spec it
// implements, rather than in a side table the way lvlath's runner does).
package shortestpath
