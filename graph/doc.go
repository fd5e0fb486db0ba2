// Package graph implements the directed, labeled graph shared by planning
// and execution: vertices carrying an operation value and an
// insertion-ordered adjacency list of outgoing edges, coalescing duplicate
// edges to the same destination (last-writer-wins), plus the two
// traversals the rest of this module needs — preorder for the executor and
// a visited-set depth-first walk for --dot.
//
// Unlike the teacher corpus's github.com/katalvlaran/lvlath/core.Graph, this
// Graph carries no locks: the spec this module implements is explicit that
// planning and execution are single-threaded and cooperative (one planner
// builds one graph, solves it once, and executes the result sequentially),
// so the mutex discipline lvlath's general-purpose library pays for on
// every call would be unexercised weight here.
package graph
