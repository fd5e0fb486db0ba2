package graph

import (
	"github.com/foldwell/webfontgen/format"
	"github.com/foldwell/webfontgen/ops"
	"github.com/foldwell/webfontgen/weight"
)

// Edge connects two vertices with a weight and an optional file annotation.
// File names the FontFile that flows along this edge when the graph is
// executed; it is nil only for structural edges that carry no file (the
// super-source's edges into the per-format input rendezvous vertices).
type Edge struct {
	From, To *Vertex
	Weight   weight.Vector
	File     *format.FontFile
}

// Vertex is a graph node carrying an Operation as its value. Outgoing edges
// are kept in insertion order; adding a second edge to the same destination
// overwrites the first in place rather than appending a parallel edge,
// since the planner never needs two edges between the same pair of
// vertices. Incoming edges are tracked the same way for every vertex, but
// only carry meaning once a vertex has been copied into a materialized
// execution tree, where each non-root vertex has exactly one incoming
// edge, from its parent.
//
// length/hasLength/parent are scratch fields used only while a shortest-paths
// search is in progress or has just completed; they are meaningless before
// the first search and are not an invariant of the graph itself.
type Vertex struct {
	ID string
	Op *ops.Operation

	out      []*Edge
	outIndex map[*Vertex]int
	in       []*Edge

	length    weight.Vector
	hasLength bool
	parent    *Edge
}

// Graph owns every vertex minted through NewVertex, in creation order, so
// callers can enumerate the whole graph without depending on reachability
// from any particular root. --dot does not use this list; it walks
// DepthFirst from the super-source.
type Graph struct {
	vertices []*Vertex
}
