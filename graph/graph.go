package graph

import (
	"github.com/foldwell/webfontgen/format"
	"github.com/foldwell/webfontgen/ops"
	"github.com/foldwell/webfontgen/weight"
)

// New returns an empty Graph.
func New() *Graph {
	return &Graph{}
}

// NewVertex mints a fresh Vertex with the given diagnostic id and
// operation, registers it with the graph, and returns it. id is a
// diagnostic name for tests and readability (--dot labels vertices with
// their operation name instead); it plays no role in graph algorithms,
// which key everything off pointer identity.
func (g *Graph) NewVertex(id string, op *ops.Operation) *Vertex {
	v := &Vertex{ID: id, Op: op, outIndex: make(map[*Vertex]int)}
	g.vertices = append(g.vertices, v)
	return v
}

// Vertices returns every vertex minted by this graph, in creation order.
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// AddEdge adds an edge from one vertex to another, coalescing it with any
// existing edge to the same destination: the new edge replaces the old one
// in place, preserving the destination's original position in from's
// adjacency order (last-writer-wins). It is also recorded as an incoming
// edge of to, in insertion order, with no coalescing: an edge replaced in
// from's adjacency stays in to's incoming list.
func (g *Graph) AddEdge(from, to *Vertex, w weight.Vector, file *format.FontFile) *Edge {
	e := &Edge{From: from, To: to, Weight: w, File: file}
	if idx, ok := from.outIndex[to]; ok {
		from.out[idx] = e
	} else {
		from.outIndex[to] = len(from.out)
		from.out = append(from.out, e)
	}
	to.in = append(to.in, e)
	return e
}

// Outgoing returns v's outgoing edges in insertion order.
func (v *Vertex) Outgoing() []*Edge {
	return v.out
}

// Incoming returns v's incoming edges in insertion order.
func (v *Vertex) Incoming() []*Edge {
	return v.in
}

// Length reports v's current best distance from the search's source and
// whether it has been set at all.
func (v *Vertex) Length() (weight.Vector, bool) {
	return v.length, v.hasLength
}

// SetLength records a new best distance and the edge that achieved it.
func (v *Vertex) SetLength(w weight.Vector, parent *Edge) {
	v.length = w
	v.hasLength = true
	v.parent = parent
}

// ParentEdge returns the backpointer a shortest-paths search left on v, or
// nil if v has none (the source vertex, or a vertex never reached).
func (v *Vertex) ParentEdge() *Edge {
	return v.parent
}
