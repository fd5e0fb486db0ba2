package planner

import "github.com/foldwell/webfontgen/graph"

// materialize walks each destination's parentEdge chain back toward
// source, copying each distinct vertex exactly once into a fresh graph
// (operation value preserved, adjacency rebuilt from scratch) and stitching
// one copied edge per back-edge walked. A branch stops as soon as it
// reaches a vertex that already has a copy — the rest of that path back to
// source has already been stitched by an earlier destination's walk, or by
// an earlier step of this same walk.
//
// Grounded on
// original_source/src/python/webfont_generator/graph.py:construct_shortest_paths_subtree,
// with Go pointer identity (map[*graph.Vertex]*graph.Vertex) standing in
// for the Python implementation's vertex_copies dict keyed by object
// identity.
func materialize(source *graph.Vertex, destinations []*graph.Vertex) *graph.Vertex {
	g := graph.New()
	copies := make(map[*graph.Vertex]*graph.Vertex)

	copyOf := func(v *graph.Vertex) *graph.Vertex {
		if c, ok := copies[v]; ok {
			return c
		}
		c := g.NewVertex(v.ID, v.Op)
		copies[v] = c
		return c
	}

	for _, dest := range destinations {
		if _, ok := copies[dest]; ok {
			continue
		}
		to := copyOf(dest)

		v := dest
		for {
			edge := v.ParentEdge()
			if edge == nil {
				break
			}
			from := edge.From
			if existing, ok := copies[from]; ok {
				g.AddEdge(existing, to, edge.Weight, edge.File)
				break
			}
			fromCopy := copyOf(from)
			g.AddEdge(fromCopy, to, edge.Weight, edge.File)
			to = fromCopy
			v = from
		}
	}

	if root, ok := copies[source]; ok {
		return root
	}
	return copyOf(source)
}
