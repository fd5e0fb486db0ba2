package graph

// Preorder walks a tree rooted at root, yielding root first and then, for
// each outgoing edge in adjacency order, the preorder of that edge's
// destination. It assumes root is the root of a tree (every non-root
// vertex reachable from root has exactly one path back to it); called on
// the materialized execution tree, this ordering guarantees a vertex's
// output files exist before any downstream vertex that consumes them is
// visited.
func Preorder(root *Vertex) []*Vertex {
	order := []*Vertex{root}
	for _, e := range root.out {
		order = append(order, Preorder(e.To)...)
	}
	return order
}

// DepthFirst walks the planning graph (which has cycles, e.g. output[ttf]
// -> fontforge -> output[ttf], and vertices reachable via multiple paths)
// from root using an explicit stack and a visited set, so no vertex is
// yielded twice even if several edges lead to it. Used only to drive the --dot diagnostic
// renderer over the full planning graph.
func DepthFirst(root *Vertex) []*Vertex {
	queued := map[*Vertex]bool{root: true}
	agenda := []*Vertex{root}
	var order []*Vertex

	for len(agenda) > 0 {
		v := agenda[len(agenda)-1]
		agenda = agenda[:len(agenda)-1]
		order = append(order, v)

		for _, e := range v.out {
			if !queued[e.To] {
				queued[e.To] = true
				agenda = append(agenda, e.To)
			}
		}
	}

	return order
}
