package cli

import (
	"fmt"
	"io"

	"github.com/teleivo/dot/ast"

	"github.com/foldwell/webfontgen/graph"
)

// writeDot renders the planning graph reachable from root as Graphviz dot,
// one node statement per vertex (labeled with its operation's name) and one
// edge statement per outgoing edge (labeled with the file it carries, when
// any). The dot text itself is built and printed by the teleivo/dot ast
// package rather than hand-assembled, so node and attribute syntax (quoting,
// bracket nesting) comes from that package's own String() methods.
//
// This renders the planning graph built by registry.Build, never the
// materialized execution tree: the planning graph holds every candidate
// conversion reachable from the supplied inputs, not only the chosen plan.
//
// Vertex names are assigned in DepthFirst visit order rather than by
// pointer identity, so two runs over the same input produce byte-identical
// dot output.
func writeDot(w io.Writer, root *graph.Vertex) error {
	ids := make(map[*graph.Vertex]int)
	for _, v := range graph.DepthFirst(root) {
		ids[v] = len(ids)
	}

	nodeID := func(v *graph.Vertex) ast.NodeID {
		return ast.NodeID{ID: ast.ID{Literal: fmt.Sprintf("v%d", ids[v])}}
	}
	labeled := func(value string) *ast.AttrList {
		return &ast.AttrList{AList: &ast.AList{
			Attribute: ast.Attribute{
				Name:  ast.ID{Literal: "label"},
				Value: ast.ID{Literal: fmt.Sprintf("%q", value)},
			},
		}}
	}

	var stmts []ast.Stmt
	for _, v := range graph.DepthFirst(root) {
		stmts = append(stmts, &ast.NodeStmt{
			NodeID:   nodeID(v),
			AttrList: labeled(v.Op.Name),
		})
		for _, e := range v.Outgoing() {
			edge := &ast.EdgeStmt{
				Left:  nodeID(v),
				Right: ast.EdgeRHS{Directed: true, Right: nodeID(e.To)},
			}
			if e.File != nil {
				edge.AttrList = labeled(e.File.FullPath)
			}
			stmts = append(stmts, edge)
		}
	}

	g := &ast.Graph{Directed: true, Stmts: stmts}
	_, err := io.WriteString(w, g.String()+"\n")
	return err
}
