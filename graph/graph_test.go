package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldwell/webfontgen/format"
	"github.com/foldwell/webfontgen/graph"
	"github.com/foldwell/webfontgen/ops"
	"github.com/foldwell/webfontgen/weight"
)

func TestAddEdge_CoalescesDuplicateDestination(t *testing.T) {
	g := graph.New()
	a := g.NewVertex("a", ops.Noop)
	b := g.NewVertex("b", ops.Noop)

	first := format.New("/x/first", format.TTF)
	second := format.New("/x/second", format.TTF)

	g.AddEdge(a, b, weight.Vector{A: 1}, first)
	g.AddEdge(a, b, weight.Vector{B: 1}, second)

	require.Len(t, a.Outgoing(), 1)
	assert.Equal(t, weight.Vector{B: 1}, a.Outgoing()[0].Weight)
	assert.Equal(t, second, a.Outgoing()[0].File)
}

func TestAddEdge_PreservesInsertionOrderForDistinctDestinations(t *testing.T) {
	g := graph.New()
	a := g.NewVertex("a", ops.Noop)
	b := g.NewVertex("b", ops.Noop)
	c := g.NewVertex("c", ops.Noop)

	g.AddEdge(a, c, weight.Zero(), nil)
	g.AddEdge(a, b, weight.Zero(), nil)

	require.Len(t, a.Outgoing(), 2)
	assert.Equal(t, c, a.Outgoing()[0].To)
	assert.Equal(t, b, a.Outgoing()[1].To)
}

func TestVertices_ReturnsCreationOrder(t *testing.T) {
	g := graph.New()
	a := g.NewVertex("a", ops.Noop)
	b := g.NewVertex("b", ops.Noop)
	c := g.NewVertex("c", ops.Noop)

	assert.Equal(t, []*graph.Vertex{a, b, c}, g.Vertices())
}

func TestSetLength_RecordsLengthAndParentEdge(t *testing.T) {
	g := graph.New()
	a := g.NewVertex("a", ops.Noop)
	b := g.NewVertex("b", ops.Noop)
	edge := g.AddEdge(a, b, weight.Vector{A: 1}, nil)

	_, ok := b.Length()
	assert.False(t, ok)

	b.SetLength(weight.Vector{A: 1}, edge)
	length, ok := b.Length()
	require.True(t, ok)
	assert.Equal(t, weight.Vector{A: 1}, length)
	assert.Same(t, edge, b.ParentEdge())
}

func TestPreorder_VisitsRootBeforeChildrenInAdjacencyOrder(t *testing.T) {
	g := graph.New()
	root := g.NewVertex("root", ops.Noop)
	left := g.NewVertex("left", ops.Noop)
	right := g.NewVertex("right", ops.Noop)
	grandchild := g.NewVertex("grandchild", ops.Noop)

	g.AddEdge(root, left, weight.Zero(), nil)
	g.AddEdge(root, right, weight.Zero(), nil)
	g.AddEdge(left, grandchild, weight.Zero(), nil)

	order := graph.Preorder(root)
	var ids []string
	for _, v := range order {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"root", "left", "grandchild", "right"}, ids)
}

func TestDepthFirst_VisitsEachVertexOnceDespiteSharedDestination(t *testing.T) {
	g := graph.New()
	root := g.NewVertex("root", ops.Noop)
	a := g.NewVertex("a", ops.Noop)
	b := g.NewVertex("b", ops.Noop)
	shared := g.NewVertex("shared", ops.Noop)

	g.AddEdge(root, a, weight.Zero(), nil)
	g.AddEdge(root, b, weight.Zero(), nil)
	g.AddEdge(a, shared, weight.Zero(), nil)
	g.AddEdge(b, shared, weight.Zero(), nil)

	order := graph.DepthFirst(root)
	count := 0
	for _, v := range order {
		if v == shared {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Len(t, order, 4)
}
