package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvpath/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraph_Empty(t *testing.T) {
	g, err := core.BuildGraph(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasNode(0))
}

func TestBuildGraph_NodeCountFromMaxIndex(t *testing.T) {
	// Node 5 is the largest index, so nodes 0..5 exist; 2 and 4 are isolated.
	g, err := core.BuildGraph([]core.Edge{
		{From: 0, To: 1, Length: 1},
		{From: 3, To: 5, Length: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	deg, err := g.Degree(2)
	require.NoError(t, err)
	assert.Zero(t, deg)
}

func TestBuildGraph_WithNodeCount(t *testing.T) {
	edges := []core.Edge{{From: 0, To: 1, Length: 1}}

	g, err := core.BuildGraph(edges, core.WithNodeCount(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())

	// A smaller hint never shrinks the graph.
	g, err = core.BuildGraph(edges, core.WithNodeCount(1))
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())

	assert.Panics(t, func() { core.WithNodeCount(-1) })
}

func TestBuildGraph_AdjacencyOrder(t *testing.T) {
	edges := []core.Edge{
		{From: 0, To: 2, Length: 1},
		{From: 1, To: 0, Length: 3},
		{From: 0, To: 3, Length: 4},
	}
	g, err := core.BuildGraph(edges)
	require.NoError(t, err)

	arcs, err := g.Arcs(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Arc{
		{Edge: 0, To: 2, Length: 1},
		{Edge: 1, To: 1, Length: 3},
		{Edge: 2, To: 3, Length: 4},
	}, arcs)

	arcs, err = g.Arcs(1)
	require.NoError(t, err)
	assert.Equal(t, []core.Arc{{Edge: 1, To: 0, Length: 3}}, arcs)
}

func TestBuildGraph_SelfLoopAppearsTwice(t *testing.T) {
	g, err := core.BuildGraph([]core.Edge{
		{From: 0, To: 1, Length: 2},
		{From: 1, To: 1, Length: 5},
	})
	require.NoError(t, err)

	arcs, err := g.Arcs(1)
	require.NoError(t, err)
	require.Len(t, arcs, 3)
	assert.Equal(t, 1, arcs[1].To)
	assert.Equal(t, 1, arcs[2].To)
	assert.Equal(t, arcs[1].Edge, arcs[2].Edge)
}

func TestBuildGraph_InvalidEdges(t *testing.T) {
	cases := []struct {
		name string
		edge core.Edge
	}{
		{"negative from", core.Edge{From: -1, To: 1, Length: 1}},
		{"negative to", core.Edge{From: 0, To: -3, Length: 1}},
		{"zero length", core.Edge{From: 0, To: 1, Length: 0}},
		{"negative length", core.Edge{From: 0, To: 1, Length: -7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			edges := []core.Edge{{From: 0, To: 1, Length: 1}, tc.edge}
			g, err := core.BuildGraph(edges)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, core.ErrInvalidEdge), "got %v", err)
			assert.Contains(t, err.Error(), "edge #1")
		})
	}
}

func TestBuildGraph_CopiesInput(t *testing.T) {
	edges := []core.Edge{{From: 0, To: 1, Length: 1}}
	g, err := core.BuildGraph(edges)
	require.NoError(t, err)

	edges[0].Length = 99
	e, err := g.Edge(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.Length)

	out := g.Edges()
	out[0].Length = 42
	e, _ = g.Edge(0)
	assert.Equal(t, int64(1), e.Length)
}

func TestGraph_OutOfRange(t *testing.T) {
	g, err := core.BuildGraph([]core.Edge{{From: 0, To: 1, Length: 1}})
	require.NoError(t, err)

	_, err = g.Arcs(2)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
	_, err = g.Arcs(-1)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
	_, err = g.Degree(7)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
	_, err = g.Edge(1)
	assert.ErrorIs(t, err, core.ErrEdgeOutOfRange)
}

func TestEdge_Neighbor(t *testing.T) {
	e := core.Edge{From: 3, To: 7, Length: 2}
	assert.Equal(t, 7, e.Neighbor(3))
	assert.Equal(t, 3, e.Neighbor(7))

	loop := core.Edge{From: 4, To: 4, Length: 1}
	assert.Equal(t, 4, loop.Neighbor(4))
	assert.Equal(t, "3-7(2)", e.String())
}
