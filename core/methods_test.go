// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmesh/core"
)

// triangle builds nodes 10, 20, 30 and the three edges between them.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode(10, [3]float64{0, 0, 0}))
	require.NoError(t, g.AddNode(20, [3]float64{1, 0, 0}))
	require.NoError(t, g.AddNode(30, [3]float64{0, 1, 0}))
	_, err := g.AddEdge(10, 20, 0.5)
	require.NoError(t, err)
	_, err = g.AddEdge(20, 30, 0.25, core.WithType(3))
	require.NoError(t, err)
	_, err = g.AddEdge(30, 10, 1)
	require.NoError(t, err)

	return g
}

// TestGraph_AddNode verifies key uniqueness and finite positions.
func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(1, [3]float64{1, 2, 3}))
	assert.True(t, g.HasNode(1))
	assert.False(t, g.HasNode(2))

	err := g.AddNode(1, [3]float64{})
	assert.ErrorIs(t, err, core.ErrDuplicateNode)

	err = g.AddNode(2, [3]float64{math.NaN(), 0, 0})
	assert.ErrorIs(t, err, core.ErrBadPosition)
	err = g.AddNode(3, [3]float64{0, math.Inf(1), 0})
	assert.ErrorIs(t, err, core.ErrBadPosition)

	n, err := g.Node(1)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1, 2, 3}, n.Pos)

	_, err = g.Node(42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.Equal(t, 1, g.NodeCount())
}

// TestGraph_AddEdge verifies the edge constraints in a table.
func TestGraph_AddEdge(t *testing.T) {
	tests := []struct {
		name    string
		u, v    int
		radius  float64
		wantErr error
	}{
		{"ok", 1, 2, 0.5, nil},
		{"zero radius", 1, 3, 0, core.ErrBadRadius},
		{"negative radius", 1, 3, -1, core.ErrBadRadius},
		{"nan radius", 1, 3, math.NaN(), core.ErrBadRadius},
		{"loop", 4, 4, 1, core.ErrLoopNotAllowed},
		{"parallel", 2, 1, 1, core.ErrMultiEdgeNotAllowed},
	}

	g := core.NewGraph()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.AddEdge(tc.u, tc.v, tc.radius)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
	assert.Equal(t, 1, g.EdgeCount())
}

// TestGraph_EdgeOrderAndIDs verifies insertion order and monotonic IDs.
func TestGraph_EdgeOrderAndIDs(t *testing.T) {
	g := triangle(t)
	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{edges[0].ID, edges[1].ID, edges[2].ID})
	assert.Equal(t, 20, edges[1].From)
	assert.Equal(t, 30, edges[1].To)
	assert.Equal(t, 3, edges[1].Type)
	assert.Equal(t, 0, edges[0].Type)
	assert.Equal(t, []int{10, 20, 30}, g.Keys())

	assert.True(t, g.HasEdge(10, 30))
	assert.True(t, g.HasEdge(30, 10))
	assert.Equal(t, 2, g.Degree(20))
	assert.ElementsMatch(t, []int{10, 30}, g.Neighbors(20))
}

// TestGraph_RemoveAndFilter verifies order preservation after removal.
func TestGraph_RemoveAndFilter(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.RemoveEdge(2))
	assert.ErrorIs(t, g.RemoveEdge(2), core.ErrEdgeNotFound)
	assert.False(t, g.HasEdge(20, 30))
	assert.Equal(t, 1, g.Degree(20))

	id, err := g.AddEdge(20, 30, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, id, "IDs are never reused")

	removed := g.FilterEdges(func(e core.Edge) bool { return e.Radius < 1 })
	assert.Equal(t, 2, removed)
	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, 1, edges[0].ID)
	assert.Equal(t, 3, g.NodeCount(), "filtering keeps nodes")
}

// TestGraph_Dangling verifies lenient and strict endpoint handling.
func TestGraph_Dangling(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(1, [3]float64{}))
	_, err := g.AddEdge(1, 2, 1)
	require.NoError(t, err)
	err = g.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrDanglingEdge))
	assert.Equal(t, 1, g.Stats().Dangling)

	require.NoError(t, g.AddNode(2, [3]float64{1, 0, 0}))
	assert.NoError(t, g.Validate())

	s := core.NewGraph(core.WithStrictEndpoints())
	require.NoError(t, s.AddNode(1, [3]float64{}))
	_, err = s.AddEdge(1, 2, 1)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestGraph_Clone verifies deep copy independence.
func TestGraph_Clone(t *testing.T) {
	g := triangle(t)
	c := g.Clone()
	assert.Equal(t, g.Edges(), c.Edges())
	assert.Equal(t, g.Nodes(), c.Nodes())

	require.NoError(t, c.RemoveEdge(1))
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())

	id, err := c.AddEdge(10, 20, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, id)
}

// TestGraph_Stats verifies degree classes and radius range.
func TestGraph_Stats(t *testing.T) {
	g := core.NewGraph()
	for k := 0; k < 5; k++ {
		require.NoError(t, g.AddNode(k, [3]float64{float64(k), 0, 0}))
	}
	for k := 1; k < 4; k++ {
		_, err := g.AddEdge(0, k, float64(k))
		require.NoError(t, err)
	}
	s := g.Stats()
	assert.Equal(t, core.Stats{
		Nodes: 5, Edges: 3, Leaves: 3, BranchPoints: 1, Isolated: 1,
		MinRadius: 1, MaxRadius: 3,
	}, s)
}
