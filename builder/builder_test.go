// File: builder_test.go
// Package builder_test contains functional tests for the constructors,
// verifying counts, positions, radii and error sentinels.
package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmesh/builder"
	"github.com/katalvlaran/graphmesh/core"
	"github.com/katalvlaran/graphmesh/dfs"
	"github.com/katalvlaran/graphmesh/geom"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ctor   builder.Constructor
		wantV  int
		wantE  int
		isTree bool
	}{
		{"Path(4)", builder.Path(4), 4, 3, true},
		{"Cycle(5)", builder.Cycle(5), 5, 5, false},
		{"Star(4)", builder.Star(4), 4, 3, true},
		{"Tree(1)", builder.Tree(1, builder.DefaultTreeParams()), 2, 1, true},
		{"Tree(4)", builder.Tree(4, builder.DefaultTreeParams()), 16, 15, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assert.Equal(t, tc.isTree, dfs.IsTree(g))
			assert.NoError(t, g.Validate())
		})
	}
}

// TestBuilders_Errors verifies sentinel errors for invalid parameters.
func TestBuilders_Errors(t *testing.T) {
	bad := builder.DefaultTreeParams()
	bad.Gamma = 1.5

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Tree(0)", builder.Tree(0, builder.DefaultTreeParams()), builder.ErrTooFewVertices},
		{"Tree gamma", builder.Tree(2, bad), builder.ErrInvalidParams},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// two constructors with the same keys collide in core
	_, err := builder.BuildGraph(nil, nil, builder.Path(2), builder.Path(2))
	assert.ErrorIs(t, err, core.ErrDuplicateNode)
}

// TestBuilders_Geometry checks node placement and the configured radius.
func TestBuilders_Geometry(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSpacing(0.5),
		builder.WithOrigin([3]float64{1, 1, 1}),
		builder.WithRadiusFn(builder.ConstantRadiusFn(0.2)),
		builder.WithEdgeType(3),
	}, builder.Path(3))
	require.NoError(t, err)
	nodes := g.Nodes()
	assert.Equal(t, [3]float64{2, 1, 1}, nodes[2].Pos)
	for _, e := range g.Edges() {
		assert.Equal(t, 0.2, e.Radius)
		assert.Equal(t, 3, e.Type)
	}

	c, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSpacing(2)}, builder.Cycle(6))
	require.NoError(t, err)
	cn := c.Nodes()
	for i := range cn {
		d := geom.Dist(cn[i].Pos, cn[(i+1)%len(cn)].Pos)
		assert.InDelta(t, 2.0, d, 1e-9)
	}
}

// TestBuilders_KeyOffset composes two paths in one graph.
func TestBuilders_KeyOffset(t *testing.T) {
	g := core.NewGraph()
	cons := []struct {
		ctor builder.Constructor
		opts []builder.BuilderOption
	}{
		{builder.Path(3), nil},
		{builder.Path(3), []builder.BuilderOption{builder.WithKeyOffset(100)}},
	}
	for _, c := range cons {
		h, err := builder.BuildGraph(nil, c.opts, c.ctor)
		require.NoError(t, err)
		for _, n := range h.Nodes() {
			require.NoError(t, g.AddNode(n.Key, n.Pos))
		}
		for _, e := range h.Edges() {
			_, err = g.AddEdge(e.From, e.To, e.Radius)
			require.NoError(t, err)
		}
	}
	assert.Equal(t, []int{0, 1, 2, 100, 101, 102}, g.Keys())
}

// TestTree_Law verifies diameters, lengths and determinism of the tree law.
func TestTree_Law(t *testing.T) {
	p := builder.DefaultTreeParams()
	g, err := builder.BuildGraph(nil, nil, builder.Tree(2, p))
	require.NoError(t, err)

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, 0.5, edges[0].Radius)

	d2 := math.Pow(p.Gamma*p.Gamma*p.Gamma+1, -1.0/3)
	d1 := p.Gamma * d2
	assert.InDelta(t, d1/2, edges[1].Radius, 1e-12)
	assert.InDelta(t, d2/2, edges[2].Radius, 1e-12)

	pos := func(k int) [3]float64 {
		n, err := g.Node(k)
		require.NoError(t, err)
		return n.Pos
	}
	assert.InDelta(t, 8.0, geom.Dist(pos(0), pos(1)), 1e-9)
	assert.InDelta(t, p.Lambda*d1, geom.Dist(pos(1), pos(2)), 1e-9)
	assert.InDelta(t, p.Lambda*d2, geom.Dist(pos(1), pos(3)), 1e-9)
	// daughters turn to opposite sides of the +y axis, staying in the xy plane
	assert.True(t, pos(2)[0]*pos(3)[0] < 0)
	assert.InDelta(t, 0.0, pos(2)[2], 1e-12)

	// same seed, same tree
	a, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3)}, builder.Tree(5, p))
	require.NoError(t, err)
	b, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3)}, builder.Tree(5, p))
	require.NoError(t, err)
	assert.Equal(t, a.Nodes(), b.Nodes())
	assert.Equal(t, a.Edges(), b.Edges())
}

// TestOptions_Panics verifies option constructors fail fast.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithSpacing(0) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithRadiusFn(nil) })
	assert.Panics(t, func() { builder.WithKeyScheme(nil) })
	assert.Panics(t, func() { builder.ConstantRadiusFn(0) })
	assert.Panics(t, func() { builder.UniformRadiusFn(1, 1) })

	fn := builder.UniformRadiusFn(0, 1)
	assert.Equal(t, 1.0, fn(nil))
}
