package swc_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmesh/core"
	"github.com/katalvlaran/graphmesh/swc"
)

const neuron = `# ORIGINAL_SOURCE test
# SCALE 1.0 1.0 1.0
1 1 0.0 0.0 0.0 7.3875 -1
2 1 0.0 -7.38 0.0 7.3875 1
3 1 0.0 7.38 0.0 7.3875 1
4 3 1.5 1e1 -0.25 .5 3

5 3 2 12 0 0.4 4
`

// TestParse verifies nodes, edges and attributes of a small morphology.
func TestParse(t *testing.T) {
	var comments []string
	g, err := swc.Parse(strings.NewReader(neuron),
		swc.WithCommentSink(func(l string) { comments = append(comments, l) }))
	require.NoError(t, err)

	assert.Len(t, comments, 2)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, g.Keys())
	n, err := g.Node(4)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1.5, 10, -0.25}, n.Pos)

	edges := g.Edges()
	require.Len(t, edges, 4)
	assert.Equal(t, core.Edge{ID: 1, From: 2, To: 1, Radius: 7.3875, Type: 1}, edges[0])
	assert.Equal(t, core.Edge{ID: 3, From: 4, To: 3, Radius: 0.5, Type: 3}, edges[2])
	assert.Equal(t, 0.4, edges[3].Radius)

	removed := swc.TrimSoma(g)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 5, g.NodeCount())
}

// TestParse_Malformed covers the rejection rules.
func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"only comments", "# a\n# b\n"},
		{"first index not 1", "2 1 0 0 0 1 -1\n"},
		{"root with parent", "1 1 0 0 0 1 5\n"},
		{"gap in numbering", "1 1 0 0 0 1 -1\n3 3 1 0 0 1 1\n"},
		{"repeated index", "1 1 0 0 0 1 -1\n1 3 1 0 0 1 1\n"},
		{"too few fields", "1 1 0 0 0 1\n"},
		{"too many fields", "1 1 0 0 0 1 -1 7\n"},
		{"not a number", "1 1 0 x 0 1 -1\n"},
		{"float index", "1.5 1 0 0 0 1 -1\n"},
		{"zero radius", "1 1 0 0 0 1 -1\n2 3 1 0 0 0 1\n"},
		{"self parent", "1 1 0 0 0 1 -1\n2 3 1 0 0 1 2\n"},
		{"second root", "1 1 0 0 0 1 -1\n2 3 1 0 0 1 -1\n"},
		{"comment after data", "1 1 0 0 0 1 -1\n# late\n2 3 1 0 0 1 1\n"},
		{"dangling parent", "1 1 0 0 0 1 -1\n2 3 1 0 0 1 9\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := swc.Parse(strings.NewReader(tc.in))
			assert.Nil(t, g)
			assert.ErrorIs(t, err, swc.ErrMalformedRecord)
		})
	}
}

// TestParse_Options verifies a custom comment prefix.
func TestParse_Options(t *testing.T) {
	in := "% header\n1 1 0 0 0 1 -1\n2 2 0 1 0 0.5 1\n"
	g, err := swc.Parse(strings.NewReader(in), swc.WithCommentPrefix("%"))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())

	_, err = swc.Parse(strings.NewReader(in))
	assert.ErrorIs(t, err, swc.ErrMalformedRecord)

	assert.Panics(t, func() { swc.WithCommentPrefix("") })
}

// TestParseFile reads from disk and reports missing files.
func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cell.swc")
	require.NoError(t, os.WriteFile(path, []byte(neuron), 0o600))
	g, err := swc.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())

	_, err = swc.ParseFile(filepath.Join(t.TempDir(), "missing.swc"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, swc.ErrMalformedRecord)
}
