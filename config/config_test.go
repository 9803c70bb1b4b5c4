package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmesh/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.KindTree, cfg.Source.Kind)
	assert.Equal(t, config.TangentWalk, cfg.Orientation.Tangent)
	assert.False(t, cfg.Store.Enabled)
}

func TestParse(t *testing.T) {
	t.Setenv("GRAPHMESH_TEST_DIR", "/tmp/gm")
	cfg, err := config.Parse([]byte(`
source:
  kind: grid
  n: 8
  prob: 0.3
  seed: 42
coloring:
  reduce: false
refine:
  levels: 2
store:
  enabled: true
  path: ${GRAPHMESH_TEST_DIR}/store
log:
  verbosity: 2
`))
	require.NoError(t, err)
	assert.Equal(t, config.KindGrid, cfg.Source.Kind)
	assert.Equal(t, 8, cfg.Source.N)
	assert.Equal(t, int64(42), cfg.Source.Seed)
	assert.Equal(t, 2, cfg.Refine.Levels)
	assert.Equal(t, "/tmp/gm/store", cfg.Store.Path)
	assert.Equal(t, 2, cfg.Log.Verbosity)
	assert.False(t, cfg.Coloring.Reduce)
	// untouched sections keep their defaults
	assert.Equal(t, config.TangentWalk, cfg.Orientation.Tangent)
	assert.Equal(t, 0.8, cfg.Source.Tree.Gamma)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "source:\n  kind: tree\n  colour: red\n"},
		{"unknown kind", "source:\n  kind: lattice\n"},
		{"swc without path", "source:\n  kind: swc\n"},
		{"tree depth", "source:\n  kind: tree\n  depth: 0\n"},
		{"tree gamma", "source:\n  kind: tree\n  tree:\n    gamma: 1.5\n"},
		{"grid prob", "source:\n  kind: grid\n  n: 4\n  prob: 1\ncoloring:\n  reduce: false\n"},
		{"grid with reduce", "source:\n  kind: grid\n  n: 4\n  prob: 0.3\n"},
		{"negative spacing", "source:\n  kind: path\n  spacing: -1\n"},
		{"negative n", "source:\n  kind: tree\n  n: -2\n"},
		{"path n", "source:\n  kind: path\n  n: 1\n"},
		{"levels", "refine:\n  levels: -1\n"},
		{"tangent", "orientation:\n  tangent: curl\n"},
		{"store path", "store:\n  enabled: true\n"},
		{"verbosity", "log:\n  verbosity: -3\n"},
		{"syntax", "source: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.LoadWithDefaults(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	want := config.Default()
	want.Source.Kind = config.KindCycle
	want.Source.N = 6
	want.Store = config.StoreConfig{Enabled: true, InMemory: true}
	data, err := want.Marshal()
	require.NoError(t, err)
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestValidate_Messages(t *testing.T) {
	cfg := config.Default()
	cfg.Source.Kind = "lattice"
	cfg.Orientation.Tangent = "curl"
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "source.kind must be one of [swc tree grid path cycle star]")
	assert.Contains(t, err.Error(), "orientation.tangent must be one of [raw walk]")

	cfg = config.Default()
	cfg.Source = config.SourceConfig{Kind: config.KindGrid, N: 8, Prob: 0.3}
	err = cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "coloring.reduce must be false")

	cfg.Coloring.Reduce = false
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvAndUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GRAPHMESH_TEST_SWC", "/data/arbor.swc")

	path := filepath.Join(dir, "swc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source:\n  kind: swc\n  path: ${GRAPHMESH_TEST_SWC}\n  trim_soma: true\n"), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/arbor.swc", cfg.Source.Path)
	assert.True(t, cfg.Source.TrimSoma)
	assert.Equal(t, "#", cfg.Source.CommentPrefix)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("store:\n  enabld: true\n"), 0o600))
	_, err = config.Load(bad)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
