// Package config holds the YAML configuration of a meshing run.
//
// A file names the graph source and the optional refinement, orientation,
// store and logging stages:
//
//	source:
//	  kind: swc
//	  path: data/neuron.swc
//	  trim_soma: true
//	refine:
//	  levels: 1
//	coloring:
//	  reduce: true
//	orientation:
//	  tangent: walk
//	store:
//	  enabled: true
//	  path: ${HOME}/.graphmesh/store
//	log:
//	  verbosity: 1
//
// Environment variables in string values are expanded after reading.
package config

import (
	"github.com/pkg/errors"
)

// ErrInvalidConfig reports a configuration that cannot drive a run.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Source kinds.
const (
	KindSWC   = "swc"
	KindTree  = "tree"
	KindGrid  = "grid"
	KindPath  = "path"
	KindCycle = "cycle"
	KindStar  = "star"
)

// Tangent field choices.
const (
	TangentRaw  = "raw"
	TangentWalk = "walk"
)

// Config is the root of a configuration file.
type Config struct {
	Source      SourceConfig      `mapstructure:"source" yaml:"source"`
	Refine      RefineConfig      `mapstructure:"refine" yaml:"refine"`
	Coloring    ColoringConfig    `mapstructure:"coloring" yaml:"coloring"`
	Orientation OrientationConfig `mapstructure:"orientation" yaml:"orientation"`
	Store       StoreConfig       `mapstructure:"store" yaml:"store"`
	Log         LogConfig         `mapstructure:"log" yaml:"log"`
}

// SourceConfig selects and parameterizes the graph source.
type SourceConfig struct {
	Kind string `mapstructure:"kind" yaml:"kind" validate:"oneof=swc tree grid path cycle star"`

	// swc
	Path          string `mapstructure:"path" yaml:"path,omitempty"`
	CommentPrefix string `mapstructure:"comment_prefix" yaml:"comment_prefix,omitempty"`
	TrimSoma      bool   `mapstructure:"trim_soma" yaml:"trim_soma,omitempty"`

	// tree
	Depth int        `mapstructure:"depth" yaml:"depth,omitempty" validate:"min=0"`
	Tree  TreeConfig `mapstructure:"tree" yaml:"tree,omitempty"`

	// grid, path, cycle, star
	N       int     `mapstructure:"n" yaml:"n,omitempty" validate:"min=0"`
	Prob    float64 `mapstructure:"prob" yaml:"prob,omitempty" validate:"gte=0,lt=1"`
	Spacing float64 `mapstructure:"spacing" yaml:"spacing,omitempty" validate:"gte=0"`

	// Seed drives every random choice; 0 means no randomness.
	Seed int64 `mapstructure:"seed" yaml:"seed,omitempty"`
}

// TreeConfig mirrors builder.TreeParams.
type TreeConfig struct {
	Origin    [3]float64 `mapstructure:"origin" yaml:"origin,flow"`
	Direction [3]float64 `mapstructure:"direction" yaml:"direction,flow"`
	Normal    [3]float64 `mapstructure:"normal" yaml:"normal,flow"`
	Diameter  float64    `mapstructure:"diameter" yaml:"diameter"`
	Lambda    float64    `mapstructure:"lambda" yaml:"lambda"`
	Gamma     float64    `mapstructure:"gamma" yaml:"gamma"`
}

// RefineConfig sets the number of uniform bisection passes.
type RefineConfig struct {
	Levels int `mapstructure:"levels" yaml:"levels" validate:"min=0"`
}

// ColoringConfig switches the greedy color reduction. Without it the
// reduced colors equal the branch colors. Networks with parallel branches
// (two branches joining the same pair of junctions) cannot be reduced, so
// grid sources must run with Reduce off.
type ColoringConfig struct {
	Reduce bool `mapstructure:"reduce" yaml:"reduce"`
}

// OrientationConfig picks the tangent field handed to orientation.
type OrientationConfig struct {
	Tangent string `mapstructure:"tangent" yaml:"tangent" validate:"oneof=raw walk"`
}

// StoreConfig configures the on-disk result store.
type StoreConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Path     string `mapstructure:"path" yaml:"path,omitempty"`
	InMemory bool   `mapstructure:"in_memory" yaml:"in_memory,omitempty"`
}

// LogConfig sets the klog verbosity.
type LogConfig struct {
	Verbosity int `mapstructure:"verbosity" yaml:"verbosity" validate:"min=0"`
}

// Default returns a runnable configuration: a five generation tree with
// walk tangents, no refinement and no store.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Kind:  KindTree,
			Depth: 5,
			Tree: TreeConfig{
				Direction: [3]float64{0, 1, 0},
				Normal:    [3]float64{0, 0, 1},
				Diameter:  1,
				Lambda:    8,
				Gamma:     0.8,
			},
			CommentPrefix: "#",
			N:             4,
			Spacing:       1,
		},
		Coloring:    ColoringConfig{Reduce: true},
		Orientation: OrientationConfig{Tangent: TangentWalk},
	}
}
