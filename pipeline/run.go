// SPDX-License-Identifier: MIT
// Package: graphmesh/pipeline

package pipeline

import (
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/graphmesh/branch"
	"github.com/katalvlaran/graphmesh/coloring"
	"github.com/katalvlaran/graphmesh/config"
	"github.com/katalvlaran/graphmesh/core"
	"github.com/katalvlaran/graphmesh/dfs"
	"github.com/katalvlaran/graphmesh/mesh"
	"github.com/katalvlaran/graphmesh/meshstore"
	"github.com/katalvlaran/graphmesh/orient"
	"github.com/katalvlaran/graphmesh/refine"
)

// Result holds every product of a run. Coarse fields live on Coarse; the
// branch products and the prolonged fields live on Mesh, which is Coarse
// itself when no refinement was requested.
type Result struct {
	Graph *core.Graph
	// Components counts the connected pieces of Graph.
	Components int

	Coarse       *mesh.Mesh
	CoarseRadius mesh.CellField[float64]
	CoarseType   mesh.CellField[int]

	Mesh   *mesh.Mesh
	Parent []int // Mesh cell → Coarse cell
	Radius mesh.CellField[float64]
	Type   mesh.CellField[int]

	Branches    *branch.Tagging
	Colors      mesh.CellField[int] // reduced branch colors
	Tangent     [][3]float64
	Orientation map[int]*orient.Orientation // keyed by branch color
}

// Run executes every stage described by cfg and, when cfg.Store.Enabled,
// checkpoints the result under run.
func Run(cfg *config.Config, run string) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ConfigureLogging(cfg.Log.Verbosity)

	g, err := LoadGraph(cfg.Source)
	if err != nil {
		return nil, err
	}
	st := g.Stats()
	klog.V(1).Infof("pipeline: source %s: %d nodes, %d edges, %d leaves, %d branch points, radius [%g,%g]",
		cfg.Source.Kind, st.Nodes, st.Edges, st.Leaves, st.BranchPoints, st.MinRadius, st.MaxRadius)

	res, err := FromGraph(g, cfg)
	if err != nil {
		return nil, err
	}
	arbor := cfg.Source.Kind == config.KindTree || (cfg.Source.Kind == config.KindSWC && !cfg.Source.TrimSoma)
	if arbor && !dfs.IsTree(g) {
		klog.Warningf("pipeline: %s source is not a tree (%d components)", cfg.Source.Kind, res.Components)
	}

	if cfg.Store.Enabled {
		path := cfg.Store.Path
		if cfg.Store.InMemory {
			path = ""
		}
		s, err := meshstore.Open(path)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		if err = Save(s, run, res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// FromGraph runs the meshing stages on g using the refine, coloring and
// orientation sections of cfg.
func FromGraph(g *core.Graph, cfg *config.Config) (*Result, error) {
	levels := cfg.Refine.Levels
	comps, err := dfs.Components(g)
	if err != nil {
		return nil, err
	}
	res := &Result{Graph: g, Components: len(comps)}

	res.Coarse, res.CoarseRadius, res.CoarseType, err = mesh.Build(g)
	if err != nil {
		return nil, err
	}

	res.Mesh, res.Parent = refine.UniformN(res.Coarse, levels)
	if res.Radius, err = refine.Prolong(res.CoarseRadius, res.Parent, res.Mesh.NumCells()); err != nil {
		return nil, err
	}
	if res.Type, err = refine.Prolong(res.CoarseType, res.Parent, res.Mesh.NumCells()); err != nil {
		return nil, err
	}
	klog.V(1).Infof("pipeline: mesh %d cells, refined %d times to %d cells", res.Coarse.NumCells(), levels, res.Mesh.NumCells())

	res.Branches = branch.Extract(res.Mesh)
	res.Colors = res.Branches.Colors.Clone()
	if cfg.Coloring.Reduce {
		if res.Colors, err = coloring.Reduce(res.Mesh, res.Branches.Colors, res.Branches.Endpoints); err != nil {
			return nil, err
		}
	}

	if cfg.Orientation.Tangent == config.TangentWalk {
		res.Tangent, err = orient.WalkTangents(res.Mesh, res.Branches)
		if err != nil {
			return nil, err
		}
	} else {
		res.Tangent = orient.CellTangents(res.Mesh)
	}
	if res.Orientation, err = orient.Resolve(res.Mesh, res.Branches.Colors, res.Tangent); err != nil {
		return nil, err
	}
	klog.V(1).Infof("pipeline: %d branches in %d colors, %d components",
		res.Branches.NumColors(), coloring.Count(res.Colors), res.Components)

	return res, nil
}

// Save checkpoints res under run: the coarse and working meshes with their
// fields and the parent map between them.
func Save(s *meshstore.Store, run string, res *Result) error {
	steps := []func() error{
		func() error { return s.PutMesh(run, "coarse", res.Coarse) },
		func() error { return s.PutMesh(run, "mesh", res.Mesh) },
		func() error { return s.PutParentMap(run, "mesh", res.Parent) },
		func() error { return meshstore.PutField(s, run, "radius", res.Radius) },
		func() error { return meshstore.PutField(s, run, "type", res.Type) },
		func() error { return meshstore.PutField(s, run, "branches", res.Branches.Colors) },
		func() error { return meshstore.PutField(s, run, "colors", res.Colors) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	klog.V(1).Infof("pipeline: saved run %q", run)

	return nil
}
