package pipeline

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphmesh/builder"
	"github.com/katalvlaran/graphmesh/config"
	"github.com/katalvlaran/graphmesh/core"
	"github.com/katalvlaran/graphmesh/gridgraph"
	"github.com/katalvlaran/graphmesh/swc"
)

// LoadGraph produces the input graph described by sc.
func LoadGraph(sc config.SourceConfig) (*core.Graph, error) {
	switch sc.Kind {
	case config.KindSWC:
		g, err := swc.ParseFile(sc.Path, swc.WithCommentPrefix(sc.CommentPrefix))
		if err != nil {
			return nil, err
		}
		if sc.TrimSoma {
			swc.TrimSoma(g)
		}

		return g, nil

	case config.KindGrid:
		g, _, err := gridgraph.RandomUnitSquare(sc.N, sc.Prob, rand.New(rand.NewSource(sc.Seed)))

		return g, err
	}

	var cons builder.Constructor
	switch sc.Kind {
	case config.KindTree:
		t := sc.Tree
		cons = builder.Tree(sc.Depth, builder.TreeParams{
			Origin:    t.Origin,
			Direction: t.Direction,
			Normal:    t.Normal,
			Diameter:  t.Diameter,
			Lambda:    t.Lambda,
			Gamma:     t.Gamma,
		})
	case config.KindPath:
		cons = builder.Path(sc.N)
	case config.KindCycle:
		cons = builder.Cycle(sc.N)
	case config.KindStar:
		cons = builder.Star(sc.N)
	default:
		return nil, errors.Wrapf(config.ErrInvalidConfig, "unknown source.kind %q", sc.Kind)
	}

	var bopts []builder.BuilderOption
	if sc.Spacing > 0 {
		bopts = append(bopts, builder.WithSpacing(sc.Spacing))
	}
	if sc.Seed != 0 {
		bopts = append(bopts, builder.WithSeed(sc.Seed))
	}

	return builder.BuildGraph(nil, bopts, cons)
}
