package gridgraph

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphmesh/core"
)

// RandomEdgeGraph keeps each background edge whose uniform draw exceeds
// dropProb and returns the resulting network together with the keep mask
// over gg.Edges().
//
// Only vertices touched by a kept edge become nodes, keyed by lattice index
// and inserted in order of first appearance. Radii are uniform in (0,1].
// One draw per background edge is taken for the mask, then one per kept
// edge for the radius, so results are reproducible for a fixed seed.
//
// Errors: ErrInvalidProbability, ErrNeedRandSource.
func RandomEdgeGraph(gg *GridGraph, dropProb float64, rng *rand.Rand) (*core.Graph, []bool, error) {
	if dropProb < 0 || dropProb > 1 {
		return nil, nil, fmt.Errorf("RandomEdgeGraph: p=%g not in [0,1]: %w", dropProb, ErrInvalidProbability)
	}
	if rng == nil {
		return nil, nil, fmt.Errorf("RandomEdgeGraph: %w", ErrNeedRandSource)
	}

	edges := gg.Edges()
	keep := make([]bool, len(edges))
	kept := 0
	for i := range edges {
		if rng.Float64() > dropProb {
			keep[i] = true
			kept++
		}
	}

	g := core.NewGraph(core.WithCapacity(2*kept, kept))
	for i, e := range edges {
		if !keep[i] {
			continue
		}
		for _, idx := range e {
			if g.HasNode(idx) {
				continue
			}
			if err := g.AddNode(idx, gg.Position(idx)); err != nil {
				return nil, nil, fmt.Errorf("RandomEdgeGraph: %w", err)
			}
		}
		radius := 1 - rng.Float64()
		if _, err := g.AddEdge(e[0], e[1], radius); err != nil {
			return nil, nil, fmt.Errorf("RandomEdgeGraph: %w", err)
		}
	}

	return g, keep, nil
}

// RandomUnitSquare samples a network from an n×n triangulated unit square.
func RandomUnitSquare(n int, dropProb float64, rng *rand.Rand) (*core.Graph, []bool, error) {
	gg, err := NewGridGraph(n, n, DefaultGridOptions())
	if err != nil {
		return nil, nil, err
	}

	return RandomEdgeGraph(gg, dropProb, rng)
}
