// SPDX-License-Identifier: MIT
// Package: graphmesh/builder
//
// impl_tree.go - implementation of Tree(generations, params) constructor.
//
// Model:
//   - Root vessel from Origin along Direction, diameter D0, length Lambda*D0.
//   - Each vessel of diameter D splits into two daughters:
//       D2 = D (Gamma^3 + 1)^(-1/3),  D1 = Gamma * D2,  Li = Lambda * Di.
//   - Daughter i turns away from the parent axis by
//       cos(theta_i) = (D^4 + Di^4 - (D^3 - Di^3)^(4/3)) / (2 D^2 Di^2)
//     about Normal; the two daughters turn to opposite sides.
//   - Side choice is random when the config carries an RNG, otherwise
//     daughter 1 always turns positive.
//   - Edge radius is D/2.
//
// Contract:
//   - generations >= 1 (else ErrTooFewVertices); 1 means the root vessel only.
//   - Params validated up front (ErrInvalidParams).
//   - Produces 2^generations nodes and 2^generations - 1 edges, emitted
//     generation by generation, daughter 1 before daughter 2.
//
// Complexity:
//   - Time/Space: O(2^generations).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphmesh/core"
	"github.com/katalvlaran/graphmesh/geom"
)

const (
	methodTree     = "Tree"
	minGenerations = 1
	// maxGenerations keeps 2^g within int range and memory sane.
	maxGenerations = 24
)

// TreeParams are the geometric parameters of the bifurcation law.
type TreeParams struct {
	Origin    [3]float64 // root start point
	Direction [3]float64 // root direction, need not be unit
	Normal    [3]float64 // rotation axis of the branching plane
	Diameter  float64    // root diameter D0
	Lambda    float64    // length-to-diameter ratio
	Gamma     float64    // daughter diameter ratio D1/D2, in (0,1]
}

// DefaultTreeParams returns the planar tree used by the demos:
// origin (0,0,0), direction +y, normal +z, D0 = 1, lambda = 8, gamma = 0.8.
func DefaultTreeParams() TreeParams {
	return TreeParams{
		Direction: [3]float64{0, 1, 0},
		Normal:    [3]float64{0, 0, 1},
		Diameter:  1,
		Lambda:    8,
		Gamma:     0.8,
	}
}

func (p TreeParams) validate() error {
	switch {
	case !(p.Diameter > 0):
		return fmt.Errorf("%s: diameter=%g: %w", methodTree, p.Diameter, ErrInvalidParams)
	case !(p.Lambda > 0):
		return fmt.Errorf("%s: lambda=%g: %w", methodTree, p.Lambda, ErrInvalidParams)
	case !(p.Gamma > 0) || p.Gamma > 1:
		return fmt.Errorf("%s: gamma=%g not in (0,1]: %w", methodTree, p.Gamma, ErrInvalidParams)
	case geom.Vec(p.Direction).Len() == 0:
		return fmt.Errorf("%s: zero direction: %w", methodTree, ErrInvalidParams)
	case geom.Vec(p.Normal).Len() == 0:
		return fmt.Errorf("%s: zero normal: %w", methodTree, ErrInvalidParams)
	}

	return nil
}

// bifurcationAngle returns the turn angle (radians) of a daughter of
// diameter d from a parent of diameter d0.
func bifurcationAngle(d0, d float64) float64 {
	c := (math.Pow(d0, 4) + math.Pow(d, 4) - math.Pow(d0*d0*d0-d*d*d, 4.0/3)) / (2 * d0 * d0 * d * d)
	// rounding can push c a hair outside [-1,1]
	c = math.Max(-1, math.Min(1, c))

	return math.Acos(c)
}

// vessel is a generated edge awaiting its daughters.
type vessel struct {
	from, to int        // node keys
	p0, p1   [3]float64 // end positions
	diameter float64
}

// Tree returns a Constructor that grows a binary vascular-like tree.
func Tree(generations int, p TreeParams) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if generations < minGenerations || generations > maxGenerations {
			return fmt.Errorf("%s: generations=%d not in [%d,%d]: %w",
				methodTree, generations, minGenerations, maxGenerations, ErrTooFewVertices)
		}
		if err := p.validate(); err != nil {
			return err
		}

		idx := 0
		grow := func(from int, p0, p1 [3]float64, d float64) (vessel, error) {
			idx++
			to, err := addNode(g, cfg, methodTree, idx, p1)
			if err != nil {
				return vessel{}, err
			}
			if _, err = g.AddEdge(from, to, d/2, core.WithType(cfg.edgeType)); err != nil {
				return vessel{}, fmt.Errorf("%s: AddEdge(%d-%d): %w", methodTree, from, to, err)
			}

			return vessel{from: from, to: to, p0: p0, p1: p1, diameter: d}, nil
		}

		root, err := addNode(g, cfg, methodTree, 0, p.Origin)
		if err != nil {
			return err
		}
		tip := geom.Point(geom.Vec(p.Origin).Add(geom.Unit(geom.Vec(p.Direction)).Mul(p.Lambda * p.Diameter)))
		first, err := grow(root, p.Origin, tip, p.Diameter)
		if err != nil {
			return err
		}

		previous := []vessel{first}
		for gen := 1; gen < generations; gen++ {
			current := make([]vessel, 0, 2*len(previous))
			for _, parent := range previous {
				d0 := parent.diameter
				d2 := d0 * math.Pow(p.Gamma*p.Gamma*p.Gamma+1, -1.0/3)
				d1 := p.Gamma * d2

				sign := 1.0
				if cfg.rng != nil && cfg.rng.Intn(2) == 0 {
					sign = -1
				}
				axis := geom.Vec(geom.Direction(parent.p0, parent.p1))
				for _, daughter := range [2]struct{ d, turn float64 }{
					{d1, sign * bifurcationAngle(d0, d1)},
					{d2, -sign * bifurcationAngle(d0, d2)},
				} {
					dir := geom.Rotate(axis, geom.Vec(p.Normal), daughter.turn)
					end := geom.Point(geom.Vec(parent.p1).Add(dir.Mul(p.Lambda * daughter.d)))
					v, err := grow(parent.to, parent.p1, end, daughter.d)
					if err != nil {
						return err
					}
					current = append(current, v)
				}
			}
			previous = current
		}

		return nil
	}
}
