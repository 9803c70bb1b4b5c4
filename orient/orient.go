// SPDX-License-Identifier: MIT
// Package: graphmesh/orient

package orient

import (
	"github.com/Flokey82/go_gens/vectors"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/graphmesh/geom"
	"github.com/katalvlaran/graphmesh/mesh"
)

// ErrTangentField reports a tangent field that does not match the mesh.
var ErrTangentField = errors.New("orient: tangent field does not match mesh")

// Facet tags.
const (
	Interior = 0
	Outlet   = 1
	Inlet    = 2
)

// Orientation is the result for one color.
type Orientation struct {
	Color int
	// Branch is the submesh of the cells carrying Color.
	Branch *mesh.Submesh
	// Tangent is the localized tangent, one unit vector per branch cell.
	Tangent [][3]float64
	// Facets holds a tag per branch vertex: Interior, Outlet or Inlet.
	Facets []int
}

// Outlets returns the parent-mesh vertices tagged Outlet, in branch order.
func (o *Orientation) Outlets() []int { return o.tagged(Outlet) }

// Inlets returns the parent-mesh vertices tagged Inlet, in branch order.
func (o *Orientation) Inlets() []int { return o.tagged(Inlet) }

func (o *Orientation) tagged(tag int) []int {
	var out []int
	for v, t := range o.Facets {
		if t == tag {
			out = append(out, o.Branch.ParentVertices[v])
		}
	}

	return out
}

// Resolve orients every nonzero color of colors.
//
// For each color the branch submesh is extracted and tangent is localized
// onto it. The localization is the cell-volume weighted projection onto
// piecewise constants over the branch cells, which for a cellwise constant
// input reduces to the restricted value; it is normalized to unit length.
// Every vertex with a single branch cell is a boundary facet: its outward
// normal points from the other vertex of that cell towards it. The facet
// is tagged Outlet when the dot product with the local tangent is strictly
// positive and Inlet otherwise, including a zero product. Loops have no
// boundary facets.
//
// Errors: ErrTangentField when len(tangent) != m.NumCells();
// mesh.ErrInvalidMesh when len(colors) != m.NumCells().
func Resolve(m *mesh.Mesh, colors []int, tangent [][3]float64) (map[int]*Orientation, error) {
	if len(tangent) != m.NumCells() {
		return nil, errors.Wrapf(ErrTangentField, "%d tangents for %d cells", len(tangent), m.NumCells())
	}
	if len(colors) != m.NumCells() {
		return nil, errors.Wrapf(mesh.ErrInvalidMesh, "tagging has %d entries for %d cells", len(colors), m.NumCells())
	}

	out := make(map[int]*Orientation)
	for _, color := range mesh.CellField[int](colors).Distinct() {
		if color == 0 {
			continue
		}
		sub, err := m.Submesh(colors, color)
		if err != nil {
			return nil, err
		}
		o := &Orientation{
			Color:   color,
			Branch:  sub,
			Tangent: localize(sub, tangent),
			Facets:  make([]int, sub.NumVertices()),
		}

		vc := sub.VertexCells()
		for v, cells := range vc {
			if len(cells) != 1 {
				continue
			}
			c := cells[0]
			inner := sub.Cells[c][0]
			if inner == v {
				inner = sub.Cells[c][1]
			}
			normal := geom.Vec(geom.Direction(sub.Coords[inner], sub.Coords[v]))
			if vectors.Dot3(geom.Vec(o.Tangent[c]), normal) > 0 {
				o.Facets[v] = Outlet
			} else {
				o.Facets[v] = Inlet
			}
		}
		out[color] = o

		klog.V(2).Infof("orient: color %d inlets %v outlets %v", color, o.Inlets(), o.Outlets())
	}

	return out, nil
}

// localize projects the global tangent onto the submesh cells. Each
// branch cell lies inside one parent cell, so the volume weighted mean
// over it is the parent value.
func localize(sub *mesh.Submesh, tangent [][3]float64) [][3]float64 {
	out := make([][3]float64, sub.NumCells())
	for c, pc := range sub.ParentCells {
		out[c] = geom.Point(geom.Unit(geom.Vec(tangent[pc])))
	}

	return out
}
