// SPDX-License-Identifier: MIT
// Package: graphmesh/coloring

package coloring

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/graphmesh/mesh"
)

// ErrInconsistentTagging reports branch metadata that contradicts the mesh
// it describes.
var ErrInconsistentTagging = errors.New("coloring: inconsistent tagging")

// branchInfo is one input branch.
type branchInfo struct {
	ends  [2]int
	verts *hashset.Set // vertices of the branch cells
}

// Reduce recolors the tagged cells of m so that branches sharing an
// endpoint vertex get different colors.
//
// colors holds one input color per cell, 0 for untagged cells. endpoints
// maps every nonzero input color to its two extremal vertices; a loop uses
// a degenerate pair (v, v). Branches are processed in ascending input color
// order and each takes the lowest color not used by an already colored
// neighbour. Output colors start at 1; untagged cells stay 0.
//
// Errors: ErrInconsistentTagging when colors and m disagree in length, a
// color has no endpoint entry (or an entry has no cells), two colors claim
// the same endpoint pair, or an endpoint is not a vertex of its own cells.
// Complexity: O(C + B·d·log B) for B branches of maximum adjacency d.
func Reduce(m *mesh.Mesh, colors []int, endpoints map[int][2]int) (mesh.CellField[int], error) {
	if len(colors) != m.NumCells() {
		return nil, errors.Wrapf(ErrInconsistentTagging, "tagging has %d entries for %d cells", len(colors), m.NumCells())
	}

	branches := treemap.NewWithIntComparator() // input color → *branchInfo
	for c, color := range colors {
		if color == 0 {
			continue
		}
		var b *branchInfo
		if got, ok := branches.Get(color); ok {
			b = got.(*branchInfo)
		} else {
			ends, ok := endpoints[color]
			if !ok {
				return nil, errors.Wrapf(ErrInconsistentTagging, "color %d has no endpoints", color)
			}
			b = &branchInfo{ends: ends, verts: hashset.New()}
			branches.Put(color, b)
		}
		b.verts.Add(m.Cells[c][0], m.Cells[c][1])
	}
	if branches.Size() != len(endpoints) {
		for color := range endpoints {
			if _, ok := branches.Get(color); !ok {
				return nil, errors.Wrapf(ErrInconsistentTagging, "color %d has endpoints but no cells", color)
			}
		}
	}

	// endpoint vertex → input colors touching it, in ascending color order
	byVertex := make(map[int][]int)
	claimed := make(map[[2]int]int)
	it := branches.Iterator()
	for it.Next() {
		color, b := it.Key().(int), it.Value().(*branchInfo)
		key := b.ends
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if prev, dup := claimed[key]; dup {
			return nil, errors.Wrapf(ErrInconsistentTagging, "colors %d and %d share endpoints %v", prev, color, key)
		}
		claimed[key] = color
		if !b.verts.Contains(key[0], key[1]) {
			return nil, errors.Wrapf(ErrInconsistentTagging, "color %d endpoints %v are not on its cells", color, key)
		}
		byVertex[key[0]] = append(byVertex[key[0]], color)
		if key[1] != key[0] {
			byVertex[key[1]] = append(byVertex[key[1]], color)
		}
	}

	reduced := make(map[int]int, branches.Size())
	used := 0
	it = branches.Iterator()
	for it.Next() {
		color, b := it.Key().(int), it.Value().(*branchInfo)
		taken := hashset.New()
		for _, v := range b.ends {
			for _, nb := range byVertex[v] {
				if rc, done := reduced[nb]; done && nb != color {
					taken.Add(rc)
				}
			}
		}
		rc := 1
		for taken.Contains(rc) {
			rc++
		}
		reduced[color] = rc
		used = max(used, rc)
	}

	out := make(mesh.CellField[int], len(colors))
	for c, color := range colors {
		if color != 0 {
			out[c] = reduced[color]
		}
	}

	klog.V(1).Infof("coloring: color reduction %d -> %d", branches.Size(), used)

	return out, nil
}

// Count returns the number of distinct nonzero colors in colors.
func Count(colors []int) int {
	seen := hashset.New()
	for _, c := range colors {
		if c != 0 {
			seen.Add(c)
		}
	}

	return seen.Size()
}
