package branch

import (
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/graphmesh/mesh"
)

// Extract colors the cells of m by branch.
//
// Branches are discovered in ascending order of their lowest cell index and
// colored 1, 2, ... in that order. Every cell receives a color. The
// endpoint pair of an open branch is its two end vertices (lower index
// first); an isolated loop gets (v, v) with v its lowest vertex, and a loop
// hanging off a junction gets (j, j) with j the junction.
//
// Complexity: O(V + C).
func Extract(m *mesh.Mesh) *Tagging {
	vc := m.VertexCells()
	t := &Tagging{
		Colors:    make(mesh.CellField[int], m.NumCells()),
		Endpoints: make(map[int][2]int),
	}

	other := func(c, v int) int {
		cell := m.Cells[c]
		if cell[0] == v {
			return cell[1]
		}
		return cell[0]
	}

	color := 0
	for c0 := range m.Cells {
		if t.Colors[c0] != Untagged {
			continue
		}
		color++
		t.Colors[c0] = color
		lowest := min(m.Cells[c0][0], m.Cells[c0][1])

		// grow from v through degree-2 vertices; closed reports a return to c0
		grow := func(v int) (end int, closed bool) {
			prev := c0
			for len(vc[v]) == 2 {
				next := vc[v][0]
				if next == prev {
					next = vc[v][1]
				}
				if next == c0 {
					return v, true
				}
				t.Colors[next] = color
				prev = next
				v = other(next, v)
				lowest = min(lowest, v)
			}

			return v, false
		}

		b, closed := grow(m.Cells[c0][1])
		if closed {
			t.Endpoints[color] = [2]int{lowest, lowest}
			continue
		}
		a, _ := grow(m.Cells[c0][0])
		if a > b {
			a, b = b, a
		}
		t.Endpoints[color] = [2]int{a, b}
	}

	klog.V(1).Infof("branch: %d branches over %d cells", color, m.NumCells())

	return t
}

// Terminals returns the vertices with exactly one cell, ascending.
func Terminals(m *mesh.Mesh) []int {
	var out []int
	for v, d := range m.Degrees() {
		if d == 1 {
			out = append(out, v)
		}
	}

	return out
}

// Junctions returns the vertices with three or more cells, ascending.
func Junctions(m *mesh.Mesh) []int {
	var out []int
	for v, d := range m.Degrees() {
		if d >= 3 {
			out = append(out, v)
		}
	}

	return out
}
