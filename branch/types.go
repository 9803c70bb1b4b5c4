package branch

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/graphmesh/mesh"
)

// ErrDegenerateBranch reports a tagged cell set that cannot be walked:
// fewer than two cells, a vertex with three or more tagged cells, more
// than two open ends, or cells that do not form one connected chain.
var ErrDegenerateBranch = errors.New("branch: degenerate branch")

// Untagged is the color of cells that belong to no branch.
const Untagged = 0

// Tagging assigns every cell a branch color and every color its extremal
// vertex pair.
type Tagging struct {
	// Colors holds one color per cell; Untagged marks cells outside any branch.
	Colors mesh.CellField[int]
	// Endpoints maps a color to its two end vertices, lower index first.
	// A loop has the degenerate pair (v, v).
	Endpoints map[int][2]int
}

// NumColors returns the number of branch colors.
func (t *Tagging) NumColors() int { return len(t.Endpoints) }

// IsLoop reports whether color is a closed branch.
func (t *Tagging) IsLoop(color int) bool {
	ep, ok := t.Endpoints[color]
	return ok && ep[0] == ep[1]
}

// Shape is the result of Classify: either a Loop or a Path.
type Shape interface {
	// Ends returns the walk start and stop vertices.
	Ends() (start, end int)
}

// Loop is a closed branch. The walk starts and stops at Start.
type Loop struct {
	Start int
}

// Ends implements Shape.
func (l Loop) Ends() (int, int) { return l.Start, l.Start }

// Path is an open branch walked from Start to End.
type Path struct {
	Start, End int
}

// Ends implements Shape.
func (p Path) Ends() (int, int) { return p.Start, p.End }

// Step is one cell of a walk.
type Step struct {
	Cell int
	// Forward is true when the cell's stored (u,v) order agrees with the
	// walk direction.
	Forward bool
}
