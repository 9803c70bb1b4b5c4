// Package branch splits a 1-D mesh into branches and walks them.
//
// A branch is a maximal chain of cells whose interior vertices have exactly
// two cells. Its ends are terminals (one cell) or junctions (three or more
// cells); a chain that closes on itself is a loop.
//
// Extract colors every cell with its branch (colors start at 1) and records
// the extremal vertex pair of each branch. Classify, WalkCells and Walk then
// traverse one tagged branch in linked order:
//
//	steps, err := branch.WalkCells(m, tagging.Colors, 3)
//	for _, s := range steps {
//	    // s.Cell is visited in walk order; s.Forward tells whether its
//	    // stored (u,v) agrees with the walk direction.
//	}
//
// Walks are bounded by the number of tagged cells and fail with
// ErrDegenerateBranch on inputs that are not a single path or loop.
package branch
