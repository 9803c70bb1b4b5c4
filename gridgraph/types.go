// Package gridgraph defines core types, options, and sentinel errors
// for the background-grid network sampler.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a grid with no cells in some direction.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one cell in each direction")
	// ErrInvalidProbability indicates a drop probability outside [0,1].
	ErrInvalidProbability = errors.New("gridgraph: probability out of range")
	// ErrNeedRandSource indicates sampling was requested without an RNG.
	ErrNeedRandSource = errors.New("gridgraph: rng is required")
	// ErrBadExtent indicates a non-positive domain size.
	ErrBadExtent = errors.New("gridgraph: extent must be > 0")
)

// Connectivity selects which background edges join grid vertices.
type Connectivity int

const (
	// Conn4 joins horizontal and vertical neighbors.
	Conn4 Connectivity = iota
	// ConnTriangulated adds the SW-NE diagonal of every square, matching a
	// right-diagonal triangulation of the domain.
	ConnTriangulated
	// Conn8 adds both diagonals of every square.
	Conn8
)

// GridOptions contains tunable parameters for the background grid.
type GridOptions struct {
	// Conn chooses the background edge set.
	Conn Connectivity
	// Extent is the side length of the square domain.
	Extent float64
	// Origin is the lower-left corner of the domain.
	Origin [3]float64
}

// DefaultGridOptions returns a triangulated unit square at the origin.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:   ConnTriangulated,
		Extent: 1,
	}
}

// GridGraph is a (Cols+1)×(Rows+1) lattice of vertices covering a square
// domain. It is immutable once built.
// Vertices are numbered row-major: index = y*(Cols+1) + x.
// forwardOffsets lists each background edge direction exactly once.
type GridGraph struct {
	Cols, Rows     int
	Conn           Connectivity
	Extent         float64
	Origin         [3]float64
	forwardOffsets [][2]int
}
