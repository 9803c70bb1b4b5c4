// Package geom bridges the [3]float64 positions stored on graphs and meshes
// to go_gens vectors.Vec3, and adds the few helpers the generators, the mesh
// and the orientation code need on top of it.
package geom

import (
	"math"

	"github.com/Flokey82/go_gens/vectors"
)

// Vec converts a stored position to a vector.
func Vec(p [3]float64) vectors.Vec3 {
	return vectors.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

// Point converts a vector back to a stored position.
func Point(v vectors.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// Dist returns |a - b|.
func Dist(a, b [3]float64) float64 {
	return vectors.Sub3(Vec(a), Vec(b)).Len()
}

// Mid returns the midpoint of a and b.
func Mid(a, b [3]float64) [3]float64 {
	return Point(Vec(a).Add(Vec(b)).Mul(0.5))
}

// Unit returns v/|v|, or the zero vector when v has zero length.
func Unit(v vectors.Vec3) vectors.Vec3 {
	if v.Len() == 0 {
		return vectors.Vec3{}
	}

	return v.Normalize()
}

// Direction returns the unit vector pointing from a to b, zero if a == b.
func Direction(a, b [3]float64) [3]float64 {
	return Point(Unit(vectors.Sub3(Vec(b), Vec(a))))
}

// Rotate turns v by angle radians about axis (right-hand rule), using
// Rodrigues' formula. axis need not be normalized; a zero axis leaves v as is.
func Rotate(v, axis vectors.Vec3, angle float64) vectors.Vec3 {
	k := Unit(axis)
	if k == (vectors.Vec3{}) {
		return v
	}
	c, s := math.Cos(angle), math.Sin(angle)
	// v cosθ + (k×v) sinθ + k (k·v)(1-cosθ)
	return v.Mul(c).Add(vectors.Cross3(k, v).Mul(s)).Add(k.Mul(vectors.Dot3(k, v) * (1 - c)))
}
