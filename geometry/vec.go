// Package geometry provides the 2D vector math used by the embedding engine.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a 2D point or displacement. It is a defined type over gonum's r2.Vec
// so the arithmetic reads as methods; r2's package-level functions back them.
type Vec r2.Vec

// Add returns the vector sum v + u.
func (v Vec) Add(u Vec) Vec {
	return Vec(r2.Add(r2.Vec(v), r2.Vec(u)))
}

// Sub returns the vector difference v - u.
func (v Vec) Sub(u Vec) Vec {
	return Vec(r2.Sub(r2.Vec(v), r2.Vec(u)))
}

// Scale returns v scaled by f.
func (v Vec) Scale(f float64) Vec {
	return Vec(r2.Scale(f, r2.Vec(v)))
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec) float64 {
	return r2.Norm(r2.Vec(b.Sub(a)))
}

// Normalize returns the unit vector pointing in the direction of v, or the
// zero vector if v has no direction.
func Normalize(v Vec) Vec {
	n := r2.Norm(r2.Vec(v))
	if n == 0 {
		return Vec{}
	}
	return v.Scale(1 / n)
}

// TryNormalize returns the unit vector pointing in the direction of v. The
// second return value is false when v is the zero vector.
func TryNormalize(v Vec) (Vec, bool) {
	n := r2.Norm(r2.Vec(v))
	if n == 0 {
		return Vec{}, false
	}
	return v.Scale(1 / n), true
}

// Clamp limits v componentwise to the rectangle spanned by min and max.
func Clamp(v, min, max Vec) Vec {
	return Vec{
		X: math.Min(math.Max(v.X, min.X), max.X),
		Y: math.Min(math.Max(v.Y, min.Y), max.Y),
	}
}

// DistToLine returns the perpendicular distance from point to the infinite
// line through start and end. This is deliberately a line test, not a segment
// test: points beyond the segment's ends still report their distance to the
// line. Degenerate lines (start == end) report MaxFloat64.
func DistToLine(start, end, point Vec) float64 {
	a := end.X - start.X
	b := end.Y - start.Y

	c := a*(start.Y-point.Y) - (start.X-point.X)*b

	root := math.Sqrt(a*a + b*b)
	if root == 0 {
		return math.MaxFloat64
	}

	return math.Abs(c) / root
}
