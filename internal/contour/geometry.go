package contour

import "math"

// XAxis is the unit vector along +X.
var XAxis = Vec(Pt(0, 0), Pt(1, 0))

// PolarAngle returns the direction of v in degrees, counter-clockwise from
// +X, in (-180, 180]. A degenerate vector has angle 0.
func PolarAngle(v Vector) float64 {
	d := v.RadiusVector()
	// math.Atan2(0, 0) is 0, which is the documented fallback for
	// zero-length vectors.
	return math.Atan2(float64(d.Y), float64(d.X)) * 180 / math.Pi
}

// DirectionwiseAngle returns the rotation from the direction of v1 to the
// direction of v2, in degrees in [0, 360).
//
// The result is not symmetric: DirectionwiseAngle(v2, v1) is
// 360 - DirectionwiseAngle(v1, v2) unless either is 0.
func DirectionwiseAngle(v1, v2 Vector) float64 {
	r := PolarAngle(v2) - PolarAngle(v1)
	if r < 0 {
		r += 360
	}
	// A tiny negative difference can round up to exactly 360.
	if r >= 360 {
		r -= 360
	}
	return r
}

// VectorLen returns the Euclidean distance between v.From and v.To.
func VectorLen(v Vector) float64 {
	return v.Len()
}
