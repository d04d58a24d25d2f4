// Package vecmath provides the small set of vector operations the analysis
// needs: dot products of direction vectors, the angle between them, and the
// planar norm used for distance-to-center derivation.
package vecmath

import "math"

// Dot calculates the dot product of two 3-vectors.
func Dot(a, b [3]float32) float64 {
	return float64(a[0])*float64(b[0]) +
		float64(a[1])*float64(b[1]) +
		float64(a[2])*float64(b[2])
}

// AngleDeg returns the angle in degrees between two unit 3-vectors.
// The dot product is clamped to [-1, 1] before acos to absorb rounding.
func AngleDeg(a, b [3]float32) float64 {
	d := Dot(a, b)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math.Acos(d) / math.Pi * 180
}

// NormXY returns the Euclidean norm of the xy projection of a 3-vector.
func NormXY(v [3]float32) float32 {
	return float32(math.Hypot(float64(v[0]), float64(v[1])))
}
