package math

import "math"

// DefaultEpsilon is the tolerance used by the EqualNear helpers.
const DefaultEpsilon = 1e-6

// EqualNear reports whether a and b are equal within eps, either absolutely
// or relative to the larger magnitude.
func EqualNear(a, b, eps float64) bool {
	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}
	return diff <= math.Max(math.Abs(a), math.Abs(b))*eps
}

// EqualNear reports whether every component of v and other is within eps.
func (v Vec2) EqualNear(other Vec2, eps float64) bool {
	return EqualNear(v.X, other.X, eps) && EqualNear(v.Y, other.Y, eps)
}

// EqualNear reports whether every component of v and other is within eps.
func (v Vec3) EqualNear(other Vec3, eps float64) bool {
	return EqualNear(v.X, other.X, eps) &&
		EqualNear(v.Y, other.Y, eps) &&
		EqualNear(v.Z, other.Z, eps)
}
