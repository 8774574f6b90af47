package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// R3 vector manipulation routines.
// This should be a temporary package as the calling
// conventions get wiser with time.

func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// IsFinite returns false if any component is NaN or infinite.
func IsFinite(a r3.Vec) bool {
	return !math.IsNaN(a.X) && !math.IsInf(a.X, 0) &&
		!math.IsNaN(a.Y) && !math.IsInf(a.Y, 0) &&
		!math.IsNaN(a.Z) && !math.IsInf(a.Z, 0)
}

// AbsElem returns the vector with components set to their absolute value.
func AbsElem(a r3.Vec) r3.Vec {
	return r3.Vec{X: math.Abs(a.X), Y: math.Abs(a.Y), Z: math.Abs(a.Z)}
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

func Max(a r3.Vec) float64 {
	return math.Max(a.Z, math.Max(a.X, a.Y))
}

// Perpendicular returns a unit vector perpendicular to the non-zero vector a.
func Perpendicular(a r3.Vec) r3.Vec {
	// cross with the axis least aligned with a.
	abs := AbsElem(a)
	var axis r3.Vec
	switch {
	case abs.X <= abs.Y && abs.X <= abs.Z:
		axis.X = 1
	case abs.Y <= abs.Z:
		axis.Y = 1
	default:
		axis.Z = 1
	}
	return r3.Unit(r3.Cross(a, axis))
}

type Set []r3.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r3.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r3.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}
