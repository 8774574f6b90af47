package curves

import (
	"math"

	"github.com/soypat/curves/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	pi  = math.Pi
	tau = 2 * pi
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// EqualWithin reports whether every component of a and b differs by at most tol.
func EqualWithin(a, b r3.Vec, tol float64) bool {
	return d3.EqualWithin(a, b, tol)
}

// ZeroSmall zeroes out values that are small relative to a quantity.
func ZeroSmall(x, y, epsilon float64) float64 {
	if math.Abs(x)/y < epsilon {
		return 0
	}
	return x
}

// ZeroSmallVec applies ZeroSmall to each component of v relative to its norm.
// Useful for printing rotated vectors where cancellation leaves
// values like 1e-16 in place of zero.
func ZeroSmallVec(v r3.Vec, epsilon float64) r3.Vec {
	n := r3.Norm(v)
	if n == 0 {
		return v
	}
	return r3.Vec{
		X: ZeroSmall(v.X, n, epsilon),
		Y: ZeroSmall(v.Y, n, epsilon),
		Z: ZeroSmall(v.Z, n, epsilon),
	}
}
