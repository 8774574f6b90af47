package factory

import (
	"math"
	"math/rand"

	"github.com/soypat/curves"
	"github.com/soypat/curves/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Defaults returns the curves shown before the user creates any:
// a circle of radius 2, a 2x3 ellipse and a helix of radius 2 and step 1.
func Defaults() []curves.Curve3 {
	return []curves.Curve3{
		must3.Circle(2),
		must3.Ellipse(2, 3),
		must3.Helix(2, 1),
	}
}

// Random returns n curves of random kind and size drawn from rng.
//  Circle:  radius in [1, 3)
//  Ellipse: rx in [1, 3), ry in [0.5, 2)
//  Helix:   radius in [0.5, 2), step in [0.3, 1.3)
func Random(rng *rand.Rand, n int) []curves.Curve3 {
	result := make([]curves.Curve3, n)
	for i := range result {
		switch curves.Kind(1 + rng.Intn(3)) {
		case curves.Circle:
			result[i] = must3.Circle(1 + 2*rng.Float64())
		case curves.Ellipse:
			result[i] = must3.Ellipse(1+2*rng.Float64(), 0.5+1.5*rng.Float64())
		case curves.Helix:
			result[i] = must3.Helix(0.5+1.5*rng.Float64(), 0.3+rng.Float64())
		}
	}
	return result
}

// EllipseCross returns an ellipse and a copy of it rotated 90 degrees
// about the X axis.
func EllipseCross(rx, ry float64) []curves.Curve3 {
	e := must3.Ellipse(rx, ry)
	return []curves.Curve3{
		e,
		curves.Rotate3D(e, r3.Vec{X: 1}, math.Pi/2),
	}
}

// EllipseSphere returns segments circles of the given radius rotated about
// the X axis by πi/segments for i in [0, segments), outlining a sphere.
func EllipseSphere(radius float64, segments int) []curves.Curve3 {
	if segments <= 0 {
		panic(curves.Errorf("sphere segments %d <= 0", segments))
	}
	e := must3.Ellipse(radius, radius)
	sphere := make([]curves.Curve3, segments)
	for i := range sphere {
		angle := math.Pi * float64(i) / float64(segments)
		if angle == 0 {
			sphere[i] = e
			continue
		}
		sphere[i] = curves.Rotate3D(e, r3.Vec{X: 1}, angle)
	}
	return sphere
}
