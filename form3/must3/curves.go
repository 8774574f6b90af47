package must3

import (
	"math"

	"github.com/soypat/curves"
	"gonum.org/v1/gonum/spatial/r3"
)

const tau = 2 * math.Pi

// Circle

// circle is a circle of given radius centered at the origin in the XY plane.
type circle struct {
	radius float64
}

// Circle returns a Shape for a circle.
//  Position(t) = (r cos t, r sin t, 0)
func Circle(radius float64) *circle {
	if !(radius > 0) || math.IsInf(radius, 1) {
		panic(curves.Errorf("circle radius %v <= 0", radius))
	}
	return &circle{radius: radius}
}

// Position returns the point of the circle at angle t.
func (s *circle) Position(t float64) r3.Vec {
	sin, cos := math.Sincos(t)
	return r3.Vec{X: s.radius * cos, Y: s.radius * sin}
}

// Tangent returns the derivative of Position at t.
func (s *circle) Tangent(t float64) r3.Vec {
	sin, cos := math.Sincos(t)
	return r3.Vec{X: -s.radius * sin, Y: s.radius * cos}
}

// Kind returns curves.Circle.
func (s *circle) Kind() curves.Kind { return curves.Circle }

// Radius returns the radius of the circle.
func (s *circle) Radius() float64 { return s.radius }

// Ellipse

// ellipse is an axis aligned ellipse centered at the origin in the XY plane.
type ellipse struct {
	radii r3.Vec // Z unused.
}

// Ellipse returns a Shape for an ellipse with radius rx along X and ry along Y.
//  Position(t) = (rx cos t, ry sin t, 0)
func Ellipse(rx, ry float64) *ellipse {
	if !(rx > 0) || !(ry > 0) || math.IsInf(rx, 1) || math.IsInf(ry, 1) {
		panic(curves.Errorf("ellipse radii (%v, %v) must be positive", rx, ry))
	}
	return &ellipse{radii: r3.Vec{X: rx, Y: ry}}
}

// Position returns the point of the ellipse at angle t.
func (s *ellipse) Position(t float64) r3.Vec {
	sin, cos := math.Sincos(t)
	return r3.Vec{X: s.radii.X * cos, Y: s.radii.Y * sin}
}

// Tangent returns the derivative of Position at t.
func (s *ellipse) Tangent(t float64) r3.Vec {
	sin, cos := math.Sincos(t)
	return r3.Vec{X: -s.radii.X * sin, Y: s.radii.Y * cos}
}

// Kind returns curves.Ellipse.
func (s *ellipse) Kind() curves.Kind { return curves.Ellipse }

// Radii returns the X and Y radii of the ellipse.
func (s *ellipse) Radii() (rx, ry float64) { return s.radii.X, s.radii.Y }

// Helix

// helix is a circular helix around the Z axis.
type helix struct {
	radius float64
	step   float64 // rise per revolution
}

// Helix returns a Shape for a helix of given radius rising step
// along Z every full turn. step may be negative (left handed) or zero.
//  Position(t) = (r cos t, r sin t, step t/2π)
func Helix(radius, step float64) *helix {
	if !(radius > 0) || math.IsInf(radius, 1) {
		panic(curves.Errorf("helix radius %v <= 0", radius))
	}
	if math.IsNaN(step) || math.IsInf(step, 0) {
		panic(curves.Errorf("helix step %v not finite", step))
	}
	return &helix{radius: radius, step: step}
}

// Position returns the point of the helix at angle t.
func (s *helix) Position(t float64) r3.Vec {
	sin, cos := math.Sincos(t)
	return r3.Vec{X: s.radius * cos, Y: s.radius * sin, Z: s.step * t / tau}
}

// Tangent returns the derivative of Position at t.
func (s *helix) Tangent(t float64) r3.Vec {
	sin, cos := math.Sincos(t)
	return r3.Vec{X: -s.radius * sin, Y: s.radius * cos, Z: s.step / tau}
}

// Kind returns curves.Helix.
func (s *helix) Kind() curves.Kind { return curves.Helix }

// Radius returns the radius of the helix.
func (s *helix) Radius() float64 { return s.radius }

// Step returns the rise of the helix per revolution.
func (s *helix) Step() float64 { return s.step }
