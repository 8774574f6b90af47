package curves

import (
	"fmt"
	"math"

	"github.com/soypat/curves/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transformed curves. The set of transforms is closed: a curve is either a
// Shape or one of the decorators below wrapping another curve.

// rotation3 rotates a curve about an axis through the origin.
type rotation3 struct {
	curve Curve3
	axis  r3.Vec // unit length
	angle float64
	sin   float64
	cos   float64
}

// Rotate3D returns the curve c rotated by angle radians about axis.
// The axis is normalized, its magnitude does not matter. A zero length
// or non-finite axis panics.
func Rotate3D(c Curve3, axis r3.Vec, angle float64) Curve3 {
	if c == nil {
		panic(Errorf("nil Curve3 argument"))
	}
	unit, ok := unitAxis(axis)
	if !ok {
		panic(Errorf("rotation axis %v has no direction", axis))
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		panic(Errorf("rotation angle %v not finite", angle))
	}
	s := rotation3{
		curve: c,
		axis:  unit,
		angle: angle,
	}
	s.sin, s.cos = math.Sincos(angle)
	return &s
}

// unitAxis normalizes axis. Components are first divided by the largest
// magnitude so subnormal and very large axes neither underflow nor overflow.
func unitAxis(axis r3.Vec) (r3.Vec, bool) {
	if !d3.IsFinite(axis) {
		return r3.Vec{}, false
	}
	m := d3.Max(d3.AbsElem(axis))
	if m == 0 {
		return r3.Vec{}, false
	}
	scaled := r3.Vec{X: axis.X / m, Y: axis.Y / m, Z: axis.Z / m}
	norm := r3.Norm(scaled) // in [1, sqrt(3)]
	return r3.Vec{X: scaled.X / norm, Y: scaled.Y / norm, Z: scaled.Z / norm}, true
}

// Position returns the rotated position of the wrapped curve.
func (s *rotation3) Position(t float64) r3.Vec {
	return rodrigues(s.curve.Position(t), s.axis, s.sin, s.cos)
}

// Tangent returns the rotated tangent of the wrapped curve.
func (s *rotation3) Tangent(t float64) r3.Vec {
	return rodrigues(s.curve.Tangent(t), s.axis, s.sin, s.cos)
}

// Axis returns the unit rotation axis.
func (s *rotation3) Axis() r3.Vec { return s.axis }

// Angle returns the rotation angle in radians.
func (s *rotation3) Angle() float64 { return s.angle }

// RotateVec rotates v by angle radians about the unit vector k
// using Rodrigues' rotation formula.
func RotateVec(v, k r3.Vec, angle float64) r3.Vec {
	sin, cos := math.Sincos(angle)
	return rodrigues(v, k, sin, cos)
}

//  v cosθ + (k × v) sinθ + k (k · v)(1 - cosθ)
func rodrigues(v, k r3.Vec, sin, cos float64) r3.Vec {
	kxv := r3.Cross(k, v)
	kdv := r3.Dot(k, v) * (1 - cos)
	return r3.Vec{
		X: v.X*cos + kxv.X*sin + k.X*kdv,
		Y: v.Y*cos + kxv.Y*sin + k.Y*kdv,
		Z: v.Z*cos + kxv.Z*sin + k.Z*kdv,
	}
}

// translation3 offsets a curve.
type translation3 struct {
	curve  Curve3
	offset r3.Vec
}

// Translate3D returns the curve c translated by offset.
func Translate3D(c Curve3, offset r3.Vec) Curve3 {
	if c == nil {
		panic(Errorf("nil Curve3 argument"))
	}
	if !d3.IsFinite(offset) {
		panic(Errorf("offset %v not finite", offset))
	}
	return &translation3{curve: c, offset: offset}
}

// Position returns the position of the wrapped curve plus the offset.
func (s *translation3) Position(t float64) r3.Vec {
	return r3.Add(s.curve.Position(t), s.offset)
}

// Tangent returns the tangent of the wrapped curve. Translation does not
// change derivatives.
func (s *translation3) Tangent(t float64) r3.Vec {
	return s.curve.Tangent(t)
}

// Offset returns the translation vector.
func (s *translation3) Offset() r3.Vec { return s.offset }

// Unwrap returns the curve wrapped by a transform and true. If c is not a
// transform Unwrap returns c and false.
func Unwrap(c Curve3) (Curve3, bool) {
	switch s := c.(type) {
	case *rotation3:
		return s.curve, true
	case *translation3:
		return s.curve, true
	}
	return c, false
}

// Base returns the innermost curve of a chain of transforms.
func Base(c Curve3) Curve3 {
	for {
		inner, ok := Unwrap(c)
		if !ok {
			return c
		}
		c = inner
	}
}

// KindOf returns the kind of the base shape of c, or KindUndefined
// if the base curve does not implement Shape.
func KindOf(c Curve3) Kind {
	if s, ok := Base(c).(Shape); ok {
		return s.Kind()
	}
	return KindUndefined
}

// Describe returns the transform chain of c, outermost first, with the
// rotation angle in degrees and the offset of each transform,
// i.e. "Translate(Rotate(Circle, 30° about (1, 0, 0)), (0, 0, 2))".
func Describe(c Curve3) string {
	switch s := c.(type) {
	case *rotation3:
		return fmt.Sprintf("Rotate(%s, %.4g° about %s)", Describe(s.curve), RtoD(s.angle)+0, formatVec(s.axis))
	case *translation3:
		return fmt.Sprintf("Translate(%s, %s)", Describe(s.curve), formatVec(s.offset))
	}
	return KindOf(c).String()
}

func formatVec(v r3.Vec) string {
	// Adding zero prints -0 as 0.
	return fmt.Sprintf("(%.4g, %.4g, %.4g)", v.X+0, v.Y+0, v.Z+0)
}
