package factory

import (
	"math"
	"strconv"
	"strings"

	"github.com/soypat/curves"
	"github.com/soypat/curves/form3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Parms are the string encoded parameters of a curve as typed into a form.
// Empty optional fields read as zero. Radius is always required, RadiusY
// only for an Ellipse and Step only for a Helix.
type Parms struct {
	// Type is one of "Circle", "Ellipse" or "Helix".
	Type string
	// Radius is the circle and helix radius, or the X radius of an ellipse.
	Radius  string
	RadiusY string
	Step    string
	// Offset of the curve in world space, applied after rotation.
	OffsetX, OffsetY, OffsetZ string
	// RotationAxis is "X", "Y", "Z" or an explicit "x,y,z" vector.
	// Only read when AngleDegrees is non-zero.
	RotationAxis string
	AngleDegrees string
}

// Build returns the curve described by p. The base shape is rotated first
// (if the angle is non-zero) and then translated (if any offset component is
// non-zero), so the offset is in world space, not in the frame of the rotated curve.
func Build(p Parms) (curves.Curve3, error) {
	kind, err := curves.ParseKind(strings.TrimSpace(p.Type))
	if err != nil {
		return nil, err
	}
	radius, err := parseFloat("radius", p.Radius, true)
	if err != nil {
		return nil, err
	}
	var c curves.Curve3
	switch kind {
	case curves.Circle:
		c, err = form3.Circle(radius)
	case curves.Ellipse:
		var ry float64
		ry, err = parseFloat("radiusY", p.RadiusY, true)
		if err != nil {
			return nil, err
		}
		c, err = form3.Ellipse(radius, ry)
	case curves.Helix:
		var step float64
		step, err = parseFloat("step", p.Step, false)
		if err != nil {
			return nil, err
		}
		c, err = form3.Helix(radius, step)
	}
	if err != nil {
		return nil, err
	}

	angle, err := parseFloat("angleDegrees", p.AngleDegrees, false)
	if err != nil {
		return nil, err
	}
	var offset r3.Vec
	for _, f := range []struct {
		name string
		s    string
		dst  *float64
	}{
		{"offsetX", p.OffsetX, &offset.X},
		{"offsetY", p.OffsetY, &offset.Y},
		{"offsetZ", p.OffsetZ, &offset.Z},
	} {
		*f.dst, err = parseFloat(f.name, f.s, false)
		if err != nil {
			return nil, err
		}
	}

	if angle != 0 {
		axis, err := ParseAxis(p.RotationAxis)
		if err != nil {
			return nil, err
		}
		c, err = form3.Rotate(c, axis, curves.DtoR(angle))
		if err != nil {
			return nil, err
		}
	}
	if offset != (r3.Vec{}) {
		c, err = form3.Translate(c, offset)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ParseAxis parses a rotation axis. Accepted are the tags "X", "Y" and "Z"
// or three comma separated components such as "1,1,0". The returned axis is
// not normalized but is guaranteed to have a non-zero length.
func ParseAxis(s string) (r3.Vec, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "X":
		return r3.Vec{X: 1}, nil
	case "Y":
		return r3.Vec{Y: 1}, nil
	case "Z":
		return r3.Vec{Z: 1}, nil
	}
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return r3.Vec{}, curves.Errorf("unknown axis type %q", s)
	}
	var v [3]float64
	for i, f := range fields {
		var err error
		v[i], err = parseFloat("rotationAxis", f, true)
		if err != nil {
			return r3.Vec{}, err
		}
	}
	axis := r3.Vec{X: v[0], Y: v[1], Z: v[2]}
	if axis == (r3.Vec{}) {
		return r3.Vec{}, curves.Errorf("rotation axis %q has zero length", s)
	}
	return axis, nil
}

// parseFloat parses a finite float. Empty strings parse as zero
// unless required is set.
func parseFloat(name, s string, required bool) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		if required {
			return 0, curves.Errorf("missing %s", name)
		}
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, curves.Errorf("malformed %s %q", name, s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, curves.Errorf("%s %q not finite", name, s)
	}
	return f, nil
}
