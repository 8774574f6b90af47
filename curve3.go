package curves

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Parametric 3D curve interfaces.

// Curve3 is the interface to a parametric 3d curve.
type Curve3 interface {
	// Position returns the point on the curve at parameter t.
	// t ranges over all reals.
	Position(t float64) r3.Vec
	// Tangent returns the derivative of Position with respect to t.
	Tangent(t float64) r3.Vec
}

// Shape is a base (untransformed) curve that reports its kind.
type Shape interface {
	Curve3
	Kind() Kind
}

// ErrInvalidParameter is wrapped by every error produced when validating
// curve parameters.
var ErrInvalidParameter = errors.New("invalid parameter")

// Kind identifies the base shape of a curve.
type Kind uint8

const (
	KindUndefined Kind = iota
	Circle
	Ellipse
	Helix
)

var kindNames = [...]string{
	KindUndefined: "Undefined",
	Circle:        "Circle",
	Ellipse:       "Ellipse",
	Helix:         "Helix",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "Kind(" + fmt.Sprint(uint8(k)) + ")"
	}
	return kindNames[k]
}

// ParseKind returns the Kind named s. Names are case sensitive
// and match the output of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k := Circle; int(k) < len(kindNames); k++ {
		if kindNames[k] == s {
			return k, nil
		}
	}
	return KindUndefined, Errorf("unknown curve type %q", s)
}

// Errorf returns an error wrapping ErrInvalidParameter with a formatted message.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
