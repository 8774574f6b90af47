package form3

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/soypat/curves"
	"github.com/soypat/curves/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Unwrap returns the panic value if it was an error.
func (s *shapeErr) Unwrap() error {
	err, _ := s.panicObj.(error)
	return err
}

// Stack returns the stack trace recorded when the constructor panicked.
func (s *shapeErr) Stack() string { return s.stack }

func recoverShapeErr(err *error) {
	if a := recover(); a != nil {
		*err = &shapeErr{
			panicObj: a,
			stack:    string(debug.Stack()),
		}
	}
}

// IsInvalidParameter reports whether err stems from validating
// curve parameters.
func IsInvalidParameter(err error) bool {
	return errors.Is(err, curves.ErrInvalidParameter)
}

// Circle returns a circle of the given radius.
func Circle(radius float64) (s curves.Shape, err error) {
	defer recoverShapeErr(&err)
	return must3.Circle(radius), err
}

// Ellipse returns an ellipse with radii rx along X and ry along Y.
func Ellipse(rx, ry float64) (s curves.Shape, err error) {
	defer recoverShapeErr(&err)
	return must3.Ellipse(rx, ry), err
}

// Helix returns a helix of given radius rising step per revolution.
func Helix(radius, step float64) (s curves.Shape, err error) {
	defer recoverShapeErr(&err)
	return must3.Helix(radius, step), err
}

// Rotate returns c rotated by angle radians about axis.
func Rotate(c curves.Curve3, axis r3.Vec, angle float64) (s curves.Curve3, err error) {
	defer recoverShapeErr(&err)
	return curves.Rotate3D(c, axis, angle), err
}

// Translate returns c translated by offset.
func Translate(c curves.Curve3, offset r3.Vec) (s curves.Curve3, err error) {
	defer recoverShapeErr(&err)
	return curves.Translate3D(c, offset), err
}
