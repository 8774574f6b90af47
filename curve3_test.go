package curves_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/soypat/curves"
	"github.com/soypat/curves/form3/must3"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func testCurves() []curves.Curve3 {
	circle := must3.Circle(2)
	ellipse := must3.Ellipse(2, 3)
	helix := must3.Helix(2, 1)
	axis := r3.Vec{X: 1, Y: -2, Z: 0.5}
	return []curves.Curve3{
		circle,
		ellipse,
		helix,
		must3.Helix(0.7, -3),
		must3.Helix(1, 0),
		curves.Rotate3D(ellipse, axis, 0.9),
		curves.Translate3D(helix, r3.Vec{X: 1, Y: 2, Z: 3}),
		curves.Translate3D(curves.Rotate3D(circle, r3.Vec{Y: 1}, -2.1), r3.Vec{Z: -4}),
		curves.Rotate3D(curves.Translate3D(helix, r3.Vec{X: 5}), axis, math.Pi/3),
	}
}

func TestConcreteScenarios(t *testing.T) {
	diff(t, r3.Vec{X: 2}, must3.Circle(2).Position(0))
	diff(t, r3.Vec{Y: 2}, must3.Circle(2).Position(math.Pi/2), approx)
	diff(t, r3.Vec{X: 2, Z: 1}, must3.Helix(2, 1).Position(2*math.Pi), approx)
	diff(t, r3.Vec{Y: 3}, must3.Ellipse(2, 3).Tangent(0))
	diff(t, r3.Vec{X: -2, Z: 0.5}, must3.Helix(2, 1).Position(math.Pi), approx)
}

func TestPeriodicity(t *testing.T) {
	const period = 2 * math.Pi
	for _, c := range []curves.Curve3{must3.Circle(1.5), must3.Ellipse(0.5, 4)} {
		for _, tp := range []float64{-7, -1, 0, 0.3, 2, 11} {
			diff(t, c.Position(tp), c.Position(tp+period), approx)
			diff(t, c.Tangent(tp), c.Tangent(tp+period), approx)
		}
	}
	h := must3.Helix(2, 1.5)
	for _, tp := range []float64{-3, 0, 1, 9} {
		p0, p1 := h.Position(tp), h.Position(tp+period)
		diff(t, r3.Vec{X: p0.X, Y: p0.Y}, r3.Vec{X: p1.X, Y: p1.Y}, approx)
		diff(t, 1.5, p1.Z-p0.Z, approx)
		diff(t, 1.5*tp/period, p0.Z, approx)
		diff(t, h.Tangent(tp), h.Tangent(tp+period), approx)
	}
}

func TestTangentIsDerivative(t *testing.T) {
	const (
		h      = 1e-5
		derTol = 1e-4
	)
	for i, c := range testCurves() {
		t.Run(fmt.Sprintf("%d_%s", i, curves.Describe(c)), func(t *testing.T) {
			for tp := -4.0; tp < 8; tp += 0.37 {
				fd := r3.Scale(1/(2*h), r3.Sub(c.Position(tp+h), c.Position(tp-h)))
				if got := c.Tangent(tp); !curves.EqualWithin(got, fd, derTol) {
					t.Errorf("t=%g: tangent %v, finite difference %v", tp, got, fd)
				}
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	offset := r3.Vec{X: -1, Y: 0.25, Z: 7}
	for _, base := range testCurves() {
		tr := curves.Translate3D(base, offset)
		for tp := -3.0; tp < 3; tp += 0.5 {
			diff(t, r3.Add(base.Position(tp), offset), tr.Position(tp))
			// Exact equality: the tangent is delegated, not recomputed.
			if got, want := tr.Tangent(tp), base.Tangent(tp); got != want {
				t.Errorf("tangent changed by translation: got %v want %v", got, want)
			}
		}
	}
}

func TestRotateZeroAngleIsIdentity(t *testing.T) {
	axes := []r3.Vec{{X: 1}, {Y: 1}, {Z: 1}, {X: 3, Y: -1, Z: 2}, {X: 1e-3, Y: 1e-3}}
	for _, base := range testCurves() {
		for _, axis := range axes {
			rot := curves.Rotate3D(base, axis, 0)
			for tp := -3.0; tp < 3; tp += 0.7 {
				diff(t, base.Position(tp), rot.Position(tp), approx)
				diff(t, base.Tangent(tp), rot.Tangent(tp), approx)
			}
		}
	}
}

func TestRotateInverse(t *testing.T) {
	axis := r3.Vec{X: 2, Y: 1, Z: -1}
	for _, base := range testCurves() {
		for _, angle := range []float64{0.1, 1, math.Pi, -2.5, 10} {
			back := curves.Rotate3D(curves.Rotate3D(base, axis, angle), axis, -angle)
			for tp := -2.0; tp < 2; tp += 0.9 {
				diff(t, base.Position(tp), back.Position(tp), approx)
				diff(t, base.Tangent(tp), back.Tangent(tp), approx)
			}
		}
	}
}

func TestRotateVecMatchesQuaternion(t *testing.T) {
	vecs := []r3.Vec{{X: 1}, {X: 1, Y: 2, Z: 3}, {X: -0.5, Y: 0, Z: 4}}
	axes := []r3.Vec{{Z: 1}, {X: 1, Y: 1}, {X: -3, Y: 2, Z: 0.1}}
	for _, v := range vecs {
		for _, axis := range axes {
			k := r3.Unit(axis)
			for _, angle := range []float64{0, 0.3, math.Pi / 2, -1.7, 4} {
				want := quatRotate(v, k, angle)
				got := curves.RotateVec(v, k, angle)
				diff(t, want, got, approx)
				diff(t, r3.Norm(v), r3.Norm(got), approx)
			}
		}
	}
}

// quatRotate rotates v about the unit axis k by conjugation with the
// quaternion cos(θ/2) + k sin(θ/2).
func quatRotate(v, k r3.Vec, angle float64) r3.Vec {
	sin, cos := math.Sincos(angle / 2)
	q := quat.Number{Real: cos, Imag: k.X * sin, Jmag: k.Y * sin, Kmag: k.Z * sin}
	p := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))
	return r3.Vec{X: p.Imag, Y: p.Jmag, Z: p.Kmag}
}

func TestRotateQuarterTurn(t *testing.T) {
	c := curves.Rotate3D(must3.Circle(1), r3.Vec{X: 10}, math.Pi/2)
	// The XY circle becomes an XZ circle.
	diff(t, r3.Vec{X: 1}, c.Position(0), approx)
	diff(t, r3.Vec{Z: 1}, c.Position(math.Pi/2), approx)
	diff(t, r3.Vec{Z: 1}, c.Tangent(0), approx)
}

func TestRotateInvalidPanics(t *testing.T) {
	for _, test := range []struct {
		name  string
		axis  r3.Vec
		angle float64
	}{
		{"zero axis", r3.Vec{}, 1},
		{"NaN axis", r3.Vec{X: math.NaN()}, 1},
		{"Inf axis", r3.Vec{Y: math.Inf(1)}, 1},
		{"NaN angle", r3.Vec{Z: 1}, math.NaN()},
	} {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				a := recover()
				err, ok := a.(error)
				if !ok {
					t.Fatalf("expected error panic, got %v", a)
				}
				if !isInvalid(err) {
					t.Errorf("expected invalid parameter, got %v", err)
				}
			}()
			curves.Rotate3D(must3.Circle(1), test.axis, test.angle)
		})
	}
}

func TestBaseAndDescribe(t *testing.T) {
	circle := must3.Circle(3)
	rot := curves.Rotate3D(circle, r3.Vec{Z: 1}, 1)
	both := curves.Translate3D(rot, r3.Vec{X: 1})
	for _, test := range []struct {
		c     curves.Curve3
		kind  curves.Kind
		chain string
	}{
		{circle, curves.Circle, "Circle"},
		{rot, curves.Circle, "Rotate(Circle, 57.3° about (0, 0, 1))"},
		{both, curves.Circle, "Translate(Rotate(Circle, 57.3° about (0, 0, 1)), (1, 0, 0))"},
		{curves.Rotate3D(must3.Helix(1, 1), r3.Vec{X: 2}, math.Pi/6), curves.Helix, "Rotate(Helix, 30° about (1, 0, 0))"},
		{curves.Rotate3D(must3.Helix(1, 1), r3.Vec{X: 1, Y: 1}, -math.Pi), curves.Helix, "Rotate(Helix, -180° about (0.7071, 0.7071, 0))"},
		{curves.Translate3D(must3.Ellipse(1, 2), r3.Vec{X: 1, Y: -0.5, Z: 2.25}), curves.Ellipse, "Translate(Ellipse, (1, -0.5, 2.25))"},
	} {
		if curves.Base(test.c) != curves.Curve3(circle) && test.kind == curves.Circle {
			t.Errorf("%s: base not the wrapped circle", test.chain)
		}
		diff(t, test.kind, curves.KindOf(test.c))
		diff(t, test.chain, curves.Describe(test.c))
	}
	inner, ok := curves.Unwrap(both)
	if !ok || inner != rot {
		t.Error("Unwrap did not return the rotated circle")
	}
	if _, ok := curves.Unwrap(circle); ok {
		t.Error("Unwrap of base shape reported a transform")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []curves.Kind{curves.Circle, curves.Ellipse, curves.Helix} {
		got, err := curves.ParseKind(k.String())
		if err != nil {
			t.Fatal(err)
		}
		diff(t, k, got)
	}
	for _, bad := range []string{"", "circle", "Undefined", "Spiral"} {
		if _, err := curves.ParseKind(bad); !isInvalid(err) {
			t.Errorf("ParseKind(%q): expected invalid parameter, got %v", bad, err)
		}
	}
}
