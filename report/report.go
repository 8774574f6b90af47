// Package report tabulates curve evaluations: positions and tangents of a set
// of curves at a common parameter, plus a summary of the circles among them.
package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/soypat/curves"
	"gonum.org/v1/gonum/spatial/r3"
)

// Row is a curve evaluated at T.
type Row struct {
	Kind     curves.Kind
	Chain    string
	T        float64
	Position r3.Vec
	Tangent  r3.Vec
}

// Evaluate returns one row per curve evaluated at t.
func Evaluate(cs []curves.Curve3, t float64) []Row {
	rows := make([]Row, len(cs))
	for i, c := range cs {
		rows[i] = Row{
			Kind:     curves.KindOf(c),
			Chain:    curves.Describe(c),
			T:        t,
			Position: c.Position(t),
			Tangent:  c.Tangent(t),
		}
	}
	return rows
}

// Filter returns the curves of cs whose base shape is of the given kind,
// in input order. KindUndefined selects all curves.
func Filter(cs []curves.Curve3, kind curves.Kind) []curves.Curve3 {
	if kind == curves.KindUndefined {
		return cs
	}
	var filtered []curves.Curve3
	for _, c := range cs {
		if curves.KindOf(c) == kind {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// radiuser is implemented by circles and helices.
type radiuser interface {
	Radius() float64
}

// CircleInfo describes a circle found in a set of curves.
type CircleInfo struct {
	// Index of the curve in the input set.
	Index  int
	Radius float64
	// Transformed is true if the circle is wrapped in a rotation or translation.
	Transformed bool
}

// Circles returns the circles among cs sorted by increasing radius.
// Transformed circles are included; their radius is that of the base shape.
func Circles(cs []curves.Curve3) []CircleInfo {
	var circles []CircleInfo
	for i, c := range cs {
		base := curves.Base(c)
		if curves.KindOf(base) != curves.Circle {
			continue
		}
		r, ok := base.(radiuser)
		if !ok {
			continue
		}
		circles = append(circles, CircleInfo{Index: i, Radius: r.Radius(), Transformed: base != c})
	}
	sort.SliceStable(circles, func(i, j int) bool {
		return circles[i].Radius < circles[j].Radius
	})
	return circles
}

// SumRadii returns the sum of the circle radii.
func SumRadii(circles []CircleInfo) (sum float64) {
	for _, c := range circles {
		sum += c.Radius
	}
	return sum
}

// Write writes rows and the circle summary to w as aligned text.
func Write(w io.Writer, rows []Row, circles []CircleInfo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tType\tTransform\tt\tPoint\tDerivative")
	for i, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.4g\t%s\t%s\n", i, r.Kind, r.Chain, r.T, formatVec(r.Position), formatVec(r.Tangent))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\nSorted circles by radius:"); err != nil {
		return err
	}
	for _, c := range circles {
		if _, err := fmt.Fprintf(w, "Circle #%d radius: %.2f\n", c.Index, c.Radius); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nTotal sum of radii: %.2f\n", SumRadii(circles))
	return err
}

func formatVec(v r3.Vec) string {
	v = curves.ZeroSmallVec(v, 1e-12)
	// Adding zero prints -0 as 0.
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X+0, v.Y+0, v.Z+0)
}
