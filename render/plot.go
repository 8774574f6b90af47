package render

import (
	"fmt"
	"io"

	"github.com/soypat/curves"
	"github.com/soypat/curves/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plane selects the two coordinates kept by an orthographic projection.
type Plane uint8

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneXZ:
		return "XZ"
	case PlaneYZ:
		return "YZ"
	}
	return fmt.Sprintf("Plane(%d)", uint8(p))
}

// ParsePlane parses "XY", "XZ" or "YZ".
func ParsePlane(s string) (Plane, error) {
	for p := PlaneXY; p <= PlaneYZ; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown projection plane %q", s)
}

// Project returns the coordinates of v kept by the plane.
func (p Plane) Project(v r3.Vec) (x, y float64) {
	switch p {
	case PlaneXZ:
		return v.X, v.Z
	case PlaneYZ:
		return v.Y, v.Z
	}
	return v.X, v.Y
}

func (p Plane) axes() (x, y string) {
	s := p.String()
	return s[:1], s[1:]
}

// PlotProjection samples each curve with s and writes a line plot of their
// projection onto plane to w. format is any format supported by
// gonum.org/v1/plot such as "png", "svg" or "pdf". Both axes share the
// same scale.
func PlotProjection(w io.Writer, format string, plane Plane, s Sampler, cs ...curves.Curve3) error {
	if len(cs) == 0 {
		return fmt.Errorf("no curves to plot")
	}
	p := plot.New()
	p.Title.Text = "Projection on " + plane.String()
	p.X.Label.Text, p.Y.Label.Text = plane.axes()
	p.Add(plotter.NewGrid())
	var bounds d3.Box
	for i, c := range cs {
		samples, err := s.Sample(c)
		if err != nil {
			return err
		}
		box := d3.BoxOf(Positions(samples))
		if i == 0 {
			bounds = box
		} else {
			bounds = bounds.Extend(box)
		}
		xys := make(plotter.XYs, len(samples))
		for j := range samples {
			xys[j].X, xys[j].Y = plane.Project(samples[j].Position)
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("curve %d: %w", i, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%d %s", i, curves.Describe(c)), line)
	}
	half := 0.55 * d3.Max(bounds.Size())
	if half == 0 {
		half = 1
	}
	cx, cy := plane.Project(bounds.Center())
	p.X.Min, p.X.Max = cx-half, cx+half
	p.Y.Min, p.Y.Max = cy-half, cy+half
	wt, err := p.WriterTo(6*vg.Inch, 6*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
