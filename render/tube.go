package render

import (
	"errors"
	"io"
	"math"

	"github.com/soypat/curves"
	"github.com/soypat/curves/internal/d3"
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/r3"
)

// tube sweeps a circular cross section along a sampled curve.
type tube struct {
	rings [][]ms3.Vec
	// cursor of next quad to emit.
	seg, side int
}

// NewTubeRenderer returns a Renderer for a tube of given radius following c.
// The cross section is a regular polygon with sides vertices, oriented by
// frames parallel transported along the curve's tangent so the tube does
// not twist. The mesh has 2*sides*(N-1) triangles and open ends.
func NewTubeRenderer(c curves.Curve3, s Sampler, radius float64, sides int) (*tube, error) {
	if !(radius > 0) {
		return nil, errors.New("tube radius must be positive")
	}
	if sides < 3 {
		return nil, errors.New("tube needs at least 3 sides")
	}
	samples, err := s.Sample(c)
	if err != nil {
		return nil, err
	}
	frames, err := transportFrames(samples)
	if err != nil {
		return nil, err
	}
	sincos := make([][2]float64, sides)
	for j := range sincos {
		sincos[j][0], sincos[j][1] = math.Sincos(2 * math.Pi * float64(j) / float64(sides))
	}
	rings := make([][]ms3.Vec, len(samples))
	for i, f := range frames {
		ring := make([]ms3.Vec, sides)
		for j, sc := range sincos {
			dir := r3.Add(r3.Scale(sc[1], f.normal), r3.Scale(sc[0], f.binormal))
			ring[j] = toMS3(r3.Add(samples[i].Position, r3.Scale(radius, dir)))
		}
		rings[i] = ring
	}
	return &tube{rings: rings}, nil
}

// ReadTriangles implements Renderer.
func (tb *tube) ReadTriangles(dst []ms3.Triangle) (n int, err error) {
	if len(dst) < 2 {
		panic("need room for at least 2 triangles")
	}
	sides := len(tb.rings[0])
	for ; tb.seg < len(tb.rings)-1; tb.seg++ {
		r0, r1 := tb.rings[tb.seg], tb.rings[tb.seg+1]
		for ; tb.side < sides; tb.side++ {
			if n+2 > len(dst) {
				return n, nil
			}
			next := (tb.side + 1) % sides
			a, b := r0[tb.side], r0[next]
			c, d := r1[next], r1[tb.side]
			dst[n] = ms3.Triangle{a, b, c}
			dst[n+1] = ms3.Triangle{a, c, d}
			n += 2
		}
		tb.side = 0
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

type frame struct {
	normal, binormal r3.Vec
}

// transportFrames returns an orthonormal cross section frame per sample.
// Each normal is the previous one rotated by the rotation taking the
// previous tangent onto the current tangent.
func transportFrames(samples []Sample) ([]frame, error) {
	frames := make([]frame, len(samples))
	var prev r3.Vec
	var normal r3.Vec
	for i, s := range samples {
		tn := r3.Norm(s.Tangent)
		if tn == 0 || !d3.IsFinite(s.Tangent) {
			if i == 0 {
				return nil, errors.New("curve tangent vanishes at first sample")
			}
			frames[i] = frames[i-1]
			continue
		}
		tangent := r3.Scale(1/tn, s.Tangent)
		if i == 0 {
			normal = d3.Perpendicular(tangent)
		} else {
			axis := r3.Cross(prev, tangent)
			if an := r3.Norm(axis); an > 1e-12 {
				angle := math.Atan2(an, r3.Dot(prev, tangent))
				normal = curves.RotateVec(normal, r3.Scale(1/an, axis), angle)
			}
			// Remove drift accumulated by repeated rotation.
			normal = r3.Unit(r3.Sub(normal, r3.Scale(r3.Dot(normal, tangent), tangent)))
		}
		frames[i] = frame{normal: normal, binormal: r3.Cross(tangent, normal)}
		prev = tangent
	}
	return frames, nil
}

func toMS3(v r3.Vec) ms3.Vec {
	return ms3.Vec{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
