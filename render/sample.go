package render

import (
	"errors"
	"math"
	"sync"

	"github.com/soypat/curves"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sample is a curve evaluated at parameter T.
type Sample struct {
	T        float64
	Position r3.Vec
	Tangent  r3.Vec
}

// Sampler evaluates curves on N uniformly spaced parameters from T0 to T1,
// both included.
type Sampler struct {
	T0, T1 float64
	N      int
	// Concurrent is the amount of goroutines used to evaluate a curve.
	// Values <= 1 evaluate on the calling goroutine.
	Concurrent int
}

// DefaultSampler covers two turns of a curve at roughly 0.1 radian steps.
var DefaultSampler = Sampler{T0: 0, T1: 4 * math.Pi, N: 126}

// Validate returns an error if the sampler cannot be used.
func (s Sampler) Validate() error {
	switch {
	case s.N < 2:
		return errors.New("sampler needs at least 2 samples")
	case math.IsNaN(s.T0) || math.IsNaN(s.T1) || math.IsInf(s.T0, 0) || math.IsInf(s.T1, 0):
		return errors.New("sampler bounds not finite")
	case s.T0 == s.T1:
		return errors.New("sampler bounds are equal")
	}
	return nil
}

// Param returns the ith parameter of the sampler.
func (s Sampler) Param(i int) float64 {
	if i == s.N-1 {
		return s.T1
	}
	return s.T0 + (s.T1-s.T0)*float64(i)/float64(s.N-1)
}

// Sample evaluates c at every parameter of s.
func (s Sampler) Sample(c curves.Curve3) ([]Sample, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	dst := make([]Sample, s.N)
	workers := s.Concurrent
	if workers > s.N {
		workers = s.N
	}
	if workers <= 1 {
		s.sampleRange(c, dst, 0)
		return dst, nil
	}
	// Curves are immutable so evaluation needs no locking.
	var wg sync.WaitGroup
	chunk := (s.N + workers - 1) / workers
	for start := 0; start < s.N; start += chunk {
		end := start + chunk
		if end > s.N {
			end = s.N
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			s.sampleRange(c, dst[start:end], start)
		}(start, end)
	}
	wg.Wait()
	return dst, nil
}

func (s Sampler) sampleRange(c curves.Curve3, dst []Sample, offset int) {
	for i := range dst {
		t := s.Param(offset + i)
		dst[i] = Sample{T: t, Position: c.Position(t), Tangent: c.Tangent(t)}
	}
}

// Positions returns the positions of the samples.
func Positions(samples []Sample) []r3.Vec {
	pos := make([]r3.Vec, len(samples))
	for i := range samples {
		pos[i] = samples[i].Position
	}
	return pos
}
