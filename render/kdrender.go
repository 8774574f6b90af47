package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	_ kdtree.Interface  = kdSamples{}
	_ kdtree.Comparable = kdSample{}
)

// Nearest indexes curve samples by position for closest point queries.
type Nearest struct {
	tree kdtree.Tree
}

// NewNearest builds an index over samples. samples is not modified.
func NewNearest(samples []Sample) *Nearest {
	if len(samples) == 0 {
		panic("no samples to index")
	}
	kd := make(kdSamples, len(samples))
	for i := range kd {
		kd[i] = kdSample(samples[i])
	}
	return &Nearest{tree: *kdtree.New(kd, false)}
}

// Nearest returns the sample closest to p and its euclidean distance to p.
func (n *Nearest) Nearest(p r3.Vec) (Sample, float64) {
	got, d2 := n.tree.Nearest(kdSample{Position: p})
	return Sample(got.(kdSample)), math.Sqrt(d2)
}

type kdSamples []kdSample

type kdSample Sample

func (k kdSamples) Index(i int) kdtree.Comparable {
	return k[i]
}

// Len returns the length of the list.
func (k kdSamples) Len() int { return len(k) }

// Pivot partitions the list based on the dimension specified.
func (k kdSamples) Pivot(d kdtree.Dim) int {
	p := kdPlane{dim: int(d), samples: k}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half
// open indexing equivalent to built-in slice indexing.
func (k kdSamples) Slice(start, end int) kdtree.Interface {
	return k[start:end]
}

// Compare returns the signed distance of a from the plane passing through
// b and perpendicular to the dimension d.
//
// Given c = a.Compare(b, d):
//  c = a_d - b_d
func (a kdSample) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	return kdComp(a, b.(kdSample), int(d))
}

// Dims returns the number of dimensions described in the Comparable.
func (a kdSample) Dims() int {
	return 3
}

// Distance returns the squared Euclidean distance between the receiver and
// the parameter.
func (a kdSample) Distance(b kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(a.Position, b.(kdSample).Position))
}

// c = a.dim - b.dim
func kdComp(a, b kdSample, dim int) (c float64) {
	switch dim {
	case 0:
		c = a.Position.X - b.Position.X
	case 1:
		c = a.Position.Y - b.Position.Y
	case 2:
		c = a.Position.Z - b.Position.Z
	}
	return c
}

type kdPlane struct {
	dim     int
	samples kdSamples
}

func (p kdPlane) Less(i, j int) bool {
	return kdComp(p.samples[i], p.samples[j], p.dim) < 0
}
func (p kdPlane) Swap(i, j int) {
	p.samples[i], p.samples[j] = p.samples[j], p.samples[i]
}
func (p kdPlane) Len() int {
	return len(p.samples)
}
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.samples = p.samples[start:end]
	return p
}
