package d3

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// d3.Box is a 3d bounding box.
type Box r3.Box

// BoxOf returns the smallest box containing all points of the non-empty set.
func BoxOf(s Set) Box {
	return Box{Min: s.Min(), Max: s.Max()}
}

// Extend returns a box enclosing two 3d boxes.
func (a Box) Extend(b Box) Box {
	return Box{
		Min: MinElem(a.Min, b.Min),
		Max: MaxElem(a.Max, b.Max),
	}
}

// Size returns the size of a 3d box.
func (a Box) Size() r3.Vec {
	return r3.Sub(a.Max, a.Min)
}

// Center returns the center of a 3d box.
func (a Box) Center() r3.Vec {
	return r3.Add(a.Min, r3.Scale(0.5, a.Size()))
}
