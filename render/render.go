package render

import (
	"github.com/soypat/glgl/math/ms3"
)

// Renderer streams the triangles of a mesh.
type Renderer interface {
	// ReadTriangles writes up to len(t) triangles into t and returns
	// how many were written. It returns io.EOF once the mesh is exhausted.
	ReadTriangles(t []ms3.Triangle) (int, error)
}
