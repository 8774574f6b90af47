package render

import (
	"io"

	"github.com/soypat/glgl/math/ms3"
)

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF, like the io.ReadAll implementation.
func RenderAll(r Renderer) ([]ms3.Triangle, error) {
	var err error
	var nt int
	result := make([]ms3.Triangle, 0, 1<<12)
	buf := make([]ms3.Triangle, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

// meshRenderer replays the triangles of an in-memory mesh.
type meshRenderer struct {
	model []ms3.Triangle
}

func (m *meshRenderer) ReadTriangles(dst []ms3.Triangle) (int, error) {
	if len(m.model) == 0 {
		return 0, io.EOF
	}
	n := copy(dst, m.model)
	m.model = m.model[n:]
	return n, nil
}
