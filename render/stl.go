package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// Binary STL layout: 80 byte free-form header, uint32 triangle count, then
// per triangle a normal and three vertices as little endian float32
// followed by a uint16 attribute count.
const (
	stlHeaderSize   = 84
	stlCountOffset  = 80
	stlTriangleSize = 50
	stlMaxTriangles = math.MaxUint32
)

var errCalculatedNormalMismatch = errors.New("mismatch normal")

// CreateSTL streams the triangles of r into a binary STL file at path.
// Triangles are written as r produces them and the count in the header
// is filled in once r is exhausted.
func CreateSTL(path string, r Renderer) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	var header [stlHeaderSize]byte
	if _, err = fp.Write(header[:]); err != nil {
		return err
	}
	bw := bufio.NewWriter(fp)
	nt, err := writeTriangles(bw, r)
	if err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(header[stlCountOffset:], uint32(nt))
	if _, err = fp.WriteAt(header[stlCountOffset:], stlCountOffset); err != nil {
		return err
	}
	return fp.Close()
}

// WriteBinarySTL writes model triangles to w in binary STL format and
// returns the amount of bytes written.
func WriteBinarySTL(w io.Writer, model []ms3.Triangle) (int, error) {
	if len(model) == 0 {
		return 0, errors.New("empty triangle slice")
	}
	if int64(len(model)) > stlMaxTriangles {
		return 0, errors.New("amount of triangles in model exceeds STL design limits")
	}
	var header [stlHeaderSize]byte
	binary.LittleEndian.PutUint32(header[stlCountOffset:], uint32(len(model)))
	n, err := w.Write(header[:])
	if err != nil {
		return n, err
	}
	nt, err := writeTriangles(w, &meshRenderer{model: model})
	return n + nt*stlTriangleSize, err
}

// writeTriangles drains r into w. It fails if r yields no triangles or
// more than fit in an STL file.
func writeTriangles(w io.Writer, r Renderer) (nt int, err error) {
	buf := make([]ms3.Triangle, 1024)
	var record [stlTriangleSize]byte
	for {
		n, rerr := r.ReadTriangles(buf)
		for _, t := range buf[:n] {
			if int64(nt) == stlMaxTriangles {
				return nt, errors.New("amount of triangles in model exceeds STL design limits")
			}
			putTriangle(record[:], t)
			if _, err = w.Write(record[:]); err != nil {
				return nt, err
			}
			nt++
		}
		if rerr == io.EOF {
			break
		} else if rerr != nil {
			return nt, rerr
		}
	}
	if nt == 0 {
		return 0, errors.New("empty triangle slice")
	}
	return nt, nil
}

// ReadBinarySTL reads the triangles of a binary STL file. A stored normal
// may point either way from the winding of its vertices. Triangles whose
// stored normal is not parallel to their winding normal are still returned,
// along with an error.
func ReadBinarySTL(r io.Reader) ([]ms3.Triangle, error) {
	var header [stlHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("reading STL header: %w", err)
	}
	count := binary.LittleEndian.Uint32(header[stlCountOffset:])
	if count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	var output []ms3.Triangle
	if count < 1<<16 {
		output = make([]ms3.Triangle, 0, count)
	}
	var (
		record   [stlTriangleSize]byte
		mismatch error
	)
	for i := 0; i < int(count); i++ {
		if _, err := io.ReadFull(r, record[:]); err != nil {
			return nil, fmt.Errorf("%d/%d STL triangles read: %w", i, count, err)
		}
		normal, t := getTriangle(record[:])
		switch err := checkTriangle(normal, t); {
		case errors.Is(err, errCalculatedNormalMismatch):
			mismatch = fmt.Errorf("STL triangle %d: %w", i, err)
		case err != nil:
			return nil, fmt.Errorf("STL triangle %d: %w", i, err)
		}
		output = append(output, t)
	}
	return output, mismatch
}

func checkTriangle(normal ms3.Vec, t ms3.Triangle) error {
	const (
		degenerateTol = 1e-12
		normalTol     = 5e-2
	)
	if !finite32(normal) {
		return errors.New("inf/NaN normal")
	}
	if !finite32(t[0]) || !finite32(t[1]) || !finite32(t[2]) {
		return errors.New("inf/NaN vertex")
	}
	if t.IsDegenerate(degenerateTol) {
		return errors.New("triangle is degenerate")
	}
	calc := ms3.Unit(t.Normal())
	if !ms3.EqualElem(calc, normal, normalTol) && !ms3.EqualElem(ms3.Scale(-1, calc), normal, normalTol) {
		return errCalculatedNormalMismatch
	}
	return nil
}

// putTriangle encodes t and its unit normal into a 50 byte STL record.
func putTriangle(b []byte, t ms3.Triangle) {
	_ = b[stlTriangleSize-1] // early bounds check
	putVec(b, ms3.Unit(t.Normal()))
	putVec(b[12:], t[0])
	putVec(b[24:], t[1])
	putVec(b[36:], t[2])
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func getTriangle(b []byte) (normal ms3.Vec, t ms3.Triangle) {
	_ = b[stlTriangleSize-1] // early bounds check
	return getVec(b), ms3.Triangle{getVec(b[12:]), getVec(b[24:]), getVec(b[36:])}
}

func putVec(b []byte, v ms3.Vec) {
	binary.LittleEndian.PutUint32(b, math32.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[4:], math32.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(b[8:], math32.Float32bits(v.Z))
}

func getVec(b []byte) ms3.Vec {
	return ms3.Vec{
		X: math32.Float32frombits(binary.LittleEndian.Uint32(b)),
		Y: math32.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		Z: math32.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	}
}

func finite32(v ms3.Vec) bool {
	return !math32.IsNaN(v.X) && !math32.IsInf(v.X, 0) &&
		!math32.IsNaN(v.Y) && !math32.IsInf(v.Y, 0) &&
		!math32.IsNaN(v.Z) && !math32.IsInf(v.Z, 0)
}
