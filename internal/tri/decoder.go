package tri

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
)

// TriangleSize is the size of one triangle record: 9 consecutive 32-bit
// floats, grouped as three (x, y, z) points.
const TriangleSize = 36

// ErrNoGeometry marks a mesh that decoded to zero triangles. The decoder
// itself never returns it; callers use it when an empty mesh is a failure.
var ErrNoGeometry = errors.New("tri: no triangles in mesh")

// DecodeError reports a failure to read a .tri file. Readable content is
// never rejected, only truncated to whole triangles, so the wrapped cause
// is always an I/O error.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("tri: read %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode parses a flat .tri triangle stream. The format has no header: the
// buffer is a concatenation of 36-byte records, little-endian floats (the
// files are written with the producer's native x86 layout). A trailing
// partial record is silently dropped. Face i always references vertices
// (3i, 3i+1, 3i+2).
func Decode(data []byte) Mesh {
	n := len(data) / TriangleSize
	verts := make([][3]float32, 0, 3*n)
	faces := make([][3]int, 0, n)
	for i := 0; i < n; i++ {
		off := i * TriangleSize
		for p := 0; p < 3; p++ {
			verts = append(verts, [3]float32{
				readF32(data[off:]),
				readF32(data[off+4:]),
				readF32(data[off+8:]),
			})
			off += 12
		}
		faces = append(faces, [3]int{3 * i, 3*i + 1, 3*i + 2})
	}
	return Mesh{Vertices: verts, Faces: faces}
}

// DecodeFile reads and decodes a .tri file. The only failure mode is the
// read itself, reported as *DecodeError.
func DecodeFile(path string) (Mesh, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Mesh{}, &DecodeError{Path: path, Err: err}
	}
	return Decode(raw), nil
}

func readF32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
