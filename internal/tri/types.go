package tri

import "github.com/chewxy/math32"

// Mesh is a triangle soup decoded from a .tri stream. Vertices are never
// shared: each face owns the three vertices it references, so
// len(Vertices) == 3*len(Faces) by construction.
type Mesh struct {
	Vertices [][3]float32
	Faces    [][3]int
}

// NumTriangles returns the number of whole triangles decoded.
func (m Mesh) NumTriangles() int {
	return len(m.Faces)
}

// Empty reports whether the mesh carries no geometry.
func (m Mesh) Empty() bool {
	return len(m.Faces) == 0
}

// Bounds returns the axis-aligned bounding box over all vertices.
// Both corners are zero for an empty mesh.
func (m Mesh) Bounds() (min, max [3]float32) {
	if len(m.Vertices) == 0 {
		return min, max
	}
	min = [3]float32{math32.Inf(1), math32.Inf(1), math32.Inf(1)}
	max = [3]float32{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)}
	for _, v := range m.Vertices {
		for k := 0; k < 3; k++ {
			min[k] = math32.Min(min[k], v[k])
			max[k] = math32.Max(max[k], v[k])
		}
	}
	return min, max
}
