package scene

import "gonum.org/v1/gonum/spatial/r3"

// Color is a normalized RGB triple.
type Color struct {
	R, G, B float64
}

// Scene palette.
var (
	MeshGray = Color{0.8, 0.8, 0.8} // map geometry
	Green    = Color{0, 1, 0}       // visible LOS
	Red      = Color{1, 0, 0}       // blocked LOS
)

// Primitive is one renderable scene element. The set of variants is closed:
// Mesh, Sphere and Segment. Primitives are built once and never mutated.
type Primitive interface {
	primitive()
}

// Mesh is the map geometry with a uniform color. Vertex normals are not
// stored; the renderer derives them from face geometry.
type Mesh struct {
	Vertices [][3]float32
	Faces    [][3]int
	Color    Color
}

// Sphere marks a player position.
type Sphere struct {
	Center r3.Vec
	Radius float64
	Color  Color
}

// Segment connects the two player positions of one LOS test.
type Segment struct {
	A, B  r3.Vec
	Color Color
}

func (Mesh) primitive()    {}
func (Sphere) primitive()  {}
func (Segment) primitive() {}
