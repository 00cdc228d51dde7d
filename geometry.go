package square

import "fmt"

// Vertices is the unit square centered at the origin, three floats per point.
//
//	V0 (-0.5, 0.5)      V3 (0.5, 0.5)
//	X-------------------X
//	|                   |
//	|       (0, 0)      |
//	|                   |
//	X-------------------X
//	V1 (-0.5, -0.5)     V2 (0.5, -0.5)
var Vertices = [12]float32{
	-0.5, 0.5, 0,
	-0.5, -0.5, 0,
	0.5, -0.5, 0,
	0.5, 0.5, 0,
}

// Indices splits the square into two counter-clockwise triangles.
var Indices = [6]uint16{0, 1, 2, 0, 2, 3}

// componentsPerVertex is the size of the position attribute.
const componentsPerVertex = 3

// Mesh is indexed triangle geometry.
type Mesh struct {
	Positions []float32 // x, y, z per vertex
	Indices   []uint16  // triangle list
}

// Quad returns a copy of the square geometry.
func Quad() Mesh {
	pos := Vertices
	idx := Indices
	return Mesh{Positions: pos[:], Indices: idx[:]}
}

// VertexCount returns the number of vertices.
func (m Mesh) VertexCount() int {
	return len(m.Positions) / componentsPerVertex
}

// Vertex returns vertex i.
func (m Mesh) Vertex(i int) Vec3 {
	p := m.Positions[i*componentsPerVertex:]
	return Vec3{X: p[0], Y: p[1], Z: p[2]}
}

// Triangles returns the index triples of the triangle list.
func (m Mesh) Triangles() []Triangle {
	tris := make([]Triangle, 0, len(m.Indices)/3)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		tris = append(tris, Triangle{m.Indices[i], m.Indices[i+1], m.Indices[i+2]})
	}
	return tris
}

// SignedArea returns the signed area of a triangle projected on the XY
// plane. Positive means counter-clockwise.
func (m Mesh) SignedArea(t Triangle) float32 {
	a, b, c := m.Vertex(int(t[0])), m.Vertex(int(t[1])), m.Vertex(int(t[2]))
	ab, ac := b.Sub(a), c.Sub(a)
	return (ab.X*ac.Y - ab.Y*ac.X) / 2
}

// Validate checks that the mesh can be uploaded and drawn as a triangle list.
func (m Mesh) Validate() error {
	if len(m.Positions) == 0 || len(m.Positions)%componentsPerVertex != 0 {
		return fmt.Errorf("%w: %d position components", ErrInvalidMesh, len(m.Positions))
	}
	if len(m.Indices) == 0 || len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a triangle list", ErrInvalidMesh, len(m.Indices))
	}
	n := m.VertexCount()
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d at %d out of range [0,%d)", ErrInvalidMesh, idx, i, n)
		}
	}
	return nil
}
