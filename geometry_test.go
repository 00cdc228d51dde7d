package square

import (
	"errors"
	"testing"
)

func TestQuadIsUnitSquare(t *testing.T) {
	m := Quad()
	if m.VertexCount() != 4 {
		t.Fatalf("VertexCount() = %d, want 4", m.VertexCount())
	}

	var minX, minY, maxX, maxY float32 = 1, 1, -1, -1
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		if v.Z != 0 {
			t.Errorf("vertex %d has z = %v, want 0", i, v.Z)
		}
		minX, maxX = min(minX, v.X), max(maxX, v.X)
		minY, maxY = min(minY, v.Y), max(maxY, v.Y)
	}
	if maxX-minX != 1 || maxY-minY != 1 {
		t.Errorf("extent = %vx%v, want 1x1", maxX-minX, maxY-minY)
	}
	if minX+maxX != 0 || minY+maxY != 0 {
		t.Errorf("square not centered at origin: x [%v,%v] y [%v,%v]", minX, maxX, minY, maxY)
	}
}

func TestQuadTrianglesCounterClockwise(t *testing.T) {
	m := Quad()
	tris := m.Triangles()
	if len(tris) != 2 {
		t.Fatalf("got %d triangles, want 2", len(tris))
	}

	var total float32
	for i, tri := range tris {
		area := m.SignedArea(tri)
		if area <= 0 {
			t.Errorf("triangle %d %v has signed area %v, want counter-clockwise", i, tri, area)
		}
		total += area
	}
	if total != 1 {
		t.Errorf("triangles cover area %v, want 1", total)
	}
}

func TestQuadUsesEveryVertex(t *testing.T) {
	m := Quad()
	seen := make(map[uint16]bool)
	for _, idx := range m.Indices {
		seen[idx] = true
	}
	if len(seen) != 4 {
		t.Errorf("indices reference %d distinct vertices, want 4", len(seen))
	}
}

func TestQuadReturnsCopy(t *testing.T) {
	m := Quad()
	m.Positions[0] = 42
	m.Indices[0] = 3

	if Vertices[0] != -0.5 || Indices[0] != 0 {
		t.Error("mutating Quad() result changed the package geometry")
	}
}

func TestSignedAreaClockwise(t *testing.T) {
	m := Quad()
	if a := m.SignedArea(Triangle{0, 2, 1}); a >= 0 {
		t.Errorf("reversed triangle area = %v, want negative", a)
	}
}

func TestMeshValidate(t *testing.T) {
	tests := []struct {
		name string
		mesh Mesh
		ok   bool
	}{
		{"quad", Quad(), true},
		{"no positions", Mesh{Indices: []uint16{0, 1, 2}}, false},
		{"partial vertex", Mesh{Positions: []float32{0, 0, 0, 1}, Indices: []uint16{0, 0, 0}}, false},
		{"no indices", Mesh{Positions: Vertices[:]}, false},
		{"not a triangle list", Mesh{Positions: Vertices[:], Indices: []uint16{0, 1}}, false},
		{"index out of range", Mesh{Positions: Vertices[:], Indices: []uint16{0, 1, 4}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mesh.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidMesh) {
				t.Errorf("Validate() = %v, want ErrInvalidMesh", err)
			}
		})
	}
}
