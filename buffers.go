package square

import "fmt"

// Geometry is a mesh resident in GPU buffers.
type Geometry struct {
	VBO, IBO   uint32
	IndexCount int
}

// UploadGeometry writes the mesh into a new vertex buffer and index buffer.
// Both targets are unbound on return.
func UploadGeometry(dev Device, m Mesh) (*Geometry, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("upload geometry: %w", err)
	}

	g := &Geometry{IndexCount: len(m.Indices)}

	g.VBO = dev.CreateBuffer()
	dev.BindBuffer(ArrayBuffer, g.VBO)
	dev.BufferFloat32(ArrayBuffer, m.Positions)

	g.IBO = dev.CreateBuffer()
	dev.BindBuffer(ElementArrayBuffer, g.IBO)
	dev.BufferUint16(ElementArrayBuffer, m.Indices)

	dev.BindBuffer(ArrayBuffer, 0)
	dev.BindBuffer(ElementArrayBuffer, 0)

	return g, nil
}

// Delete releases both buffers.
func (g *Geometry) Delete(dev Device) {
	if g.IBO != 0 {
		dev.DeleteBuffer(g.IBO)
		g.IBO = 0
	}
	if g.VBO != 0 {
		dev.DeleteBuffer(g.VBO)
		g.VBO = 0
	}
}
