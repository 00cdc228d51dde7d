package square

// Device is the graphics context the pipeline drives.
//
// Methods mirror the GL calls one to one so the pipeline stays a thin,
// ordered sequence of device operations. Handles are opaque non-zero values;
// zero means "none" for BindBuffer.
type Device interface {
	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	// CompileShader compiles the shader and reports its compile status
	// together with the info log.
	CompileShader(shader uint32) (ok bool, infoLog string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	// LinkProgram links the program and reports its link status together
	// with the info log.
	LinkProgram(program uint32) (ok bool, infoLog string)
	UseProgram(program uint32)
	// AttribLocation returns the attribute location, or -1 if the linked
	// program has no active attribute with that name.
	AttribLocation(program uint32, name string) int32
	DeleteProgram(program uint32)

	CreateBuffer() uint32
	BindBuffer(target BufferTarget, buffer uint32)
	// BufferFloat32 and BufferUint16 upload static data into the buffer
	// currently bound to target.
	BufferFloat32(target BufferTarget, data []float32)
	BufferUint16(target BufferTarget, data []uint16)
	DeleteBuffer(buffer uint32)

	// VertexAttribPointer describes float attribute data in the bound
	// array buffer. Stride and offset are in bytes.
	VertexAttribPointer(location uint32, size, stride, offset int)
	EnableVertexAttribArray(location uint32)

	ClearColor(c Color)
	// Clear clears the color and depth buffers.
	Clear()
	Viewport(x, y, width, height int)
	// DrawTriangles draws count unsigned 16-bit indices from the bound
	// element array buffer as a triangle list.
	DrawTriangles(count int)

	// DrawableSize returns the framebuffer size in pixels.
	DrawableSize() (width, height int)
}
