// Package opengl implements square.Device on OpenGL 4.1 core.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/square"
)

// Surface reports the size of the framebuffer being drawn to.
// *glfw.Window satisfies it.
type Surface interface {
	GetFramebufferSize() (width, height int)
}

// Device issues GL calls on the current context.
type Device struct {
	surface Surface
	vao     uint32
}

var _ square.Device = (*Device)(nil)

// NewDevice wraps the GL context current on this thread. gl.Init must have
// been called.
//
// Core profile rejects attribute setup without a bound vertex array, so one
// is created and stays bound for the device's lifetime.
func NewDevice(surface Surface) *Device {
	d := &Device{surface: surface}
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	return d
}

// Delete releases the vertex array.
func (d *Device) Delete() {
	if d.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

func (d *Device) CreateShader(stage square.ShaderStage) uint32 {
	switch stage {
	case square.StageVertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case square.StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return 0
	}
}

func (d *Device) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (d *Device) CompileShader(shader uint32) (bool, string) {
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		return false, infoLog(logLength, func(buf *uint8) {
			gl.GetShaderInfoLog(shader, logLength, nil, buf)
		})
	}
	return true, ""
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Device) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		return false, infoLog(logLength, func(buf *uint8) {
			gl.GetProgramInfoLog(program, logLength, nil, buf)
		})
	}
	return true, ""
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Device) CreateBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (d *Device) BindBuffer(target square.BufferTarget, buffer uint32) {
	gl.BindBuffer(glTarget(target), buffer)
}

func (d *Device) BufferFloat32(target square.BufferTarget, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BufferData(glTarget(target), len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Device) BufferUint16(target square.BufferTarget, data []uint16) {
	if len(data) == 0 {
		return
	}
	gl.BufferData(glTarget(target), len(data)*2, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Device) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (d *Device) VertexAttribPointer(location uint32, size, stride, offset int) {
	gl.VertexAttribPointerWithOffset(location, int32(size), gl.FLOAT, false, int32(stride), uintptr(offset))
}

func (d *Device) EnableVertexAttribArray(location uint32) {
	gl.EnableVertexAttribArray(location)
}

func (d *Device) ClearColor(c square.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *Device) DrawTriangles(count int) {
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_SHORT, nil)
}

func (d *Device) DrawableSize() (int, int) {
	return d.surface.GetFramebufferSize()
}

func glTarget(t square.BufferTarget) uint32 {
	if t == square.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

// infoLog reads a shader or program info log of logLength bytes.
func infoLog(logLength int32, read func(buf *uint8)) string {
	log := make([]byte, logLength+1)
	read(&log[0])
	return strings.TrimRight(string(log), "\x00")
}
