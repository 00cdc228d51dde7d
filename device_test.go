package square_test

import (
	"fmt"
	"strings"

	"github.com/go-theft-auto/square"
)

// fakeDevice records every call instead of talking to a GPU.
type fakeDevice struct {
	calls []string

	nextHandle uint32
	bound      map[square.BufferTarget]uint32
	floats     map[uint32][]float32
	uint16s    map[uint32][]uint16
	shaders    map[uint32]square.ShaderStage
	live       map[uint32]bool

	failStage square.ShaderStage // stage whose compile fails
	failLink  bool
	attribLoc int32
	draws     []int
	width     int
	height    int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		bound:     make(map[square.BufferTarget]uint32),
		floats:    make(map[uint32][]float32),
		uint16s:   make(map[uint32][]uint16),
		shaders:   make(map[uint32]square.ShaderStage),
		live:      make(map[uint32]bool),
		attribLoc: 0,
		width:     640,
		height:    480,
	}
}

func (d *fakeDevice) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) alloc() uint32 {
	d.nextHandle++
	d.live[d.nextHandle] = true
	return d.nextHandle
}

// called reports whether a call with the given prefix was recorded.
func (d *fakeDevice) called(prefix string) bool {
	for _, c := range d.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// index returns the position of the first call with the given prefix, or -1.
func (d *fakeDevice) index(prefix string) int {
	for i, c := range d.calls {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}

func (d *fakeDevice) liveCount() int {
	n := 0
	for _, ok := range d.live {
		if ok {
			n++
		}
	}
	return n
}

func (d *fakeDevice) CreateShader(stage square.ShaderStage) uint32 {
	h := d.alloc()
	d.shaders[h] = stage
	d.record("CreateShader %s", stage)
	return h
}

func (d *fakeDevice) ShaderSource(shader uint32, source string) {
	d.record("ShaderSource %d", shader)
}

func (d *fakeDevice) CompileShader(shader uint32) (bool, string) {
	d.record("CompileShader %d", shader)
	if d.shaders[shader] == d.failStage {
		return false, "ERROR: 0:1: syntax error\n"
	}
	return true, ""
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	d.record("DeleteShader %d", shader)
	d.live[shader] = false
}

func (d *fakeDevice) CreateProgram() uint32 {
	h := d.alloc()
	d.record("CreateProgram")
	return h
}

func (d *fakeDevice) AttachShader(program, shader uint32) {
	d.record("AttachShader %d %d", program, shader)
}

func (d *fakeDevice) LinkProgram(program uint32) (bool, string) {
	d.record("LinkProgram %d", program)
	if d.failLink {
		return false, "error: varying mismatch"
	}
	return true, ""
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.record("UseProgram %d", program)
}

func (d *fakeDevice) AttribLocation(program uint32, name string) int32 {
	d.record("AttribLocation %s", name)
	return d.attribLoc
}

func (d *fakeDevice) DeleteProgram(program uint32) {
	d.record("DeleteProgram %d", program)
	d.live[program] = false
}

func (d *fakeDevice) CreateBuffer() uint32 {
	d.record("CreateBuffer")
	return d.alloc()
}

func (d *fakeDevice) BindBuffer(target square.BufferTarget, buffer uint32) {
	d.record("BindBuffer %s %d", target, buffer)
	d.bound[target] = buffer
}

func (d *fakeDevice) BufferFloat32(target square.BufferTarget, data []float32) {
	d.record("BufferFloat32 %s %d", target, len(data))
	d.floats[d.bound[target]] = append([]float32(nil), data...)
}

func (d *fakeDevice) BufferUint16(target square.BufferTarget, data []uint16) {
	d.record("BufferUint16 %s %d", target, len(data))
	d.uint16s[d.bound[target]] = append([]uint16(nil), data...)
}

func (d *fakeDevice) DeleteBuffer(buffer uint32) {
	d.record("DeleteBuffer %d", buffer)
	d.live[buffer] = false
}

func (d *fakeDevice) VertexAttribPointer(location uint32, size, stride, offset int) {
	d.record("VertexAttribPointer %d %d %d %d array=%d", location, size, stride, offset, d.bound[square.ArrayBuffer])
}

func (d *fakeDevice) EnableVertexAttribArray(location uint32) {
	d.record("EnableVertexAttribArray %d", location)
}

func (d *fakeDevice) ClearColor(c square.Color) {
	d.record("ClearColor %v %v %v %v", c.R, c.G, c.B, c.A)
}

func (d *fakeDevice) Clear() {
	d.record("Clear")
}

func (d *fakeDevice) Viewport(x, y, width, height int) {
	d.record("Viewport %d %d %d %d", x, y, width, height)
}

func (d *fakeDevice) DrawTriangles(count int) {
	d.record("DrawTriangles %d element=%d", count, d.bound[square.ElementArrayBuffer])
	d.draws = append(d.draws, count)
}

func (d *fakeDevice) DrawableSize() (int, int) {
	return d.width, d.height
}
