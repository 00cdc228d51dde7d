package square

import (
	"fmt"
	"log/slog"

	"github.com/go-theft-auto/square/shaders"
)

// Scene owns every GPU resource needed to draw the square.
type Scene struct {
	dev        Device
	logger     *slog.Logger
	clearColor Color
	vertexSrc  string
	fragSrc    string
	mesh       Mesh

	program  *Program
	geometry *Geometry
	frames   int
}

// Option configures a Scene.
type Option func(*Scene)

// WithLogger sets the scene logger. The default logger is silent.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scene) { s.logger = loggerOrNop(l) }
}

// WithClearColor sets the color the framebuffer is cleared to.
func WithClearColor(c Color) Option {
	return func(s *Scene) { s.clearColor = c }
}

// WithShaderSources replaces the embedded shader sources.
func WithShaderSources(vertex, fragment string) Option {
	return func(s *Scene) {
		s.vertexSrc = vertex
		s.fragSrc = fragment
	}
}

// New compiles the shaders, links the program and uploads the quad.
// Any failure aborts setup and is returned; resources created up to that
// point are released.
func New(dev Device, opts ...Option) (*Scene, error) {
	s := &Scene{
		dev:        dev,
		logger:     newNopLogger(),
		clearColor: ColorBlack,
		vertexSrc:  shaders.Vertex,
		fragSrc:    shaders.Fragment,
		mesh:       Quad(),
	}

	for _, opt := range opts {
		opt(s)
	}

	dev.ClearColor(s.clearColor)

	if err := s.initProgram(); err != nil {
		return nil, err
	}
	if err := s.initBuffers(); err != nil {
		s.Delete()
		return nil, err
	}

	return s, nil
}

func (s *Scene) initProgram() error {
	vs, err := LoadShader(s.dev, StageVertex, s.vertexSrc)
	if err != nil {
		s.logger.Error("shader compile failed", "stage", StageVertex, "error", err)
		return fmt.Errorf("init program: %w", err)
	}
	s.logger.Debug("shader compiled", "stage", vs.Stage, "handle", vs.Handle)

	fs, err := LoadShader(s.dev, StageFragment, s.fragSrc)
	if err != nil {
		vs.Delete(s.dev)
		s.logger.Error("shader compile failed", "stage", StageFragment, "error", err)
		return fmt.Errorf("init program: %w", err)
	}
	s.logger.Debug("shader compiled", "stage", fs.Stage, "handle", fs.Handle)

	s.program, err = LinkProgram(s.dev, vs, fs)
	if err != nil {
		s.logger.Error("program link failed", "error", err)
		return fmt.Errorf("init program: %w", err)
	}
	s.logger.Debug("program linked", "handle", s.program.Handle, "position", s.program.Position)

	return nil
}

func (s *Scene) initBuffers() error {
	var err error
	s.geometry, err = UploadGeometry(s.dev, s.mesh)
	if err != nil {
		s.logger.Error("geometry upload failed", "error", err)
		return fmt.Errorf("init buffers: %w", err)
	}
	s.logger.Debug("geometry uploaded",
		"vbo", s.geometry.VBO,
		"ibo", s.geometry.IBO,
		"vertices", s.mesh.VertexCount(),
		"indices", s.geometry.IndexCount)
	return nil
}

// Draw clears the framebuffer and draws the square with one indexed draw
// call. The viewport covers the whole drawable.
func (s *Scene) Draw() {
	dev := s.dev
	w, h := dev.DrawableSize()

	dev.Clear()
	dev.Viewport(0, 0, w, h)

	dev.BindBuffer(ArrayBuffer, s.geometry.VBO)
	dev.VertexAttribPointer(s.program.Position, componentsPerVertex, 0, 0)
	dev.EnableVertexAttribArray(s.program.Position)

	dev.BindBuffer(ElementArrayBuffer, s.geometry.IBO)
	dev.DrawTriangles(s.geometry.IndexCount)

	dev.BindBuffer(ArrayBuffer, 0)
	dev.BindBuffer(ElementArrayBuffer, 0)

	s.frames++
	s.logger.Debug("frame drawn", "frame", s.frames, "width", w, "height", h)
}

// Frames returns how many times Draw has run.
func (s *Scene) Frames() int {
	return s.frames
}

// Program returns the linked program.
func (s *Scene) Program() *Program {
	return s.program
}

// Geometry returns the uploaded buffers.
func (s *Scene) Geometry() *Geometry {
	return s.geometry
}

// Delete releases the buffers and the program. Safe to call more than once.
func (s *Scene) Delete() {
	if s.geometry != nil {
		s.geometry.Delete(s.dev)
	}
	if s.program != nil {
		s.program.Delete(s.dev)
	}
}
