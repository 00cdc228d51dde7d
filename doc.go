/*
Package square draws a single static square through a minimal GPU
rasterization pipeline.

# Overview

The pipeline runs four stages once, in order:

  - Shader loading: the embedded vertex and fragment sources are compiled.
  - Program linking: both stages are linked into the active program and the
    aVertexPosition attribute is resolved.
  - Geometry upload: the 4-vertex, 6-index quad is written into a vertex
    buffer and an index buffer with static usage.
  - Frame rendering: the framebuffer is cleared and one indexed draw call
    renders both triangles.

All GPU work goes through a Device, so the pipeline is independent of the
windowing system. The OpenGL implementation lives in backend/opengl.

# Quick Start

	window, _ := opengl.OpenWindow(square.DefaultConfig())
	dev := opengl.NewDevice(window)

	scene, err := square.New(dev, square.WithLogger(slog.Default()))
	if err != nil {
	    // *square.ShaderCompileError or *square.ProgramLinkError
	}
	defer scene.Delete()

	scene.Draw()
	window.SwapBuffers()

# Errors

Setup never continues past a failure. Compile failures are reported as
*ShaderCompileError with the driver's info log, link failures as
*ProgramLinkError. Both are logged at error level before New returns.

# Geometry

	V0 (-0.5, 0.5, 0)    V3 (0.5, 0.5, 0)
	V1 (-0.5, -0.5, 0)   V2 (0.5, -0.5, 0)

	Indices: 0 1 2, 0 2 3 (counter-clockwise)
*/
package square
