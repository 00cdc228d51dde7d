package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/square"
)

// OpenWindow creates a non-resizable OpenGL 4.1 core window from cfg, makes
// its context current and loads the GL function pointers.
// glfw.Init must have been called on the main thread.
func OpenWindow(cfg square.Config) (*glfw.Window, error) {
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	return window, nil
}

// Present draws the scene once and shows it. The same frame is presented
// again whenever the window system asks for the contents to be repaired.
func Present(window *glfw.Window, scene *square.Scene) {
	window.SetRefreshCallback(func(w *glfw.Window) {
		scene.Draw()
		w.SwapBuffers()
	})

	scene.Draw()
	window.SwapBuffers()
}

// Version returns the renderer and version strings of the current context.
func Version() (renderer, version string) {
	return gl.GoStr(gl.GetString(gl.RENDERER)), gl.GoStr(gl.GetString(gl.VERSION))
}
