package square

import "fmt"

// Shader is a compiled shader stage.
type Shader struct {
	Handle uint32
	Stage  ShaderStage
}

// LoadShader compiles source for the given stage.
//
// On failure the shader object is deleted and a *ShaderCompileError carrying
// the driver's info log is returned.
func LoadShader(dev Device, stage ShaderStage, source string) (*Shader, error) {
	if !stage.Valid() {
		return nil, fmt.Errorf("load shader: %w: %d", ErrUnknownStage, int(stage))
	}

	handle := dev.CreateShader(stage)
	dev.ShaderSource(handle, source)
	if ok, infoLog := dev.CompileShader(handle); !ok {
		dev.DeleteShader(handle)
		return nil, &ShaderCompileError{Stage: stage, Log: infoLog}
	}

	return &Shader{Handle: handle, Stage: stage}, nil
}

// Delete flags the shader for deletion. A shader attached to a program is
// released when the program is.
func (s *Shader) Delete(dev Device) {
	if s.Handle != 0 {
		dev.DeleteShader(s.Handle)
		s.Handle = 0
	}
}
