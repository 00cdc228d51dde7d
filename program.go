package square

import "fmt"

// PositionAttribute is the vertex shader input fed from the vertex buffer.
const PositionAttribute = "aVertexPosition"

// Program is a linked pipeline program.
type Program struct {
	Handle uint32
	// Position is the location of PositionAttribute.
	Position uint32
}

// LinkProgram attaches vs and fs, links them, makes the result the active
// program and resolves the position attribute.
//
// Both shaders are flagged for deletion once linking has been attempted; the
// program keeps them alive on success.
func LinkProgram(dev Device, vs, fs *Shader) (*Program, error) {
	if vs == nil || vs.Stage != StageVertex {
		return nil, fmt.Errorf("link program: %w: want vertex shader", ErrUnknownStage)
	}
	if fs == nil || fs.Stage != StageFragment {
		return nil, fmt.Errorf("link program: %w: want fragment shader", ErrUnknownStage)
	}

	handle := dev.CreateProgram()
	dev.AttachShader(handle, vs.Handle)
	dev.AttachShader(handle, fs.Handle)
	ok, infoLog := dev.LinkProgram(handle)
	vs.Delete(dev)
	fs.Delete(dev)
	if !ok {
		dev.DeleteProgram(handle)
		return nil, &ProgramLinkError{Log: infoLog}
	}

	dev.UseProgram(handle)

	loc := dev.AttribLocation(handle, PositionAttribute)
	if loc < 0 {
		dev.DeleteProgram(handle)
		return nil, fmt.Errorf("link program: %w: %s", ErrAttributeNotFound, PositionAttribute)
	}

	return &Program{Handle: handle, Position: uint32(loc)}, nil
}

// Delete releases the program.
func (p *Program) Delete(dev Device) {
	if p.Handle != 0 {
		dev.DeleteProgram(p.Handle)
		p.Handle = 0
	}
}
