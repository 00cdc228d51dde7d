package square

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownStage is returned when a shader is requested for a stage
	// other than vertex or fragment.
	ErrUnknownStage = errors.New("unknown shader stage")

	// ErrAttributeNotFound is returned when the linked program does not
	// expose the position attribute.
	ErrAttributeNotFound = errors.New("vertex attribute not found")

	// ErrInvalidMesh is returned when geometry fails validation.
	ErrInvalidMesh = errors.New("invalid mesh")
)

// ShaderCompileError reports a shader that failed to compile.
type ShaderCompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, strings.TrimSpace(e.Log))
}

// ProgramLinkError reports a program that failed to link.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return "shader program linking failed: " + strings.TrimSpace(e.Log)
}
