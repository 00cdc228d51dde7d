package square

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	StageUnknown ShaderStage = iota
	StageVertex
	StageFragment
)

// String returns the stage name used in logs and errors.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a stage the pipeline can compile.
func (s ShaderStage) Valid() bool {
	return s == StageVertex || s == StageFragment
}

// BufferTarget is the binding point a buffer is attached to.
type BufferTarget int

const (
	ArrayBuffer        BufferTarget = iota // vertex data (VBO)
	ElementArrayBuffer                     // index data (IBO)
)

func (t BufferTarget) String() string {
	if t == ElementArrayBuffer {
		return "element-array"
	}
	return "array"
}

// Color is a linear RGBA color.
type Color struct {
	R, G, B, A float32
}

// ColorBlack is the default clear color.
var ColorBlack = Color{0, 0, 0, 1}

// Vec3 is a point in 3D space.
type Vec3 struct {
	X, Y, Z float32
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Triangle holds three indices into a vertex array.
type Triangle [3]uint16
