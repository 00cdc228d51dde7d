// Package shaders embeds the GLSL sources for the square pipeline.
package shaders

import _ "embed"

// Vertex passes positions through unchanged.
//
//go:embed square.vert
var Vertex string

// Fragment fills every covered pixel with a constant color.
//
//go:embed square.frag
var Fragment string
