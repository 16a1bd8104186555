//go:build !nogpu

package gpu

import _ "embed"

//go:embed shaders/shapes.wgsl
var shapesShaderSource string

// Shader entry points.
const (
	entryVertex   = "vs_main"
	entrySprite   = "vs_sprite"
	entryFragment = "fs_main"
)

// spriteCorners is the number of vertices in one sprite quad.
const spriteCorners = 6
