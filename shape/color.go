package shape

import "image/color"

// ColorCode identifies one of the selectable drawing colors.
type ColorCode byte

// Color codes double as the keys that select them.
const (
	CodeRed   ColorCode = 'r'
	CodeGreen ColorCode = 'g'
	CodeBlue  ColorCode = 'b'
)

// String returns the color name.
func (c ColorCode) String() string {
	switch c {
	case CodeRed:
		return "red"
	case CodeGreen:
		return "green"
	case CodeBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// Color is an opaque drawing color with components in [0, 1].
//
// Color is a value type. Shapes and vertices keep their own copy, so changing
// the color a caller holds never affects anything already constructed.
type Color struct {
	RGB  [3]float32
	Code ColorCode
}

// Predefined drawing colors.
var (
	Red   = Color{RGB: [3]float32{1, 0, 0}, Code: CodeRed}
	Green = Color{RGB: [3]float32{0, 1, 0}, Code: CodeGreen}
	Blue  = Color{RGB: [3]float32{0, 0, 1}, Code: CodeBlue}
)

// ColorFor returns the predefined color for a code.
func ColorFor(code ColorCode) (Color, bool) {
	switch code {
	case CodeRed:
		return Red, true
	case CodeGreen:
		return Green, true
	case CodeBlue:
		return Blue, true
	default:
		return Color{}, false
	}
}

// NRGBA converts the color to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: unit8(c.RGB[0]),
		G: unit8(c.RGB[1]),
		B: unit8(c.RGB[2]),
		A: 255,
	}
}

func unit8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
