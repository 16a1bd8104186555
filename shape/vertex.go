package shape

import (
	"encoding/binary"
	"math"
)

// Record layout of a serialized vertex, in float32 slots.
const (
	OffsetPosition = 0 // x, y
	OffsetColor    = 2 // r, g, b
	OffsetIsPoint  = 5
	OffsetIsCircle = 6
	OffsetIsSquare = 7

	// Stride is the number of float32 values per vertex record.
	Stride = 8

	// FloatSize is the byte size of one record slot.
	FloatSize = 4
)

// Record is one serialized vertex.
type Record [Stride]float32

// Vertex is the smallest renderable unit: a pixel-space position (y grows
// downward), a color and an optional shape tag. At most one tag is set;
// line and triangle vertices carry none.
type Vertex struct {
	X, Y  float32
	Color Color

	IsPoint  bool
	IsCircle bool
	IsSquare bool
}

// Serialize returns the vertex as a fixed-order record.
func (v Vertex) Serialize() Record {
	return Record{
		OffsetPosition:     v.X,
		OffsetPosition + 1: v.Y,
		OffsetColor:        v.Color.RGB[0],
		OffsetColor + 1:    v.Color.RGB[1],
		OffsetColor + 2:    v.Color.RGB[2],
		OffsetIsPoint:      flag(v.IsPoint),
		OffsetIsCircle:     flag(v.IsCircle),
		OffsetIsSquare:     flag(v.IsSquare),
	}
}

// AppendTo appends the serialized record to dst and returns the extended slice.
func (v Vertex) AppendTo(dst []float32) []float32 {
	r := v.Serialize()
	return append(dst, r[:]...)
}

// VertexFromRecord rebuilds a vertex from its record. Color codes are not
// part of the record and are recovered only for the predefined colors.
func VertexFromRecord(r Record) Vertex {
	c := Color{RGB: [3]float32{r[OffsetColor], r[OffsetColor+1], r[OffsetColor+2]}}
	for _, known := range []Color{Red, Green, Blue} {
		if known.RGB == c.RGB {
			c.Code = known.Code
			break
		}
	}
	return Vertex{
		X:        r[OffsetPosition],
		Y:        r[OffsetPosition+1],
		Color:    c,
		IsPoint:  r[OffsetIsPoint] == 1,
		IsCircle: r[OffsetIsCircle] == 1,
		IsSquare: r[OffsetIsSquare] == 1,
	}
}

// PutFloats writes values as little-endian float32 into a new byte slice.
func PutFloats(values []float32) []byte {
	buf := make([]byte, len(values)*FloatSize)
	for i, f := range values {
		binary.LittleEndian.PutUint32(buf[i*FloatSize:], math.Float32bits(f))
	}
	return buf
}

func flag(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
