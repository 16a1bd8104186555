package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ErrUnknownKind is returned when a shape is requested for an undeclared kind.
var ErrUnknownKind = errors.New("shape: unknown kind")

// TriangleRadius is the fixed internal length of a triangle around its centre.
const TriangleRadius = 10

// Params carries the geometric input of a shape. Horizontal lines read only
// Y, vertical lines only X; for triangles (X, Y) is the centre.
type Params struct {
	X, Y float32
}

// expandFunc turns shape parameters into the shape's vertex list.
type expandFunc func(p Params, c Color) []Vertex

var expanders = [kindCount]expandFunc{
	KindPoint:          expandPoint,
	KindHorizontalLine: expandHorizontalLine,
	KindVerticalLine:   expandVerticalLine,
	KindTriangle:       expandTriangle,
	KindSquare:         expandSquare,
	KindCircle:         expandCircle,
}

// Shape is an immutable drawable. Its vertices are computed once at
// construction from the kind, the parameters and a private copy of the color.
type Shape struct {
	id       uuid.UUID
	kind     Kind
	params   Params
	color    Color
	vertices []Vertex
}

// New builds a shape of the given kind.
func New(kind Kind, p Params, c Color) (Shape, error) {
	if !kind.Valid() {
		return Shape{}, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	return Shape{
		id:       uuid.New(),
		kind:     kind,
		params:   p,
		color:    c,
		vertices: expanders[kind](p, c),
	}, nil
}

func mustNew(kind Kind, p Params, c Color) Shape {
	s, err := New(kind, p, c)
	if err != nil {
		panic(err)
	}
	return s
}

// NewPoint returns a point at (x, y).
func NewPoint(x, y float32, c Color) Shape { return mustNew(KindPoint, Params{X: x, Y: y}, c) }

// NewCircle returns a circle centred at (x, y).
func NewCircle(x, y float32, c Color) Shape { return mustNew(KindCircle, Params{X: x, Y: y}, c) }

// NewSquare returns a square centred at (x, y).
func NewSquare(x, y float32, c Color) Shape { return mustNew(KindSquare, Params{X: x, Y: y}, c) }

// NewHorizontalLine returns a line across the whole surface at height y.
func NewHorizontalLine(y float32, c Color) Shape {
	return mustNew(KindHorizontalLine, Params{Y: y}, c)
}

// NewVerticalLine returns a line down the whole surface at x.
func NewVerticalLine(x float32, c Color) Shape {
	return mustNew(KindVerticalLine, Params{X: x}, c)
}

// NewTriangle returns a triangle around the centre (cx, cy).
func NewTriangle(cx, cy float32, c Color) Shape {
	return mustNew(KindTriangle, Params{X: cx, Y: cy}, c)
}

// ID returns the unique identifier assigned at construction.
func (s Shape) ID() uuid.UUID { return s.id }

// Kind returns the shape variant.
func (s Shape) Kind() Kind { return s.kind }

// Params returns the construction parameters.
func (s Shape) Params() Params { return s.params }

// Color returns the color captured at construction.
func (s Shape) Color() Color { return s.color }

// Vertices returns a copy of the vertex list in drawing order.
func (s Shape) Vertices() []Vertex {
	out := make([]Vertex, len(s.vertices))
	copy(out, s.vertices)
	return out
}

// VertexCount returns the number of vertices.
func (s Shape) VertexCount() int { return len(s.vertices) }

// Serialize returns the concatenated vertex records.
func (s Shape) Serialize() []float32 {
	return s.AppendTo(make([]float32, 0, len(s.vertices)*Stride))
}

// AppendTo appends the concatenated vertex records to dst.
func (s Shape) AppendTo(dst []float32) []float32 {
	for _, v := range s.vertices {
		dst = v.AppendTo(dst)
	}
	return dst
}

// Bytes returns the serialized records as little-endian float32 bytes,
// ready for upload into a vertex buffer.
func (s Shape) Bytes() []byte { return PutFloats(s.Serialize()) }

func expandPoint(p Params, c Color) []Vertex {
	return []Vertex{{X: p.X, Y: p.Y, Color: c, IsPoint: true}}
}

func expandCircle(p Params, c Color) []Vertex {
	return []Vertex{{X: p.X, Y: p.Y, Color: c, IsCircle: true}}
}

// Squares are a single point-rendered vertex; the rasterizer gives them a
// fixed size.
func expandSquare(p Params, c Color) []Vertex {
	return []Vertex{{X: p.X, Y: p.Y, Color: c, IsSquare: true}}
}

// The far endpoint is +Inf: the line extends past any surface.
func expandHorizontalLine(p Params, c Color) []Vertex {
	inf := float32(math.Inf(1))
	return []Vertex{
		{X: 0, Y: p.Y, Color: c},
		{X: inf, Y: p.Y, Color: c},
	}
}

func expandVerticalLine(p Params, c Color) []Vertex {
	inf := float32(math.Inf(1))
	return []Vertex{
		{X: p.X, Y: 0, Color: c},
		{X: p.X, Y: inf, Color: c},
	}
}

// TriangleHalfBase is the horizontal offset of the base corners from the
// centre: TriangleRadius / cos(TriangleRadius), the angle taken in radians.
// The value is negative, so the first base corner lies right of the centre.
var TriangleHalfBase = float32(TriangleRadius / math.Cos(TriangleRadius))

func expandTriangle(p Params, c Color) []Vertex {
	const r = TriangleRadius
	return []Vertex{
		{X: p.X, Y: p.Y - r, Color: c}, // apex
		{X: p.X - TriangleHalfBase, Y: p.Y + r, Color: c},
		{X: p.X + TriangleHalfBase, Y: p.Y + r, Color: c},
	}
}
