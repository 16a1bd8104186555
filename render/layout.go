// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/clickshapes/shape"
	"github.com/gogpu/gputypes"
)

// VertexStride is the byte size of one vertex record.
const VertexStride = shape.Stride * shape.FloatSize

// Sprite sizes in pixels for point-list vertices.
const (
	CircleSize = 20
	PointSize  = 3
	SquareSize = 8
)

// SpriteSize returns the on-screen size of a point-list vertex.
func SpriteSize(v shape.Vertex) float64 {
	switch {
	case v.IsCircle:
		return CircleSize
	case v.IsPoint:
		return PointSize
	default:
		return SquareSize
	}
}

// VertexLayout returns the WebGPU vertex buffer layout matching the shape
// record. stepMode is Vertex for line and triangle lists; sprite pipelines
// read one record per instance.
func VertexLayout(stepMode gputypes.VertexStepMode) gputypes.VertexBufferLayout {
	const f = shape.FloatSize
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    stepMode,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: shape.OffsetPosition * f, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x3, Offset: shape.OffsetColor * f, ShaderLocation: 1},
			{Format: gputypes.VertexFormatFloat32, Offset: shape.OffsetIsPoint * f, ShaderLocation: 2},
			{Format: gputypes.VertexFormatFloat32, Offset: shape.OffsetIsCircle * f, ShaderLocation: 3},
			{Format: gputypes.VertexFormatFloat32, Offset: shape.OffsetIsSquare * f, ShaderLocation: 4},
		},
	}
}

// DecodeVertices parses little-endian vertex records.
func DecodeVertices(data []byte) ([]shape.Vertex, error) {
	if len(data)%VertexStride != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrInvalidVertexData, len(data), VertexStride)
	}
	n := len(data) / VertexStride
	out := make([]shape.Vertex, n)
	for i := range out {
		out[i] = shape.VertexFromRecord(readRecord(data[i*VertexStride:]))
	}
	return out, nil
}

// CheckDraw validates a draw request against the bound vertex count.
func CheckDraw(topology Topology, vertexCount, bound int) error {
	if vertexCount < 0 || vertexCount > bound {
		return fmt.Errorf("%w: draw of %d vertices, %d bound", ErrInvalidVertexData, vertexCount, bound)
	}
	if vertexCount%topology.VerticesPerPrimitive() != 0 {
		return fmt.Errorf("%w: %d vertices do not form whole %s primitives", ErrInvalidVertexData, vertexCount, topology)
	}
	return nil
}
