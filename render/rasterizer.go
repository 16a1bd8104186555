// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// Buffer is an opaque vertex buffer handle issued by a Rasterizer.
// The zero value is never a valid handle.
type Buffer uint32

// Rasterizer draws batches of vertex records onto a surface.
//
// The call sequence for one frame is Clear, then any number of
// UploadData/Draw pairs, then Present when the rasterizer implements
// [Presenter]. Draw always reads from the most recently uploaded buffer.
//
// Thread Safety: Rasterizers are NOT thread-safe. Drive each one from a
// single goroutine.
type Rasterizer interface {
	// CreateBuffer allocates a vertex buffer.
	CreateBuffer() (Buffer, error)

	// UploadData replaces the buffer contents with little-endian float32
	// vertex records and binds it for the next Draw.
	UploadData(buf Buffer, data []byte) error

	// Draw issues one draw call over the first vertexCount vertices of the
	// bound buffer.
	Draw(topology Topology, vertexCount int) error

	// Resize changes the drawing surface size in pixels.
	Resize(width, height int) error

	// Clear resets the surface to transparent black.
	Clear() error
}

// Presenter is implemented by rasterizers that finish a frame explicitly,
// for example by submitting GPU work and waiting for it.
type Presenter interface {
	Present() error
}

// Topology selects how vertices are assembled into primitives.
type Topology uint8

const (
	// TopologyPointList draws every vertex as a sprite.
	TopologyPointList Topology = iota

	// TopologyLineList draws one segment per vertex pair.
	TopologyLineList

	// TopologyTriangleList draws one filled triangle per vertex triple.
	TopologyTriangleList
)

// String returns the topology name.
func (t Topology) String() string {
	switch t {
	case TopologyPointList:
		return "point-list"
	case TopologyLineList:
		return "line-list"
	case TopologyTriangleList:
		return "triangle-list"
	default:
		return "unknown"
	}
}

// VerticesPerPrimitive returns how many vertices form one primitive.
func (t Topology) VerticesPerPrimitive() int {
	switch t {
	case TopologyLineList:
		return 2
	case TopologyTriangleList:
		return 3
	default:
		return 1
	}
}

// GPU returns the WebGPU primitive topology.
func (t Topology) GPU() gputypes.PrimitiveTopology {
	switch t {
	case TopologyLineList:
		return gputypes.PrimitiveTopologyLineList
	case TopologyTriangleList:
		return gputypes.PrimitiveTopologyTriangleList
	default:
		return gputypes.PrimitiveTopologyPointList
	}
}
