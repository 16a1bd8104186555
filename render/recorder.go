// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/clickshapes/shape"
)

// Op identifies a recorded rasterizer call.
type Op string

// Recorded operations.
const (
	OpCreateBuffer Op = "create-buffer"
	OpUpload       Op = "upload"
	OpDraw         Op = "draw"
	OpResize       Op = "resize"
	OpClear        Op = "clear"
	OpPresent      Op = "present"
)

// Call is one recorded rasterizer call. Only the fields relevant to Op are set.
type Call struct {
	Op          Op
	Buffer      Buffer
	Topology    Topology
	VertexCount int
	Width       int
	Height      int

	// Vertices holds the decoded upload for OpUpload and the drawn vertices
	// for OpDraw.
	Vertices []shape.Vertex
}

// Recorder is a Rasterizer that keeps every call in memory instead of
// drawing. It validates input the same way the real rasterizers do.
type Recorder struct {
	calls   []Call
	buffers map[Buffer][]shape.Vertex
	next    Buffer
	bound   Buffer
	width   int
	height  int

	// FailCreateBuffer makes CreateBuffer fail, simulating a host without a
	// usable rasterization context.
	FailCreateBuffer bool
}

// NewRecorder creates a recorder for a surface of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		buffers: make(map[Buffer][]shape.Vertex),
		width:   width,
		height:  height,
	}
}

// CreateBuffer implements Rasterizer.
func (r *Recorder) CreateBuffer() (Buffer, error) {
	if r.FailCreateBuffer {
		return 0, ErrUnsupportedContext
	}
	r.next++
	r.buffers[r.next] = nil
	r.calls = append(r.calls, Call{Op: OpCreateBuffer, Buffer: r.next})
	return r.next, nil
}

// UploadData implements Rasterizer.
func (r *Recorder) UploadData(buf Buffer, data []byte) error {
	if _, ok := r.buffers[buf]; !ok {
		return fmt.Errorf("%w: %d", ErrNoBuffer, buf)
	}
	vs, err := DecodeVertices(data)
	if err != nil {
		return err
	}
	r.buffers[buf] = vs
	r.bound = buf
	r.calls = append(r.calls, Call{Op: OpUpload, Buffer: buf, VertexCount: len(vs), Vertices: vs})
	return nil
}

// Draw implements Rasterizer.
func (r *Recorder) Draw(topology Topology, vertexCount int) error {
	vs, ok := r.buffers[r.bound]
	if !ok {
		return ErrNoBuffer
	}
	if err := CheckDraw(topology, vertexCount, len(vs)); err != nil {
		return err
	}
	drawn := make([]shape.Vertex, vertexCount)
	copy(drawn, vs)
	r.calls = append(r.calls, Call{
		Op:          OpDraw,
		Buffer:      r.bound,
		Topology:    topology,
		VertexCount: vertexCount,
		Vertices:    drawn,
	})
	return nil
}

// Resize implements Rasterizer.
func (r *Recorder) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	r.width, r.height = width, height
	r.calls = append(r.calls, Call{Op: OpResize, Width: width, Height: height})
	return nil
}

// Clear implements Rasterizer.
func (r *Recorder) Clear() error {
	r.calls = append(r.calls, Call{Op: OpClear, Width: r.width, Height: r.height})
	return nil
}

// Present implements Presenter.
func (r *Recorder) Present() error {
	r.calls = append(r.calls, Call{Op: OpPresent})
	return nil
}

// Size returns the current surface size.
func (r *Recorder) Size() (width, height int) { return r.width, r.height }

// Calls returns a copy of the recorded calls in order.
func (r *Recorder) Calls() []Call {
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Draws returns only the recorded draw calls.
func (r *Recorder) Draws() []Call {
	var out []Call
	for _, c := range r.calls {
		if c.Op == OpDraw {
			out = append(out, c)
		}
	}
	return out
}

// Ops returns the recorded operation sequence.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Op
	}
	return out
}

// Reset forgets all recorded calls. Buffers stay allocated.
func (r *Recorder) Reset() { r.calls = r.calls[:0] }
