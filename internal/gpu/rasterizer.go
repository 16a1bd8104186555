//go:build !nogpu

package gpu

import (
	"fmt"
	"image"

	"github.com/gogpu/clickshapes"
	"github.com/gogpu/clickshapes/render"
	"github.com/gogpu/wgpu/hal"
)

// drawCommand is one recorded draw: a private copy of the vertex bytes and
// the topology to draw them with.
type drawCommand struct {
	topology    render.Topology
	data        []byte
	vertexCount uint32
}

// Rasterizer renders shape batches on a GPU device.
//
// Not safe for concurrent use.
type Rasterizer struct {
	device     hal.Device
	queue      hal.Queue
	instance   hal.Instance
	ownsDevice bool

	width, height int

	staged map[render.Buffer][]byte
	next   render.Buffer
	bound  render.Buffer
	frame  []drawCommand

	pipes    pipelines
	textures targetTextures

	img *image.RGBA
}

// New creates a rasterizer on an existing device and queue. The device
// stays owned by the caller.
func New(device hal.Device, queue hal.Queue, width, height int) (*Rasterizer, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("gpu: nil device or queue: %w", render.ErrUnsupportedContext)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", render.ErrInvalidSize, width, height)
	}
	return &Rasterizer{
		device: device,
		queue:  queue,
		width:  width,
		height: height,
		staged: make(map[render.Buffer][]byte),
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}, nil
}

// CreateBuffer implements render.Rasterizer. GPU buffers are allocated per
// frame in Present; the handle names a CPU staging area.
func (r *Rasterizer) CreateBuffer() (render.Buffer, error) {
	r.next++
	r.staged[r.next] = nil
	return r.next, nil
}

// UploadData implements render.Rasterizer.
func (r *Rasterizer) UploadData(buf render.Buffer, data []byte) error {
	if _, ok := r.staged[buf]; !ok {
		return fmt.Errorf("%w: %d", render.ErrNoBuffer, buf)
	}
	if len(data)%render.VertexStride != 0 {
		return fmt.Errorf("%w: %d bytes is not a multiple of %d", render.ErrInvalidVertexData, len(data), render.VertexStride)
	}
	r.staged[buf] = append(r.staged[buf][:0], data...)
	r.bound = buf
	return nil
}

// Draw implements render.Rasterizer. The bound bytes are copied, so later
// uploads to the same buffer do not affect this draw.
func (r *Rasterizer) Draw(topology render.Topology, vertexCount int) error {
	data, ok := r.staged[r.bound]
	if !ok {
		return render.ErrNoBuffer
	}
	if err := render.CheckDraw(topology, vertexCount, len(data)/render.VertexStride); err != nil {
		return err
	}
	if vertexCount == 0 {
		return nil
	}
	snapshot := make([]byte, vertexCount*render.VertexStride)
	copy(snapshot, data)
	r.frame = append(r.frame, drawCommand{
		topology:    topology,
		data:        snapshot,
		vertexCount: uint32(vertexCount), //nolint:gosec // bounded by staged data
	})
	return nil
}

// Clear implements render.Rasterizer by starting a new frame. The render
// pass of the frame clears to transparent black.
func (r *Rasterizer) Clear() error {
	r.frame = r.frame[:0]
	return nil
}

// Resize implements render.Rasterizer. Render targets are recreated on the
// next Present.
func (r *Rasterizer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", render.ErrInvalidSize, width, height)
	}
	r.width, r.height = width, height
	r.img = image.NewRGBA(image.Rect(0, 0, width, height))
	clickshapes.Logger().Info("surface resized", "component", "gpu", "width", width, "height", height)
	return nil
}

// Size returns the surface size in pixels.
func (r *Rasterizer) Size() (width, height int) { return r.width, r.height }

// Image returns the last presented frame.
func (r *Rasterizer) Image() image.Image { return r.img }

// Pending returns the number of draws recorded since the last Clear.
func (r *Rasterizer) Pending() int { return len(r.frame) }

// Destroy releases all GPU resources. A device opened by Open is destroyed
// too. Safe to call more than once.
func (r *Rasterizer) Destroy() {
	if r.device == nil {
		return
	}
	r.textures.destroy(r.device)
	r.pipes.destroy(r.device)
	if r.ownsDevice {
		r.device.Destroy()
	}
	if r.instance != nil {
		r.instance.Destroy()
		r.instance = nil
	}
	r.device = nil
	r.queue = nil
}
