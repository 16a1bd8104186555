package scene

import (
	"fmt"

	"github.com/gogpu/clickshapes/render"
	"github.com/gogpu/clickshapes/shape"
)

// DefaultCapacity is the number of shapes a queue keeps per kind.
const DefaultCapacity = 5

// Queue is a bounded FIFO of shapes of one kind. When full, adding a shape
// first evicts the oldest one, so the newest shape is always kept.
type Queue struct {
	kind     shape.Kind
	topology render.Topology
	capacity int
	shapes   []shape.Shape
}

// NewQueue creates an empty queue. Capacity must be at least one.
func NewQueue(kind shape.Kind, topology render.Topology, capacity int) (*Queue, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", shape.ErrUnknownKind, kind)
	}
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Queue{
		kind:     kind,
		topology: topology,
		capacity: capacity,
		shapes:   make([]shape.Shape, 0, capacity),
	}, nil
}

// Add appends s, evicting the oldest shape when the queue is full.
func (q *Queue) Add(s shape.Shape) error {
	_, _, err := q.push(s)
	return err
}

// push is Add that also reports the evicted shape.
func (q *Queue) push(s shape.Shape) (evicted shape.Shape, ok bool, err error) {
	if s.Kind() != q.kind {
		return shape.Shape{}, false, fmt.Errorf("%w: %v into %v queue", ErrKindMismatch, s.Kind(), q.kind)
	}
	if len(q.shapes) == q.capacity {
		evicted, ok = q.shapes[0], true
		copy(q.shapes, q.shapes[1:])
		q.shapes = q.shapes[:len(q.shapes)-1]
	}
	q.shapes = append(q.shapes, s)
	return evicted, ok, nil
}

// Len returns the number of queued shapes.
func (q *Queue) Len() int { return len(q.shapes) }

// Cap returns the queue capacity.
func (q *Queue) Cap() int { return q.capacity }

// Kind returns the kind of shape the queue accepts.
func (q *Queue) Kind() shape.Kind { return q.kind }

// Topology returns the primitive topology used to draw the queue.
func (q *Queue) Topology() render.Topology { return q.topology }

// Shapes returns the queued shapes, oldest first.
func (q *Queue) Shapes() []shape.Shape {
	out := make([]shape.Shape, len(q.shapes))
	copy(out, q.shapes)
	return out
}

// VertexCount returns the total vertex count of all queued shapes.
func (q *Queue) VertexCount() int {
	n := 0
	for _, s := range q.shapes {
		n += s.VertexCount()
	}
	return n
}

// Serialize concatenates the vertex records of all shapes in queue order.
func (q *Queue) Serialize() []float32 {
	out := make([]float32, 0, q.VertexCount()*shape.Stride)
	for _, s := range q.shapes {
		out = s.AppendTo(out)
	}
	return out
}

// Bytes returns Serialize as little-endian float32 bytes.
func (q *Queue) Bytes() []byte { return shape.PutFloats(q.Serialize()) }

// Draw uploads the queue into buf and issues one draw call with the queue
// topology. An empty queue issues nothing.
func (q *Queue) Draw(r render.Rasterizer, buf render.Buffer) error {
	if len(q.shapes) == 0 {
		return nil
	}
	if err := r.UploadData(buf, q.Bytes()); err != nil {
		return fmt.Errorf("scene: upload %v queue: %w", q.kind, err)
	}
	if err := r.Draw(q.topology, q.VertexCount()); err != nil {
		return fmt.Errorf("scene: draw %v queue: %w", q.kind, err)
	}
	return nil
}

// Reset removes all shapes.
func (q *Queue) Reset() { q.shapes = q.shapes[:0] }

// topologyFor returns the topology a kind is drawn with.
func topologyFor(k shape.Kind) render.Topology {
	switch k {
	case shape.KindHorizontalLine, shape.KindVerticalLine:
		return render.TopologyLineList
	case shape.KindTriangle:
		return render.TopologyTriangleList
	default:
		return render.TopologyPointList
	}
}
