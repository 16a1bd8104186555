package scene

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/clickshapes"
	"github.com/gogpu/clickshapes/render"
	"github.com/gogpu/clickshapes/shape"
)

// drawOrder is the order queues are drawn in each frame.
var drawOrder = [...]shape.Kind{
	shape.KindPoint,
	shape.KindCircle,
	shape.KindHorizontalLine,
	shape.KindVerticalLine,
	shape.KindTriangle,
	shape.KindSquare,
}

// keyAction mutates scene state in response to a key.
type keyAction func(s *Scene)

// keyBindings maps single-character keys to their actions.
var keyBindings = buildKeyBindings()

func buildKeyBindings() map[string]keyAction {
	m := make(map[string]keyAction)
	for _, c := range []shape.Color{shape.Red, shape.Green, shape.Blue} {
		m[string(rune(c.Code))] = func(s *Scene) { s.color = c }
	}
	for _, k := range shape.Kinds() {
		m[string(rune(k.Key()))] = func(s *Scene) { s.setMode(k) }
	}
	return m
}

// Scene is the drawing state machine: current color, current mode and one
// bounded queue per shape kind, rendered through a Rasterizer.
//
// Scene methods are safe for concurrent use; the rasterizer is only driven
// while the scene lock is held.
type Scene struct {
	mu     sync.Mutex
	r      render.Rasterizer
	buf    render.Buffer
	queues map[shape.Kind]*Queue
	color  shape.Color
	mode   shape.Kind
	opts   options
}

// New creates a scene drawing through r and renders the first (empty)
// frame. A nil rasterizer or a failure to allocate the vertex buffer
// reports render.ErrUnsupportedContext.
func New(r render.Rasterizer, opts ...Option) (*Scene, error) {
	if r == nil {
		return nil, fmt.Errorf("scene: nil rasterizer: %w", render.ErrUnsupportedContext)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Scene{
		r:      r,
		queues: make(map[shape.Kind]*Queue, len(drawOrder)),
		color:  o.color,
		mode:   o.mode,
		opts:   o,
	}
	for _, k := range shape.Kinds() {
		q, err := NewQueue(k, topologyFor(k), o.capacity)
		if err != nil {
			return nil, err
		}
		s.queues[k] = q
	}

	buf, err := r.CreateBuffer()
	if err != nil {
		return nil, fmt.Errorf("scene: create vertex buffer: %w: %w", render.ErrUnsupportedContext, err)
	}
	s.buf = buf

	s.publishLabel()
	s.logger().Debug("scene created", "capacity", o.capacity, "mode", s.mode, "color", s.color.Code)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.redraw(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) logger() *slog.Logger {
	if s.opts.logger != nil {
		return s.opts.logger
	}
	return clickshapes.ComponentLogger("scene")
}

// HandlePointerDown creates a shape of the current mode at the event
// position with the current color, queues it and redraws.
//
// Horizontal lines use only Y, vertical lines only X and triangles treat
// the position as their centre.
func (s *Scene) HandlePointerDown(ev PointerEvent) error {
	if ev.Target == "" {
		return ErrMissingTarget
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sh, err := shape.New(s.mode, shape.Params{X: float32(ev.X), Y: float32(ev.Y)}, s.color)
	if err != nil {
		return err
	}
	q := s.queues[sh.Kind()]
	evicted, ok, err := q.push(sh)
	if err != nil {
		return err
	}

	log := s.logger()
	log.Debug("shape added", "kind", sh.Kind(), "id", sh.ID(), "x", ev.X, "y", ev.Y, "color", sh.Color().Code)
	if ok {
		log.Debug("shape evicted", "kind", evicted.Kind(), "id", evicted.ID())
	}
	return s.redraw()
}

// HandleKeyDown applies the binding for key and reports whether the key is
// bound. Unbound keys change nothing. Key handling never redraws.
func (s *Scene) HandleKeyDown(key string) bool {
	action, ok := keyBindings[key]
	if !ok {
		return false
	}
	s.mu.Lock()
	action(s)
	s.mu.Unlock()
	return true
}

func (s *Scene) setMode(k shape.Kind) {
	s.mode = k
	s.publishLabel()
}

func (s *Scene) publishLabel() {
	if s.opts.labelSink != nil {
		s.opts.labelSink.SetModeLabel(s.mode.Label())
	}
}

// Redraw clears the surface and draws every non-empty queue in draw order.
// It returns once the frame is complete.
func (s *Scene) Redraw() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.redraw()
}

func (s *Scene) redraw() error {
	if err := s.r.Clear(); err != nil {
		return fmt.Errorf("scene: clear: %w", err)
	}
	for _, k := range drawOrder {
		if err := s.queues[k].Draw(s.r, s.buf); err != nil {
			return err
		}
	}
	if p, ok := s.r.(render.Presenter); ok {
		if err := p.Present(); err != nil {
			return fmt.Errorf("scene: present: %w", err)
		}
	}
	return nil
}

// Resize changes the surface size and redraws.
func (s *Scene) Resize(width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.r.Resize(width, height); err != nil {
		return err
	}
	return s.redraw()
}

// Reset empties every queue and redraws. Color and mode are kept.
func (s *Scene) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.queues {
		q.Reset()
	}
	s.logger().Debug("scene reset")
	return s.redraw()
}

// Mode returns the current drawing mode.
func (s *Scene) Mode() shape.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// ModeLabel returns the label of the current mode.
func (s *Scene) ModeLabel() string { return s.Mode().Label() }

// Color returns the current color.
func (s *Scene) Color() shape.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.color
}

// Queue returns the queue for kind, or nil for an unknown kind.
// The queue must not be modified while the scene is in use.
func (s *Scene) Queue(kind shape.Kind) *Queue { return s.queues[kind] }

// Rasterizer returns the rasterizer the scene draws through.
func (s *Scene) Rasterizer() render.Rasterizer { return s.r }

// State is a point-in-time copy of the scene.
type State struct {
	Mode   shape.Kind
	Color  shape.Color
	Shapes map[shape.Kind][]shape.Shape
}

// State returns a snapshot of the current mode, color and queued shapes.
func (s *Scene) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{
		Mode:   s.mode,
		Color:  s.color,
		Shapes: make(map[shape.Kind][]shape.Shape, len(s.queues)),
	}
	for k, q := range s.queues {
		st.Shapes[k] = q.Shapes()
	}
	return st
}
