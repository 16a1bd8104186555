package scene

// PointerEvent is a pointer press in surface pixel coordinates, origin at
// the top-left. Target names the element that received the press; an empty
// Target means the event did not originate from the drawing surface.
type PointerEvent struct {
	X, Y   float64
	Target string
}

// LabelSink receives the human-readable label of the current mode.
type LabelSink interface {
	SetModeLabel(label string)
}

// LabelSinkFunc adapts a function to LabelSink.
type LabelSinkFunc func(label string)

// SetModeLabel implements LabelSink.
func (f LabelSinkFunc) SetModeLabel(label string) { f(label) }
