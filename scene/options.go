package scene

import (
	"log/slog"

	"github.com/gogpu/clickshapes/shape"
)

// Option configures a Scene.
type Option func(*options)

type options struct {
	capacity  int
	logger    *slog.Logger
	labelSink LabelSink
	color     shape.Color
	mode      shape.Kind
}

func defaultOptions() options {
	return options{
		capacity: DefaultCapacity,
		color:    shape.Red,
		mode:     shape.KindPoint,
	}
}

// WithCapacity sets the per-kind queue capacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger sets the scene logger. By default the scene logs through
// clickshapes.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithLabelSink installs the receiver of mode label updates.
func WithLabelSink(sink LabelSink) Option {
	return func(o *options) {
		o.labelSink = sink
	}
}

// WithInitialColor sets the starting color. The default is red.
func WithInitialColor(c shape.Color) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithInitialMode sets the starting mode. The default is point.
// Unknown kinds are ignored.
func WithInitialMode(k shape.Kind) Option {
	return func(o *options) {
		if k.Valid() {
			o.mode = k
		}
	}
}
