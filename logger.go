package clickshapes

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// attribute formatting altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger. Hosts may swap it while a scene is
// drawing from another goroutine, so access is atomic.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger shared by clickshapes and its
// sub-packages. Logging is off until SetLogger is called; passing nil turns
// it off again.
//
// Levels:
//   - [slog.LevelDebug]: shape adds, evictions, per-frame draw batches
//   - [slog.LevelInfo]: lifecycle (rasterizer opened, surface resized)
//   - [slog.LevelWarn]: non-fatal trouble (GPU fallback, release errors)
//
// Example:
//
//	clickshapes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// ComponentLogger returns the current logger tagged with a component name.
// The result is bound to the logger active at call time.
func ComponentLogger(component string) *slog.Logger {
	return Logger().With("component", component)
}
