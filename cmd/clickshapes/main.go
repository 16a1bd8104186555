// Command clickshapes draws shapes from clicks and key presses.
//
// Interactive use runs a terminal canvas:
//
//	clickshapes -tui
//
// Headless use replays events and writes the final frame as PNG:
//
//	clickshapes -backend auto -out frame.png key=c click=40,40 key=t key=g click=90,60
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/clickshapes"
	"github.com/gogpu/clickshapes/internal/gpu"
	"github.com/gogpu/clickshapes/internal/tui"
	"github.com/gogpu/clickshapes/render"
	"github.com/gogpu/clickshapes/scene"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "clickshapes:", err)
		os.Exit(1)
	}
}

type config struct {
	width, height int
	backend       string
	out           string
	tui           bool
	verbose       bool
	capacity      int
	events        []event
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("clickshapes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.width, "width", 800, "surface width in pixels")
	fs.IntVar(&cfg.height, "height", 600, "surface height in pixels")
	fs.StringVar(&cfg.backend, "backend", "auto", "rasterizer: software, gpu or auto")
	fs.StringVar(&cfg.out, "out", "", "write the final frame to this PNG file")
	fs.BoolVar(&cfg.tui, "tui", false, "run the interactive terminal canvas")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging to stderr")
	fs.IntVar(&cfg.capacity, "capacity", scene.DefaultCapacity, "shapes kept per kind")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch cfg.backend {
	case "software", "gpu", "auto":
	default:
		return cfg, fmt.Errorf("unknown backend %q", cfg.backend)
	}
	for _, arg := range fs.Args() {
		ev, err := parseEvent(arg)
		if err != nil {
			return cfg, err
		}
		cfg.events = append(cfg.events, ev)
	}
	return cfg, nil
}

func run(args []string, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.verbose {
		clickshapes.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []scene.Option{scene.WithCapacity(cfg.capacity)}

	if cfg.tui {
		m, err := tui.New(opts...)
		if err != nil {
			return err
		}
		return tui.Run(m)
	}

	r, release, err := openRasterizer(cfg)
	if err != nil {
		return err
	}
	defer release()

	if sink, ok := r.(scene.LabelSink); ok {
		opts = append(opts, scene.WithLabelSink(sink))
	}
	s, err := scene.New(r, opts...)
	if err != nil {
		return err
	}
	if err := replay(s, cfg.events); err != nil {
		return err
	}
	// Key presses do not redraw; finish with a frame that shows the final
	// mode label.
	if err := s.Redraw(); err != nil {
		return err
	}

	if cfg.out == "" {
		return nil
	}
	src, ok := r.(interface{ Image() image.Image })
	if !ok {
		return fmt.Errorf("backend %q cannot produce an image", cfg.backend)
	}
	return writePNG(cfg.out, src.Image())
}

// openRasterizer returns the configured rasterizer and its release func.
func openRasterizer(cfg config) (render.Rasterizer, func(), error) {
	if cfg.backend != "software" {
		g, err := gpu.Open(cfg.width, cfg.height)
		switch {
		case err == nil:
			return g, g.Destroy, nil
		case cfg.backend == "gpu" || !errors.Is(err, render.ErrUnsupportedContext):
			return nil, nil, err
		}
		clickshapes.Logger().Warn("GPU not available, using software rasterizer", "err", err)
	}
	sw, err := render.NewSoftwareRasterizer(cfg.width, cfg.height, render.WithLabelOverlay())
	if err != nil {
		return nil, nil, err
	}
	return sw, func() {}, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
