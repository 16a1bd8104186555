package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/clickshapes/scene"
)

// event is one replayed input: a key press or a click.
type event struct {
	key   string
	click bool
	x, y  float64
}

// parseEvent parses "key=<k>" or "click=<x>,<y>".
func parseEvent(arg string) (event, error) {
	name, value, ok := strings.Cut(arg, "=")
	if !ok {
		return event{}, fmt.Errorf("event %q: want key=<k> or click=<x>,<y>", arg)
	}
	switch name {
	case "key":
		if value == "" {
			return event{}, fmt.Errorf("event %q: empty key", arg)
		}
		return event{key: value}, nil
	case "click":
		xs, ys, ok := strings.Cut(value, ",")
		if !ok {
			return event{}, fmt.Errorf("event %q: want click=<x>,<y>", arg)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return event{}, fmt.Errorf("event %q: %w", arg, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return event{}, fmt.Errorf("event %q: %w", arg, err)
		}
		return event{click: true, x: x, y: y}, nil
	default:
		return event{}, fmt.Errorf("event %q: unknown kind %q", arg, name)
	}
}

// replay feeds events to s in order. Unbound keys are ignored like any
// other key press.
func replay(s *scene.Scene, events []event) error {
	for _, ev := range events {
		if !ev.click {
			s.HandleKeyDown(ev.key)
			continue
		}
		err := s.HandlePointerDown(scene.PointerEvent{X: ev.x, Y: ev.y, Target: "canvas"})
		if err != nil {
			return err
		}
	}
	return nil
}
