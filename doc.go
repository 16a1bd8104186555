// Package clickshapes is an interactive 2-D shape-drawing demo rendered
// through a GPU rasterization API.
//
// # Overview
//
// A user clicks on a canvas to place points, lines, triangles, squares or
// circles in a selectable color. Each click builds a shape, appends it to a
// bounded per-kind queue and redraws the whole scene.
//
// # Architecture
//
//   - shape: colors, vertices and the six shape kinds
//   - scene: bounded render queues and the Scene orchestrator
//   - render: the rasterization boundary, plus recording and CPU rasterizers
//   - internal/gpu: WebGPU rasterizer built on gogpu/wgpu
//   - internal/tui: terminal host wiring input and the mode label
//
// # Quick Start
//
//	r, err := render.NewSoftwareRasterizer(800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, err := scene.New(r)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s.HandleKeyDown("c")
//	_ = s.HandlePointerDown(scene.PointerEvent{X: 100, Y: 100, Target: "canvas"})
//	_ = r.SavePNG("frame.png")
//
// # Coordinate System
//
// Pixel space with the origin at the top-left corner, X to the right and
// Y downward.
//
// # Logging
//
// Logging is silent by default; see [SetLogger].
package clickshapes

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
