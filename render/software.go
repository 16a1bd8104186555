// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/clickshapes"
	"github.com/gogpu/clickshapes/shape"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Default label overlay settings.
const (
	DefaultLabelSize = 14.0
	labelMargin      = 4.0
)

// SoftwareOption configures a SoftwareRasterizer.
type SoftwareOption func(*softwareOptions)

type softwareOptions struct {
	labelOverlay bool
	labelSize    float64
	labelColor   [3]float64
	lineWidth    float64
}

func defaultSoftwareOptions() softwareOptions {
	return softwareOptions{
		labelSize:  DefaultLabelSize,
		labelColor: [3]float64{1, 1, 1},
		lineWidth:  1,
	}
}

// WithLabelOverlay draws the current mode label in the top-left corner at
// the end of every frame.
func WithLabelOverlay() SoftwareOption {
	return func(o *softwareOptions) {
		o.labelOverlay = true
	}
}

// WithLabelSize sets the label font size in points.
func WithLabelSize(size float64) SoftwareOption {
	return func(o *softwareOptions) {
		if size > 0 {
			o.labelSize = size
		}
	}
}

// WithLabelColor sets the label color, components in [0, 1].
func WithLabelColor(r, g, b float64) SoftwareOption {
	return func(o *softwareOptions) {
		o.labelColor = [3]float64{r, g, b}
	}
}

// WithLineWidth sets the stroke width used for line lists.
func WithLineWidth(w float64) SoftwareOption {
	return func(o *softwareOptions) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// SoftwareRasterizer renders vertex batches on the CPU with a gg.Context.
//
// Point-list vertices become filled sprites (discs for circles, squares
// otherwise), line lists are stroked and triangle lists filled. Coordinates
// that are not finite are clamped to the surface extent, so full-surface
// lines reach the far edge.
type SoftwareRasterizer struct {
	dc      *gg.Context
	opts    softwareOptions
	buffers map[Buffer][]shape.Vertex
	next    Buffer
	bound   Buffer
	label   string
	face    text.Face
}

// NewSoftwareRasterizer creates a CPU rasterizer with a transparent surface.
func NewSoftwareRasterizer(width, height int, opts ...SoftwareOption) (*SoftwareRasterizer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	o := defaultSoftwareOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SoftwareRasterizer{
		dc:      gg.NewContext(width, height),
		opts:    o,
		buffers: make(map[Buffer][]shape.Vertex),
	}, nil
}

// CreateBuffer implements Rasterizer.
func (s *SoftwareRasterizer) CreateBuffer() (Buffer, error) {
	s.next++
	s.buffers[s.next] = nil
	return s.next, nil
}

// UploadData implements Rasterizer.
func (s *SoftwareRasterizer) UploadData(buf Buffer, data []byte) error {
	if _, ok := s.buffers[buf]; !ok {
		return fmt.Errorf("%w: %d", ErrNoBuffer, buf)
	}
	vs, err := DecodeVertices(data)
	if err != nil {
		return err
	}
	s.buffers[buf] = vs
	s.bound = buf
	return nil
}

// Draw implements Rasterizer.
func (s *SoftwareRasterizer) Draw(topology Topology, vertexCount int) error {
	vs, ok := s.buffers[s.bound]
	if !ok {
		return ErrNoBuffer
	}
	if err := CheckDraw(topology, vertexCount, len(vs)); err != nil {
		return err
	}
	vs = vs[:vertexCount]

	switch topology {
	case TopologyPointList:
		return s.drawSprites(vs)
	case TopologyLineList:
		return s.drawLines(vs)
	case TopologyTriangleList:
		return s.drawTriangles(vs)
	default:
		return fmt.Errorf("%w: topology %d", ErrInvalidVertexData, topology)
	}
}

func (s *SoftwareRasterizer) drawSprites(vs []shape.Vertex) error {
	for _, v := range vs {
		x, y := s.clamp(v)
		size := SpriteSize(v)
		s.setColor(v.Color)
		if v.IsCircle {
			s.dc.DrawCircle(x, y, size/2)
		} else {
			s.dc.DrawRectangle(x-size/2, y-size/2, size, size)
		}
		if err := s.dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func (s *SoftwareRasterizer) drawLines(vs []shape.Vertex) error {
	s.dc.SetLineWidth(s.opts.lineWidth)
	for i := 0; i+1 < len(vs); i += 2 {
		x0, y0 := s.clamp(vs[i])
		x1, y1 := s.clamp(vs[i+1])
		// Lines take the color of their first vertex.
		s.setColor(vs[i].Color)
		s.dc.MoveTo(x0, y0)
		s.dc.LineTo(x1, y1)
		if err := s.dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

func (s *SoftwareRasterizer) drawTriangles(vs []shape.Vertex) error {
	for i := 0; i+2 < len(vs); i += 3 {
		x0, y0 := s.clamp(vs[i])
		x1, y1 := s.clamp(vs[i+1])
		x2, y2 := s.clamp(vs[i+2])
		s.setColor(vs[i].Color)
		s.dc.MoveTo(x0, y0)
		s.dc.LineTo(x1, y1)
		s.dc.LineTo(x2, y2)
		s.dc.ClosePath()
		if err := s.dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func (s *SoftwareRasterizer) setColor(c shape.Color) {
	s.dc.SetRGBA(float64(c.RGB[0]), float64(c.RGB[1]), float64(c.RGB[2]), 1)
}

func (s *SoftwareRasterizer) clamp(v shape.Vertex) (x, y float64) {
	return clampCoord(float64(v.X), float64(s.dc.Width())), clampCoord(float64(v.Y), float64(s.dc.Height()))
}

// clampCoord maps +Inf to extent and -Inf or NaN to zero.
func clampCoord(v, extent float64) float64 {
	switch {
	case math.IsNaN(v), math.IsInf(v, -1):
		return 0
	case math.IsInf(v, 1):
		return extent
	}
	return v
}

// Resize implements Rasterizer. The surface is cleared.
func (s *SoftwareRasterizer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if err := s.dc.Resize(width, height); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSize, err)
	}
	clickshapes.Logger().Info("surface resized", "component", "render", "width", width, "height", height)
	return nil
}

// Clear implements Rasterizer.
func (s *SoftwareRasterizer) Clear() error {
	s.dc.Clear()
	return nil
}

// Present implements Presenter. With the label overlay enabled it draws the
// current mode label on top of the frame.
func (s *SoftwareRasterizer) Present() error {
	if !s.opts.labelOverlay || s.label == "" {
		return nil
	}
	return s.DrawLabel(s.label)
}

// SetModeLabel records the label drawn by the overlay.
func (s *SoftwareRasterizer) SetModeLabel(label string) { s.label = label }

// ModeLabel returns the label last passed to SetModeLabel.
func (s *SoftwareRasterizer) ModeLabel() string { return s.label }

// DrawLabel draws txt in the top-left corner using Go Regular.
func (s *SoftwareRasterizer) DrawLabel(txt string) error {
	if s.face == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return fmt.Errorf("render: load label font: %w", err)
		}
		s.face = src.Face(s.opts.labelSize)
	}
	c := s.opts.labelColor
	s.dc.SetFont(s.face)
	s.dc.SetRGBA(c[0], c[1], c[2], 1)
	s.dc.DrawStringAnchored(txt, labelMargin, labelMargin, 0, 0)
	return nil
}

// Size returns the surface size in pixels.
func (s *SoftwareRasterizer) Size() (width, height int) {
	return s.dc.Width(), s.dc.Height()
}

// Image returns the rendered surface.
func (s *SoftwareRasterizer) Image() image.Image { return s.dc.Image() }

// SavePNG writes the rendered surface to path.
func (s *SoftwareRasterizer) SavePNG(path string) error { return s.dc.SavePNG(path) }
