// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/clickshapes/shape"
)

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func drawShape(t *testing.T, s *SoftwareRasterizer, sh shape.Shape, top Topology) {
	t.Helper()
	buf, err := s.CreateBuffer()
	if err != nil {
		t.Fatalf("CreateBuffer() error = %v", err)
	}
	if err := s.UploadData(buf, sh.Bytes()); err != nil {
		t.Fatalf("UploadData() error = %v", err)
	}
	if err := s.Draw(top, sh.VertexCount()); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
}

func TestNewSoftwareRasterizerInvalidSize(t *testing.T) {
	if _, err := NewSoftwareRasterizer(0, 10); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("error = %v, want ErrInvalidSize", err)
	}
}

func TestSoftwareClearIsTransparent(t *testing.T) {
	s, err := NewSoftwareRasterizer(32, 32)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if a := alphaAt(s.Image(), 16, 16); a != 0 {
		t.Errorf("alpha after Clear = %d, want 0", a)
	}
}

func TestSoftwareSprites(t *testing.T) {
	tests := []struct {
		name  string
		shape shape.Shape
	}{
		{"point", shape.NewPoint(20, 20, shape.Red)},
		{"square", shape.NewSquare(20, 20, shape.Green)},
		{"circle", shape.NewCircle(20, 20, shape.Blue)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := NewSoftwareRasterizer(40, 40)
			drawShape(t, s, tt.shape, TopologyPointList)

			img := s.Image()
			if a := alphaAt(img, 20, 20); a == 0 {
				t.Error("centre pixel not drawn")
			}
			if a := alphaAt(img, 2, 2); a != 0 {
				t.Errorf("corner alpha = %d, want 0", a)
			}
		})
	}
}

func TestSoftwareSpriteSizes(t *testing.T) {
	// A circle is 20px wide, a point only 3px.
	s, _ := NewSoftwareRasterizer(60, 60)
	drawShape(t, s, shape.NewCircle(15, 30, shape.Red), TopologyPointList)
	drawShape(t, s, shape.NewPoint(45, 30, shape.Red), TopologyPointList)

	img := s.Image()
	if a := alphaAt(img, 15+7, 30); a == 0 {
		t.Error("circle does not reach 7px from its centre")
	}
	if a := alphaAt(img, 45+4, 30); a != 0 {
		t.Errorf("point reaches 4px from its centre, alpha = %d", a)
	}
}

func TestSoftwareInfiniteLineReachesEdge(t *testing.T) {
	s, _ := NewSoftwareRasterizer(64, 32)
	drawShape(t, s, shape.NewHorizontalLine(16, shape.Red), TopologyLineList)

	img := s.Image()
	for _, x := range []int{1, 32, 62} {
		if alphaAt(img, x, 15) == 0 && alphaAt(img, x, 16) == 0 {
			t.Errorf("line missing at x=%d", x)
		}
	}
}

func TestSoftwareTriangle(t *testing.T) {
	s, _ := NewSoftwareRasterizer(100, 100)
	drawShape(t, s, shape.NewTriangle(50, 50, shape.Green), TopologyTriangleList)

	img := s.Image()
	if alphaAt(img, 50, 53) == 0 {
		t.Error("triangle interior not filled")
	}
	if alphaAt(img, 50, 30) != 0 {
		t.Error("pixel above the apex is filled")
	}
}

func TestSoftwareClampCoord(t *testing.T) {
	if got := clampCoord(math.Inf(1), 40); got != 40 {
		t.Errorf("clampCoord(+Inf) = %v, want 40", got)
	}
	if got := clampCoord(math.NaN(), 40); got != 0 {
		t.Errorf("clampCoord(NaN) = %v, want 0", got)
	}
	if got := clampCoord(math.Inf(-1), 40); got != 0 {
		t.Errorf("clampCoord(-Inf) = %v, want 0", got)
	}
	if got := clampCoord(12, 40); got != 12 {
		t.Errorf("clampCoord(12) = %v, want 12", got)
	}
}

func TestSoftwareResize(t *testing.T) {
	s, _ := NewSoftwareRasterizer(10, 10)
	if err := s.Resize(20, 30); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if w, h := s.Size(); w != 20 || h != 30 {
		t.Errorf("Size() = %dx%d, want 20x30", w, h)
	}
	if b := s.Image().Bounds(); b.Dx() != 20 || b.Dy() != 30 {
		t.Errorf("image bounds = %v", b)
	}
	if err := s.Resize(-1, 5); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(-1, 5) error = %v, want ErrInvalidSize", err)
	}
}

func TestSoftwareLabelOverlay(t *testing.T) {
	s, _ := NewSoftwareRasterizer(200, 40, WithLabelOverlay(), WithLabelSize(16))
	s.SetModeLabel("circle")
	if got := s.ModeLabel(); got != "circle" {
		t.Errorf("ModeLabel() = %q", got)
	}
	if err := s.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	img := s.Image()
	drawn := false
	for y := 0; y < 30 && !drawn; y++ {
		for x := 0; x < 80; x++ {
			if alphaAt(img, x, y) != 0 {
				drawn = true
				break
			}
		}
	}
	if !drawn {
		t.Error("label overlay left the surface empty")
	}
}

func TestSoftwarePresentWithoutOverlay(t *testing.T) {
	s, _ := NewSoftwareRasterizer(50, 20)
	s.SetModeLabel("point")
	if err := s.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if alphaAt(s.Image(), 8, 8) != 0 {
		t.Error("label drawn without overlay option")
	}
}

func TestSoftwareSavePNG(t *testing.T) {
	s, _ := NewSoftwareRasterizer(16, 16)
	drawShape(t, s, shape.NewSquare(8, 8, shape.Red), TopologyPointList)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("PNG not written: %v", err)
	}
}
