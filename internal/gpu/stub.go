//go:build nogpu

package gpu

import (
	"fmt"
	"image"

	"github.com/gogpu/clickshapes/render"
)

// Rasterizer is unavailable in nogpu builds.
type Rasterizer struct{}

var errNoGPU = fmt.Errorf("gpu: built with nogpu: %w", render.ErrUnsupportedContext)

// Open always fails in nogpu builds.
func Open(width, height int) (*Rasterizer, error) { return nil, errNoGPU }

// NewFromProvider always fails in nogpu builds.
func NewFromProvider(provider render.DeviceHandle, width, height int) (*Rasterizer, error) {
	return nil, errNoGPU
}

func (*Rasterizer) CreateBuffer() (render.Buffer, error)   { return 0, errNoGPU }
func (*Rasterizer) UploadData(render.Buffer, []byte) error { return errNoGPU }
func (*Rasterizer) Draw(render.Topology, int) error        { return errNoGPU }
func (*Rasterizer) Resize(int, int) error                  { return errNoGPU }
func (*Rasterizer) Clear() error                           { return errNoGPU }
func (*Rasterizer) Present() error                         { return errNoGPU }
func (*Rasterizer) Size() (int, int)                       { return 0, 0 }
func (*Rasterizer) Image() image.Image                     { return image.NewRGBA(image.Rectangle{}) }
func (*Rasterizer) Destroy()                               {}
