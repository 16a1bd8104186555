//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/clickshapes/render"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// targetTextures is the MSAA color target and its single-sample resolve
// texture, which is also the readback source.
type targetTextures struct {
	msaaTex     hal.Texture
	msaaView    hal.TextureView
	resolveTex  hal.Texture
	resolveView hal.TextureView
	width       uint32
	height      uint32
}

// ensure creates or recreates the textures when the size changed.
func (t *targetTextures) ensure(device hal.Device, w, h uint32) error {
	if t.width == w && t.height == h && t.msaaTex != nil {
		return nil
	}
	t.destroy(device)

	size := hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1}

	msaaTex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "shapes_msaa",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   sampleCount,
		Dimension:     gputypes.TextureDimension2D,
		Format:        render.SurfaceFormat,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("create MSAA texture: %w", err)
	}
	t.msaaTex = msaaTex

	msaaView, err := device.CreateTextureView(msaaTex, &hal.TextureViewDescriptor{
		Label:         "shapes_msaa_view",
		Format:        render.SurfaceFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		t.destroy(device)
		return fmt.Errorf("create MSAA view: %w", err)
	}
	t.msaaView = msaaView

	resolveTex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "shapes_resolve",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        render.SurfaceFormat,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		t.destroy(device)
		return fmt.Errorf("create resolve texture: %w", err)
	}
	t.resolveTex = resolveTex

	resolveView, err := device.CreateTextureView(resolveTex, &hal.TextureViewDescriptor{
		Label:         "shapes_resolve_view",
		Format:        render.SurfaceFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		t.destroy(device)
		return fmt.Errorf("create resolve view: %w", err)
	}
	t.resolveView = resolveView

	t.width = w
	t.height = h
	return nil
}

func (t *targetTextures) destroy(device hal.Device) {
	if t.resolveView != nil {
		device.DestroyTextureView(t.resolveView)
		t.resolveView = nil
	}
	if t.resolveTex != nil {
		device.DestroyTexture(t.resolveTex)
		t.resolveTex = nil
	}
	if t.msaaView != nil {
		device.DestroyTextureView(t.msaaView)
		t.msaaView = nil
	}
	if t.msaaTex != nil {
		device.DestroyTexture(t.msaaTex)
		t.msaaTex = nil
	}
	t.width = 0
	t.height = 0
}
