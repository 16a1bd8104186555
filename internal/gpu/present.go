//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/gogpu/clickshapes"
	"github.com/gogpu/clickshapes/render"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// fenceTimeout bounds the wait for a submitted frame.
const fenceTimeout = 5 * time.Second

// frameResources are the GPU objects that live for one Present.
type frameResources struct {
	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup
	vertBufs   []hal.Buffer
}

func (f *frameResources) destroy(device hal.Device) {
	for _, b := range f.vertBufs {
		device.DestroyBuffer(b)
	}
	if f.bindGroup != nil {
		device.DestroyBindGroup(f.bindGroup)
	}
	if f.uniformBuf != nil {
		device.DestroyBuffer(f.uniformBuf)
	}
}

// Present implements render.Presenter. It uploads the recorded draws,
// renders them in one pass that clears to transparent black, waits for the
// GPU and reads the result back into Image.
func (r *Rasterizer) Present() error {
	if r.device == nil {
		return fmt.Errorf("gpu: present after destroy: %w", render.ErrUnsupportedContext)
	}
	w, h := uint32(r.width), uint32(r.height) //nolint:gosec // validated positive
	if err := r.textures.ensure(r.device, w, h); err != nil {
		return fmt.Errorf("gpu: %w", err)
	}
	if err := r.pipes.ensure(r.device); err != nil {
		return err
	}

	res, err := r.buildFrameResources(w, h)
	defer res.destroy(r.device)
	if err != nil {
		return err
	}

	if err := r.encodeSubmitReadback(w, h, res); err != nil {
		return fmt.Errorf("gpu: %w", err)
	}
	clickshapes.Logger().Debug("frame presented", "component", "gpu", "draws", len(r.frame))
	return nil
}

func (r *Rasterizer) buildFrameResources(w, h uint32) (*frameResources, error) {
	res := &frameResources{}

	uniformBuf, err := r.createAndUploadBuffer("shapes_uniform", makeViewportUniform(w, h),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return res, err
	}
	res.uniformBuf = uniformBuf

	bindGroup, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "shapes_bind",
		Layout: r.pipes.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: uniformSize,
			}},
		},
	})
	if err != nil {
		return res, fmt.Errorf("gpu: create bind group: %w", err)
	}
	res.bindGroup = bindGroup

	for i, cmd := range r.frame {
		buf, err := r.createAndUploadBuffer(fmt.Sprintf("shapes_verts_%d", i), cmd.data,
			gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
		if err != nil {
			return res, err
		}
		res.vertBufs = append(res.vertBufs, buf)
	}
	return res, nil
}

func (r *Rasterizer) encodeSubmitReadback(w, h uint32, res *frameResources) error {
	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "shapes_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("shapes_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "shapes_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:          r.textures.msaaView,
			ResolveTarget: r.textures.resolveView,
			LoadOp:        gputypes.LoadOpClear,
			StoreOp:       gputypes.StoreOpStore,
			ClearValue:    gputypes.Color{R: 0, G: 0, B: 0, A: 0},
		}},
	})
	for i, cmd := range r.frame {
		rp.SetPipeline(r.pipes.forTopology(cmd.topology))
		rp.SetBindGroup(0, res.bindGroup, nil)
		rp.SetVertexBuffer(0, res.vertBufs[i], 0)
		if cmd.topology == render.TopologyPointList {
			rp.Draw(spriteCorners, cmd.vertexCount, 0, 0)
		} else {
			rp.Draw(cmd.vertexCount, 1, 0, 0)
		}
	}
	rp.End()

	// The resolve texture leaves the pass as a render attachment; the copy
	// needs it as a copy source.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.textures.resolveTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	alignedBytesPerRow := render.AlignedBytesPerRow(int(w))
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)
	stagingBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "shapes_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return fmt.Errorf("create staging buffer: %w", err)
	}
	defer r.device.DestroyBuffer(stagingBuf)

	encoder.CopyTextureToBuffer(r.textures.resolveTex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: r.textures.resolveTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.textures.resolveTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	fence, err := r.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer r.device.DestroyFence(fence)

	if err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := r.device.Wait(fence, 1, fenceTimeout)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	readback := make([]byte, stagingSize)
	if err := r.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return fmt.Errorf("readback: %w", err)
	}
	r.img = bgraToRGBA(readback, int(w), int(h), int(alignedBytesPerRow))
	return nil
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (r *Rasterizer) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create %s: %w", label, err)
	}
	r.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// makeViewportUniform encodes the surface resolution as vec2<f32> plus
// padding.
func makeViewportUniform(w, h uint32) []byte {
	buf := make([]byte, uniformSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(float32(w)))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(float32(h)))
	return buf
}

// bgraToRGBA converts row-padded BGRA readback data into an RGBA image.
// The GPU output is premultiplied, which is also what image.RGBA stores.
func bgraToRGBA(src []byte, w, h, stride int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := src[y*stride:]
		out := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			i := x * 4
			out[i+0] = row[i+2]
			out[i+1] = row[i+1]
			out[i+2] = row[i+0]
			out[i+3] = row[i+3]
		}
	}
	return img
}
