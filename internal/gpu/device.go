//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/clickshapes"
	"github.com/gogpu/clickshapes/render"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Register the Vulkan backend.
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// Open acquires a GPU device of its own and returns a rasterizer for a
// surface of the given size. Discrete and integrated GPUs are preferred over
// software adapters. Failure to find a backend or adapter wraps
// render.ErrUnsupportedContext.
func Open(width, height int) (*Rasterizer, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("gpu: vulkan backend not available: %w", render.ErrUnsupportedContext)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("gpu: create instance: %w: %w", render.ErrUnsupportedContext, err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("gpu: no adapters found: %w", render.ErrUnsupportedContext)
	}
	selected := &adapters[0]
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("gpu: open device: %w: %w", render.ErrUnsupportedContext, err)
	}

	r, err := New(openDev.Device, openDev.Queue, width, height)
	if err != nil {
		openDev.Device.Destroy()
		instance.Destroy()
		return nil, err
	}
	r.instance = instance
	r.ownsDevice = true

	clickshapes.Logger().Info("gpu rasterizer opened",
		"component", "gpu", "adapter", selected.Info.Name, "width", width, "height", height)
	return r, nil
}

// NewFromProvider creates a rasterizer on a device owned by the host. The
// provider must also implement HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue. The device is not destroyed by Destroy.
func NewFromProvider(provider render.DeviceHandle, width, height int) (*Rasterizer, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("gpu: provider does not expose HAL types: %w", render.ErrUnsupportedContext)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("gpu: provider HalDevice is not hal.Device: %w", render.ErrUnsupportedContext)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("gpu: provider HalQueue is not hal.Queue: %w", render.ErrUnsupportedContext)
	}
	return New(device, queue, width, height)
}
