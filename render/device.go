// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// A host that already owns a device (a windowing framework, an editor)
// passes it in instead of letting the GPU rasterizer open its own, so both
// share resources. Implementations must also expose the HAL device and
// queue through HalDevice() and HalQueue().
type DeviceHandle = gpucontext.DeviceProvider

// SurfaceFormat is the color format of GPU render targets. Readback converts
// it to RGBA.
const SurfaceFormat = gputypes.TextureFormatBGRA8Unorm

// CopyRowAlignment is the required byte alignment of rows in a
// texture-to-buffer copy.
const CopyRowAlignment = 256

// AlignedBytesPerRow returns the padded row size for a texture copy of the
// given width at 4 bytes per pixel.
func AlignedBytesPerRow(width int) uint32 {
	row := uint32(width) * 4
	return (row + CopyRowAlignment - 1) &^ (CopyRowAlignment - 1)
}
