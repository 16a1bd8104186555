// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu implements render.Rasterizer on WebGPU through the gogpu/wgpu
// HAL.
//
// A frame is collected on the CPU and submitted as one render pass:
//
//	Clear       start a new frame
//	UploadData  stage vertex bytes for a buffer handle
//	Draw        snapshot the staged bytes into a draw command
//	Present     upload, encode, submit, wait, read back
//
// Point-list draws are rendered as instanced sprite quads because WebGPU has
// no point size. Line and triangle lists are drawn directly. The render
// target is 4x MSAA BGRA8, resolved and copied back into an RGBA image.
//
// Building with the nogpu tag replaces the package with a stub whose Open
// always fails with render.ErrUnsupportedContext.
package gpu
