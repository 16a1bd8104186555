// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render defines the rasterization boundary between the scene and a
// drawing surface.
//
// The scene hands interleaved vertex records (see package shape) to a
// [Rasterizer] and asks for one draw call per shape kind. A rasterizer owns
// everything below that line: attribute binding, the pixel-to-clip mapping,
// point sizes and circle anti-aliasing.
//
// # Rasterizer Implementations
//
//   - Recorder: keeps every call in memory; used by tests and headless runs
//   - SoftwareRasterizer: CPU rendering through gogpu/gg
//   - internal/gpu.Rasterizer: WebGPU rendering through gogpu/wgpu
//
// # Vertex Layout
//
// All implementations read the same 32-byte record. [VertexLayout] describes
// it in WebGPU terms:
//
//	location 0  position  float32x2  offset 0
//	location 1  color     float32x3  offset 8
//	location 2  isPoint   float32    offset 20
//	location 3  isCircle  float32    offset 24
//	location 4  isSquare  float32    offset 28
//
// # Point Sizes
//
// Point-list vertices are drawn as screen-aligned sprites: circles are 20px
// anti-aliased discs, points 3px squares and everything else 8px squares.
package render
