// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

var (
	// ErrUnsupportedContext is returned when no rasterization context can be
	// acquired. It is fatal at startup.
	ErrUnsupportedContext = errors.New("render: rasterization context not supported")

	// ErrShaderCompile is returned when a shader module fails to compile.
	ErrShaderCompile = errors.New("render: shader compilation failed")

	// ErrProgramLink is returned when shader stages cannot be linked into a
	// pipeline.
	ErrProgramLink = errors.New("render: pipeline link failed")

	// ErrInvalidVertexData is returned for uploads that are not a whole
	// number of vertex records, or draws past the end of the bound buffer.
	ErrInvalidVertexData = errors.New("render: invalid vertex data")

	// ErrInvalidSize is returned for non-positive surface dimensions.
	ErrInvalidSize = errors.New("render: invalid surface size")

	// ErrNoBuffer is returned when a buffer handle is unknown or no buffer
	// is bound at draw time.
	ErrNoBuffer = errors.New("render: no such buffer")
)
