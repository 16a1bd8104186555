// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/clickshapes/shape"
)

func readRecord(b []byte) shape.Record {
	var r shape.Record
	for i := range r {
		r[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*shape.FloatSize:]))
	}
	return r
}
