// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package trirast

import (
	"image"
	"image/color"
)

// Sink receives the rasterizer's pixel writes.
//
// The rasterizer never reads pixels back. SetPixel is called concurrently
// from several workers, but never for the same (x, y) twice within one
// triangle, so a plain pixel buffer needs no locking.
type Sink interface {
	SetPixel(x, y int, c color.RGBA)
}

// Bounded is implemented by sinks with a fixed pixel area. When the sink
// passed to a draw call implements it, blocks outside the area are skipped
// and no write lands outside it.
type Bounded interface {
	Bounds() image.Rectangle
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(x, y int, c color.RGBA)

// SetPixel calls fn(x, y, c).
func (fn SinkFunc) SetPixel(x, y int, c color.RGBA) {
	fn(x, y, c)
}
