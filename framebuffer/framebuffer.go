// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package framebuffer provides a CPU pixel buffer that serves as a trirast
// sink.
//
// Pixels are addressed by (x, y) and packed according to a
// gputypes.TextureFormat, so the same buffer can be uploaded to a GPU texture
// of that format without conversion.
package framebuffer

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/trirast"
)

// Framebuffer errors.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("framebuffer: invalid dimensions")

	// ErrUnsupportedFormat is returned for texture formats the framebuffer
	// cannot pack.
	ErrUnsupportedFormat = errors.New("framebuffer: unsupported format")
)

// Framebuffer is a bounds-checked pixel buffer.
//
// Thread safety: concurrent SetPixel calls are safe as long as they target
// different pixels, which is what the rasterizer guarantees within a draw.
// Clear and the read methods require external synchronization with writers.
type Framebuffer struct {
	width  int
	height int
	format gputypes.TextureFormat
	bpp    int
	stride int
	pix    []byte

	// texture is the host texture created by the last Present.
	texture gpucontext.Texture
}

// New allocates a framebuffer cleared to zero.
//
// Supported formats are TextureFormatRGBA8Unorm, TextureFormatBGRA8Unorm and
// TextureFormatR8Unorm.
func New(width, height int, format gputypes.TextureFormat) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	bpp := bytesPerPixel(format)
	if bpp == 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	return &Framebuffer{
		width:  width,
		height: height,
		format: format,
		bpp:    bpp,
		stride: width * bpp,
		pix:    make([]byte, width*height*bpp),
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (hardcoded dimensions).
func MustNew(width, height int, format gputypes.TextureFormat) *Framebuffer {
	f, err := New(width, height, format)
	if err != nil {
		panic(err)
	}
	return f
}

func bytesPerPixel(format gputypes.TextureFormat) int {
	switch format {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return 4
	case gputypes.TextureFormatR8Unorm:
		return 1
	default:
		return 0
	}
}

// Width returns the width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Format returns the pixel format.
func (f *Framebuffer) Format() gputypes.TextureFormat {
	return f.format
}

// Stride returns the number of bytes per row.
func (f *Framebuffer) Stride() int {
	return f.stride
}

// Pix returns the packed pixel data. The slice shares memory with f.
func (f *Framebuffer) Pix() []byte {
	return f.pix
}

// Bounds returns the pixel rectangle. It also lets the rasterizer skip
// blocks that fall outside the buffer.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// SetPixel stores c at (x, y). Writes outside the buffer are dropped.
func (f *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := y*f.stride + x*f.bpp
	switch f.format {
	case gputypes.TextureFormatRGBA8Unorm:
		f.pix[i+0] = c.R
		f.pix[i+1] = c.G
		f.pix[i+2] = c.B
		f.pix[i+3] = c.A
	case gputypes.TextureFormatBGRA8Unorm:
		f.pix[i+0] = c.B
		f.pix[i+1] = c.G
		f.pix[i+2] = c.R
		f.pix[i+3] = c.A
	case gputypes.TextureFormatR8Unorm:
		f.pix[i] = c.R
	}
}

// Pixel returns the color at (x, y), or transparent black outside the
// buffer. R8 pixels read back as opaque red.
func (f *Framebuffer) Pixel(x, y int) color.RGBA {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return color.RGBA{}
	}
	i := y*f.stride + x*f.bpp
	switch f.format {
	case gputypes.TextureFormatRGBA8Unorm:
		return color.RGBA{R: f.pix[i], G: f.pix[i+1], B: f.pix[i+2], A: f.pix[i+3]}
	case gputypes.TextureFormatBGRA8Unorm:
		return color.RGBA{R: f.pix[i+2], G: f.pix[i+1], B: f.pix[i], A: f.pix[i+3]}
	default:
		return color.RGBA{R: f.pix[i], A: 255}
	}
}

// Clear fills the whole buffer with c.
func (f *Framebuffer) Clear(c color.RGBA) {
	if len(f.pix) == 0 {
		return
	}
	// Pack the first pixel, then double the filled prefix.
	f.SetPixel(0, 0, c)
	for filled := f.bpp; filled < len(f.pix); filled *= 2 {
		copy(f.pix[filled:], f.pix[:filled])
	}
}

// Image returns an RGBA copy of the buffer.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(f.Bounds())
	if f.format == gputypes.TextureFormatRGBA8Unorm {
		copy(img.Pix, f.pix)
		return img
	}
	for y := range f.height {
		for x := range f.width {
			img.SetRGBA(x, y, f.Pixel(x, y))
		}
	}
	return img
}

// rgba returns the buffer as tightly packed RGBA bytes, sharing memory when
// the format already is RGBA8.
func (f *Framebuffer) rgba() []byte {
	if f.format == gputypes.TextureFormatRGBA8Unorm {
		return f.pix
	}
	return f.Image().Pix
}

// Compile-time interface checks.
var (
	_ trirast.Sink    = (*Framebuffer)(nil)
	_ trirast.Bounded = (*Framebuffer)(nil)
)
