// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framebuffer

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Presentation errors.
var (
	// ErrNilDrawContext is returned when Present gets a nil draw context.
	ErrNilDrawContext = errors.New("framebuffer: nil draw context")

	// ErrNoTextureCreator is returned when the draw context cannot create textures.
	ErrNoTextureCreator = errors.New("framebuffer: draw context has no texture creator")
)

// textureDestroyer matches host textures that own GPU memory.
type textureDestroyer interface {
	Destroy()
}

// Present uploads the buffer to a host texture and draws it at (x, y).
//
// The texture is created on the first call and updated in place afterwards
// when the host supports gpucontext.TextureUpdater. The window, surface and
// event loop stay with the host application.
func (f *Framebuffer) Present(dc gpucontext.TextureDrawer, x, y float32) error {
	if dc == nil {
		return ErrNilDrawContext
	}

	data := f.rgba()

	if f.texture != nil {
		if updater, ok := f.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(data); err != nil {
				return fmt.Errorf("framebuffer: texture update failed: %w", err)
			}
		} else {
			f.Release()
		}
	}

	if f.texture == nil {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrNoTextureCreator
		}
		tex, err := creator.NewTextureFromRGBA(f.width, f.height, data)
		if err != nil {
			return fmt.Errorf("framebuffer: NewTextureFromRGBA failed: %w", err)
		}
		f.texture = tex
	}

	return dc.DrawTexture(f.texture, x, y)
}

// Release destroys the host texture created by Present, if any.
func (f *Framebuffer) Release() {
	if d, ok := f.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	f.texture = nil
}
