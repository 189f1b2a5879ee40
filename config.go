// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package trirast

import (
	"fmt"
	"math/bits"
)

const (
	// DefaultBlockSize is the side of a rasterization block in pixels.
	DefaultBlockSize = 8

	// MaxBlockSize is the largest accepted block side.
	MaxBlockSize = 256

	// DefaultSubpixelBits is the default vertex snapping precision (1/256 pixel).
	DefaultSubpixelBits = 8

	// MaxSubpixelBits bounds SubpixelBits so that edge arithmetic stays exact
	// in float64 for canvases up to 32768 pixels on a side.
	MaxSubpixelBits = 16
)

// BlockMode selects how blocks that touch the triangle are rasterized.
type BlockMode int

const (
	// BlockModeAuto classifies every block by its corners and skips the
	// per-pixel edge test for fully covered blocks (default).
	BlockModeAuto BlockMode = iota

	// BlockModePerPixel runs the per-pixel edge test for every block that is
	// not entirely outside. Output is identical to BlockModeAuto; use it to
	// isolate classifier bugs or to benchmark the trivial-accept path.
	BlockModePerPixel
)

// String returns the block mode name.
func (m BlockMode) String() string {
	switch m {
	case BlockModeAuto:
		return "Auto"
	case BlockModePerPixel:
		return "PerPixel"
	default:
		return "Unknown"
	}
}

// Config holds the rasterizer options.
//
// The zero value is not valid; start from DefaultConfig.
type Config struct {
	// BlockSize is the side length of a rasterization block in pixels.
	// Must be a power of two in [1, MaxBlockSize].
	BlockSize int

	// InterpolateDepth enables the Z interpolant.
	InterpolateDepth bool

	// InterpolateReciprocalW enables the 1/W interpolant. It is turned on
	// implicitly when PerspectiveVarCount > 0.
	InterpolateReciprocalW bool

	// AffineVarCount is the number of Vertex.Affine slots to interpolate.
	AffineVarCount int

	// PerspectiveVarCount is the number of Vertex.Perspective slots to
	// interpolate with perspective correction.
	PerspectiveVarCount int

	// Workers is the number of goroutines processing blocks.
	// Zero or negative means GOMAXPROCS; 1 rasterizes on the calling goroutine.
	Workers int

	// SubpixelBits snaps vertex X and Y to a 1/2^SubpixelBits pixel grid
	// before edge setup. Zero disables snapping, which also drops the
	// exactly-once coverage guarantee for vertices that are not already on
	// a coarse dyadic grid: edge values of arbitrary float64 positions are
	// rounded, and a pixel center near an edge may be classified
	// differently by the block and per-pixel tests.
	SubpixelBits int

	// BlockMode selects trivial-accept behavior.
	BlockMode BlockMode
}

// DefaultConfig returns a configuration that interpolates color only.
func DefaultConfig() Config {
	return Config{
		BlockSize:    DefaultBlockSize,
		SubpixelBits: DefaultSubpixelBits,
	}
}

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	if c.BlockSize < 1 || c.BlockSize > MaxBlockSize || bits.OnesCount(uint(c.BlockSize)) != 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBlockSize, c.BlockSize)
	}
	if c.AffineVarCount < 0 || c.AffineVarCount > MaxVar {
		return fmt.Errorf("%w: affine=%d", ErrInvalidVarCount, c.AffineVarCount)
	}
	if c.PerspectiveVarCount < 0 || c.PerspectiveVarCount > MaxVar {
		return fmt.Errorf("%w: perspective=%d", ErrInvalidVarCount, c.PerspectiveVarCount)
	}
	if c.SubpixelBits < 0 || c.SubpixelBits > MaxSubpixelBits {
		return fmt.Errorf("%w: %d", ErrInvalidSubpixelBits, c.SubpixelBits)
	}
	if c.BlockMode != BlockModeAuto && c.BlockMode != BlockModePerPixel {
		return fmt.Errorf("%w: %d", ErrInvalidBlockMode, int(c.BlockMode))
	}
	return nil
}

// needsReciprocalW reports whether the 1/W interpolant must be built.
func (c *Config) needsReciprocalW() bool {
	return c.InterpolateReciprocalW || c.PerspectiveVarCount > 0
}
