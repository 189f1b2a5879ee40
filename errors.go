// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package trirast

import "errors"

// Configuration errors returned by Config.Validate and New.
var (
	// ErrInvalidBlockSize is returned when BlockSize is not a power of two
	// in [1, MaxBlockSize].
	ErrInvalidBlockSize = errors.New("trirast: block size must be a power of two in [1, 256]")

	// ErrInvalidVarCount is returned when an attribute count is outside [0, MaxVar].
	ErrInvalidVarCount = errors.New("trirast: attribute count out of range")

	// ErrInvalidSubpixelBits is returned when SubpixelBits is outside [0, MaxSubpixelBits].
	ErrInvalidSubpixelBits = errors.New("trirast: sub-pixel precision out of range")

	// ErrInvalidBlockMode is returned for an unknown BlockMode.
	ErrInvalidBlockMode = errors.New("trirast: unknown block mode")
)
