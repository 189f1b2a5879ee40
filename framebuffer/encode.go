// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framebuffer

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/trirast"
)

// Encoding is an image file format for Encode.
type Encoding int

const (
	// EncodingPNG writes PNG.
	EncodingPNG Encoding = iota

	// EncodingBMP writes uncompressed BMP.
	EncodingBMP
)

// ErrUnknownEncoding is returned for encodings Encode does not know.
var ErrUnknownEncoding = errors.New("framebuffer: unknown encoding")

// String returns the lowercase encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingPNG:
		return "png"
	case EncodingBMP:
		return "bmp"
	default:
		return "unknown"
	}
}

// ParseEncoding maps "png" or "bmp" (any case) to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(s) {
	case "png":
		return EncodingPNG, nil
	case "bmp":
		return EncodingBMP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
	}
}

// EncodingForPath picks the encoding from the file extension; anything but
// ".bmp" means PNG.
func EncodingForPath(path string) Encoding {
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return EncodingBMP
	}
	return EncodingPNG
}

// Encode writes the buffer to w.
func (f *Framebuffer) Encode(w io.Writer, enc Encoding) error {
	img := f.Image()
	switch enc {
	case EncodingPNG:
		return png.Encode(w, img)
	case EncodingBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownEncoding, int(enc))
	}
}

// Save writes the buffer to path, choosing the encoding from the extension.
func (f *Framebuffer) Save(path string) (err error) {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	enc := EncodingForPath(path)
	if err := f.Encode(file, enc); err != nil {
		return fmt.Errorf("framebuffer: encode %s: %w", enc, err)
	}
	trirast.Logger().Debug("framebuffer: saved",
		slog.String("path", path),
		slog.String("encoding", enc.String()))
	return nil
}
