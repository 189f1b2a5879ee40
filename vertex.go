// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package trirast

// MaxVar is the number of affine and of perspective attribute slots per vertex.
const MaxVar = 16

// Vertex is one triangle corner as seen by the rasterizer.
//
// X and Y are in pixel space with the origin at the top-left corner and the
// center of pixel (i, j) at (i+0.5, j+0.5). Z is interpolated as depth and W
// as 1/W when the configuration asks for it. R, G and B are the base color
// channels in [0, 1].
//
// Affine attributes are interpolated linearly in screen space. Perspective
// attributes are interpolated as value/W and recovered per pixel by
// Fragment.PerspectiveVar.
type Vertex struct {
	X, Y, Z, W float64
	R, G, B    float64

	Affine      [MaxVar]float64
	Perspective [MaxVar]float64
}

// NewVertex returns a vertex at (x, y) with color (r, g, b), Z = 0 and W = 1.
func NewVertex(x, y, r, g, b float64) Vertex {
	return Vertex{X: x, Y: y, W: 1, R: r, G: g, B: b}
}
