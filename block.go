// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package trirast

import "image"

// RasterizeBlock emits the covered pixels of the size x size block whose
// top-left pixel is (bx, by) and returns how many were written.
//
// For CoverageAllIn every pixel is emitted without an edge test; for
// CoveragePartial each pixel center is tested against the three edges.
// CoverageAllOut emits nothing. Pixels outside clip are never emitted; pass
// a rectangle containing the block to disable clipping.
func RasterizeBlock(t *TriangleEquations, bx, by, size int, cov Coverage, clip image.Rectangle, sink Sink, shader Shader) int {
	if cov == CoverageAllOut {
		return 0
	}

	x := float64(bx) + 0.5
	y := float64(by) + 0.5
	test := cov == CoveragePartial
	clipped := !image.Rect(bx, by, bx+size, by+size).In(clip)

	var po ParamSample
	po.Init(t, x, y)

	var eo EdgeSample
	if test {
		eo.Init(t, x, y)
	}

	var frag Fragment
	n := 0
	for py := by; py < by+size; py++ {
		// The row cursor restarts from the saved row origin.
		frag.ParamSample = po
		ei := eo

		for px := bx; px < bx+size; px++ {
			if (!test || ei.Test(t)) && (!clipped || image.Pt(px, py).In(clip)) {
				frag.X, frag.Y = px, py
				sink.SetPixel(px, py, shader.Shade(&frag))
				n++
			}

			frag.ParamSample.StepX(t)
			if test {
				ei.StepX(t)
			}
		}

		po.StepY(t)
		if test {
			eo.StepY(t)
		}
	}
	return n
}
