// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package trirast is a block-based, parallel triangle rasterizer.
//
// # Overview
//
// Given three vertices, trirast finds every pixel whose center lies inside
// the triangle and interpolates the vertex attributes (color, depth, 1/W,
// affine and perspective-correct parameters) at that center. Covered pixels
// are turned into colors by a Shader and written to a Sink.
//
// # Quick Start
//
//	r, err := trirast.New(trirast.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	fb, _ := framebuffer.New(640, 480, gputypes.TextureFormatRGBA8Unorm)
//	r.DrawTriangle(
//	    trirast.NewVertex(500, 50, 0, 0, 0.8),
//	    trirast.NewVertex(250, 300, 0, 0.8, 0),
//	    trirast.NewVertex(10, 10, 0.8, 0, 0),
//	    fb, nil)
//
// # Pipeline
//
//   - Triangle setup builds three EdgeEquations and one ParameterEquation per
//     attribute, and culls triangles with non-positive area.
//   - The bounding box is snapped outward to a grid of BlockSize x BlockSize
//     blocks aligned to multiples of BlockSize.
//   - Each block is classified by its four corners as AllOut (skipped),
//     AllIn (emitted without edge tests) or Partial (tested per pixel).
//   - Blocks are independent and are spread across a worker pool.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left, X right, Y down
//   - Pixel (i, j) is sampled at (i+0.5, j+0.5)
//   - A triangle is front-facing when its signed area, 0.5*(E0.C+E1.C+E2.C),
//     is positive
//
// # Fill Rule
//
// A sample exactly on an edge is inside only when the edge's Tie flag is
// set. Tie depends on the edge direction alone, so for two triangles that
// share an edge exactly one of them covers the samples on it. Vertex
// positions are snapped to a sub-pixel grid (Config.SubpixelBits) which keeps
// all edge arithmetic exact.
package trirast
