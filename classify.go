// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package trirast

// Coverage is the relation between a block and a triangle.
type Coverage uint8

const (
	// CoverageAllOut means all four corners are outside the same edge, so
	// the whole block is: it is skipped.
	CoverageAllOut Coverage = iota

	// CoverageAllIn means all four corners are inside. Edges are linear and
	// the block is convex, so every pixel center in the block is inside.
	CoverageAllIn

	// CoveragePartial is everything else: every pixel is tested. A block
	// with no corner inside still lands here when no single edge separates
	// it from the triangle (a triangle smaller than a block, or a thin
	// sliver crossing it).
	CoveragePartial
)

// String returns the coverage class name.
func (c Coverage) String() string {
	switch c {
	case CoverageAllOut:
		return "AllOut"
	case CoverageAllIn:
		return "AllIn"
	case CoveragePartial:
		return "Partial"
	default:
		return "Unknown"
	}
}

// ClassifyBlock classifies the size x size block whose top-left pixel is
// (bx, by) by testing the four corner pixel centers.
//
// Only the origin corner is evaluated directly; the other three are reached
// by stepping size-1 units, so the corners agree with the values the block
// loop produces by unit steps.
func ClassifyBlock(t *TriangleEquations, bx, by, size int) Coverage {
	x := float64(bx) + 0.5
	y := float64(by) + 0.5
	s := float64(size - 1)

	var e00 EdgeSample
	e00.Init(t, x, y)
	e01 := e00
	e01.StepYBy(t, s)
	e10 := e00
	e10.StepXBy(t, s)
	e11 := e01
	e11.StepXBy(t, s)

	inside := 0
	out0, out1, out2 := true, true, true
	for _, e := range [4]*EdgeSample{&e00, &e01, &e10, &e11} {
		in0, in1, in2 := t.E0.Test(e.V0), t.E1.Test(e.V1), t.E2.Test(e.V2)
		if in0 && in1 && in2 {
			inside++
		}
		out0 = out0 && !in0
		out1 = out1 && !in1
		out2 = out2 && !in2
	}

	switch {
	case inside == 4:
		return CoverageAllIn
	case inside == 0 && (out0 || out1 || out2):
		return CoverageAllOut
	default:
		return CoveragePartial
	}
}
