// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package trirast

// EdgeEquation is the half-plane function of one directed triangle edge:
//
//	value(x, y) = A*x + B*y + C
//
// Points with a positive value lie on the inner side of the edge. Points
// exactly on the edge (value == 0) are assigned by Tie, which depends only on
// the edge direction. Two triangles sharing an edge see it with opposite
// directions, so exactly one of them owns the boundary samples.
type EdgeEquation struct {
	A, B, C float64
	Tie     bool
}

// Init sets up the equation for the directed edge v0 -> v1.
func (e *EdgeEquation) Init(v0, v1 *Vertex) {
	e.set(v0.X, v0.Y, v1.X, v1.Y)
}

func (e *EdgeEquation) set(x0, y0, x1, y1 float64) {
	e.A = y0 - y1
	e.B = x1 - x0
	e.C = -(e.A*(x0+x1) + e.B*(y0+y1)) / 2
	if e.A != 0 {
		e.Tie = e.A > 0
	} else {
		e.Tie = e.B > 0
	}
}

// Evaluate returns the edge value at (x, y).
func (e *EdgeEquation) Evaluate(x, y float64) float64 {
	return e.A*x + e.B*y + e.C
}

// Test reports whether an evaluated edge value is inside the edge.
func (e *EdgeEquation) Test(v float64) bool {
	return v > 0 || (v == 0 && e.Tie)
}

// TestPoint reports whether (x, y) is inside the edge.
func (e *EdgeEquation) TestPoint(x, y float64) bool {
	return e.Test(e.Evaluate(x, y))
}

// StepX advances v by one unit in x.
func (e *EdgeEquation) StepX(v float64) float64 {
	return v + e.A
}

// StepXBy advances v by step units in x.
func (e *EdgeEquation) StepXBy(v, step float64) float64 {
	return v + e.A*step
}

// StepY advances v by one unit in y.
func (e *EdgeEquation) StepY(v float64) float64 {
	return v + e.B
}

// StepYBy advances v by step units in y.
func (e *EdgeEquation) StepYBy(v, step float64) float64 {
	return v + e.B*step
}
