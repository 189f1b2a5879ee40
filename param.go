// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package trirast

// ParameterEquation is an affine interpolant A*x + B*y + C over the plane of
// a triangle that reproduces one scalar vertex attribute at the three
// vertices.
type ParameterEquation struct {
	A, B, C float64
}

// Init builds the interpolant for attribute values p0, p1, p2.
//
// Edge ei must be the edge opposite vertex i: it is zero at the other two
// vertices and evaluates to 2*area at vertex i. area must be positive.
func (p *ParameterEquation) Init(p0, p1, p2 float64, e0, e1, e2 *EdgeEquation, area float64) {
	factor := 1 / (2 * area)

	p.A = factor * (p0*e0.A + p1*e1.A + p2*e2.A)
	p.B = factor * (p0*e0.B + p1*e1.B + p2*e2.B)
	p.C = factor * (p0*e0.C + p1*e1.C + p2*e2.C)
}

// Evaluate returns the interpolated value at (x, y).
func (p *ParameterEquation) Evaluate(x, y float64) float64 {
	return p.A*x + p.B*y + p.C
}

// StepX advances v by one unit in x.
func (p *ParameterEquation) StepX(v float64) float64 {
	return v + p.A
}

// StepXBy advances v by step units in x.
func (p *ParameterEquation) StepXBy(v, step float64) float64 {
	return v + p.A*step
}

// StepY advances v by one unit in y.
func (p *ParameterEquation) StepY(v float64) float64 {
	return v + p.B
}

// StepYBy advances v by step units in y.
func (p *ParameterEquation) StepYBy(v, step float64) float64 {
	return v + p.B*step
}
