// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package trirast

// EdgeSample holds the three edge values at one sample point.
// It is owned by a single block loop and never shared.
type EdgeSample struct {
	V0, V1, V2 float64
}

// Init evaluates all edges of t at (x, y).
func (s *EdgeSample) Init(t *TriangleEquations, x, y float64) {
	s.V0 = t.E0.Evaluate(x, y)
	s.V1 = t.E1.Evaluate(x, y)
	s.V2 = t.E2.Evaluate(x, y)
}

// StepX advances the sample one unit in x.
func (s *EdgeSample) StepX(t *TriangleEquations) {
	s.V0 = t.E0.StepX(s.V0)
	s.V1 = t.E1.StepX(s.V1)
	s.V2 = t.E2.StepX(s.V2)
}

// StepXBy advances the sample step units in x.
func (s *EdgeSample) StepXBy(t *TriangleEquations, step float64) {
	s.V0 = t.E0.StepXBy(s.V0, step)
	s.V1 = t.E1.StepXBy(s.V1, step)
	s.V2 = t.E2.StepXBy(s.V2, step)
}

// StepY advances the sample one unit in y.
func (s *EdgeSample) StepY(t *TriangleEquations) {
	s.V0 = t.E0.StepY(s.V0)
	s.V1 = t.E1.StepY(s.V1)
	s.V2 = t.E2.StepY(s.V2)
}

// StepYBy advances the sample step units in y.
func (s *EdgeSample) StepYBy(t *TriangleEquations, step float64) {
	s.V0 = t.E0.StepYBy(s.V0, step)
	s.V1 = t.E1.StepYBy(s.V1, step)
	s.V2 = t.E2.StepYBy(s.V2, step)
}

// Test reports whether the sample is inside the triangle.
func (s *EdgeSample) Test(t *TriangleEquations) bool {
	return t.E0.Test(s.V0) && t.E1.Test(s.V1) && t.E2.Test(s.V2)
}

// ParamSample holds the interpolated attribute values at one sample point.
// Only the attributes enabled in the triangle's configuration are kept up
// to date; the others stay zero.
type ParamSample struct {
	R, G, B float64
	Z       float64
	InvW    float64

	Affine      [MaxVar]float64
	Perspective [MaxVar]float64
}

// Init evaluates every enabled parameter of t at (x, y).
func (s *ParamSample) Init(t *TriangleEquations, x, y float64) {
	s.R = t.R.Evaluate(x, y)
	s.G = t.G.Evaluate(x, y)
	s.B = t.B.Evaluate(x, y)
	if t.depth {
		s.Z = t.Z.Evaluate(x, y)
	}
	if t.invW {
		s.InvW = t.InvW.Evaluate(x, y)
	}
	for i := range t.affineVars {
		s.Affine[i] = t.Affine[i].Evaluate(x, y)
	}
	for i := range t.perspVars {
		s.Perspective[i] = t.Perspective[i].Evaluate(x, y)
	}
}

// StepX advances every enabled parameter one unit in x.
func (s *ParamSample) StepX(t *TriangleEquations) {
	s.R = t.R.StepX(s.R)
	s.G = t.G.StepX(s.G)
	s.B = t.B.StepX(s.B)
	if t.depth {
		s.Z = t.Z.StepX(s.Z)
	}
	if t.invW {
		s.InvW = t.InvW.StepX(s.InvW)
	}
	for i := range t.affineVars {
		s.Affine[i] = t.Affine[i].StepX(s.Affine[i])
	}
	for i := range t.perspVars {
		s.Perspective[i] = t.Perspective[i].StepX(s.Perspective[i])
	}
}

// StepY advances every enabled parameter one unit in y.
func (s *ParamSample) StepY(t *TriangleEquations) {
	s.R = t.R.StepY(s.R)
	s.G = t.G.StepY(s.G)
	s.B = t.B.StepY(s.B)
	if t.depth {
		s.Z = t.Z.StepY(s.Z)
	}
	if t.invW {
		s.InvW = t.InvW.StepY(s.InvW)
	}
	for i := range t.affineVars {
		s.Affine[i] = t.Affine[i].StepY(s.Affine[i])
	}
	for i := range t.perspVars {
		s.Perspective[i] = t.Perspective[i].StepY(s.Perspective[i])
	}
}

// StepXBy advances every enabled parameter step units in x.
func (s *ParamSample) StepXBy(t *TriangleEquations, step float64) {
	s.R = t.R.StepXBy(s.R, step)
	s.G = t.G.StepXBy(s.G, step)
	s.B = t.B.StepXBy(s.B, step)
	if t.depth {
		s.Z = t.Z.StepXBy(s.Z, step)
	}
	if t.invW {
		s.InvW = t.InvW.StepXBy(s.InvW, step)
	}
	for i := range t.affineVars {
		s.Affine[i] = t.Affine[i].StepXBy(s.Affine[i], step)
	}
	for i := range t.perspVars {
		s.Perspective[i] = t.Perspective[i].StepXBy(s.Perspective[i], step)
	}
}

// StepYBy advances every enabled parameter step units in y.
func (s *ParamSample) StepYBy(t *TriangleEquations, step float64) {
	s.R = t.R.StepYBy(s.R, step)
	s.G = t.G.StepYBy(s.G, step)
	s.B = t.B.StepYBy(s.B, step)
	if t.depth {
		s.Z = t.Z.StepYBy(s.Z, step)
	}
	if t.invW {
		s.InvW = t.InvW.StepYBy(s.InvW, step)
	}
	for i := range t.affineVars {
		s.Affine[i] = t.Affine[i].StepYBy(s.Affine[i], step)
	}
	for i := range t.perspVars {
		s.Perspective[i] = t.Perspective[i].StepYBy(s.Perspective[i], step)
	}
}
