// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package trirast

import (
	"image"
	"log/slog"
	"math"
)

// TriangleEquations is the read-only equation set of one triangle: its three
// edge equations and one parameter equation per interpolated attribute.
//
// It is built once per draw, before any block is processed, and is then
// shared by all workers without synchronization.
type TriangleEquations struct {
	// Area is the signed triangle area. Positive means front-facing.
	Area float64

	// E0, E1 and E2 are the edges v0->v1, v1->v2 and v2->v0.
	E0, E1, E2 EdgeEquation

	R, G, B ParameterEquation
	Z       ParameterEquation
	InvW    ParameterEquation

	Affine      [MaxVar]ParameterEquation
	Perspective [MaxVar]ParameterEquation

	depth      bool
	invW       bool
	affineVars int
	perspVars  int
	culled     bool
	bounds     image.Rectangle
}

// NewTriangleEquations runs triangle setup for v0, v1, v2 under cfg.
//
// Back-facing and degenerate triangles (Area <= 0) are culled: the edge
// equations are still available but no parameter equation is built, and
// Culled reports true. Non-finite positions and, when 1/W is interpolated,
// vertices with W == 0 are culled as well.
func NewTriangleEquations(v0, v1, v2 *Vertex, cfg Config) *TriangleEquations {
	t := &TriangleEquations{}
	t.init(v0, v1, v2, &cfg)
	return t
}

func (t *TriangleEquations) init(v0, v1, v2 *Vertex, cfg *Config) {
	t.depth = cfg.InterpolateDepth
	t.invW = cfg.needsReciprocalW()
	t.affineVars = cfg.AffineVarCount
	t.perspVars = cfg.PerspectiveVarCount

	if !finitePosition(v0) || !finitePosition(v1) || !finitePosition(v2) {
		t.culled = true
		Logger().Debug("trirast: non-finite vertex position, triangle skipped")
		return
	}

	// Edges are built from snapped positions so that every incremental edge
	// value is exact. Attributes keep their original vertex values.
	p0 := snapXY(v0, cfg.SubpixelBits)
	p1 := snapXY(v1, cfg.SubpixelBits)
	p2 := snapXY(v2, cfg.SubpixelBits)

	t.E0.set(p0[0], p0[1], p1[0], p1[1])
	t.E1.set(p1[0], p1[1], p2[0], p2[1])
	t.E2.set(p2[0], p2[1], p0[0], p0[1])

	t.Area = 0.5 * (t.E0.C + t.E1.C + t.E2.C)
	if !(t.Area > 0) {
		t.culled = true
		Logger().Debug("trirast: triangle culled", slog.Float64("area", t.Area))
		return
	}

	t.bounds = image.Rect(
		int(math.Floor(min(p0[0], p1[0], p2[0]))),
		int(math.Floor(min(p0[1], p1[1], p2[1]))),
		int(math.Ceil(max(p0[0], p1[0], p2[0]))),
		int(math.Ceil(max(p0[1], p1[1], p2[1]))),
	)

	var w0, w1, w2 float64
	if t.invW {
		if v0.W == 0 || v1.W == 0 || v2.W == 0 {
			t.culled = true
			Logger().Debug("trirast: vertex with W == 0, triangle skipped")
			return
		}
		w0, w1, w2 = 1/v0.W, 1/v1.W, 1/v2.W
	}

	// Parameter equations pair each vertex with its opposite edge.
	e0, e1, e2 := &t.E1, &t.E2, &t.E0
	a := t.Area

	t.R.Init(v0.R, v1.R, v2.R, e0, e1, e2, a)
	t.G.Init(v0.G, v1.G, v2.G, e0, e1, e2, a)
	t.B.Init(v0.B, v1.B, v2.B, e0, e1, e2, a)

	if t.depth {
		t.Z.Init(v0.Z, v1.Z, v2.Z, e0, e1, e2, a)
	}
	if t.invW {
		t.InvW.Init(w0, w1, w2, e0, e1, e2, a)
	}
	for i := range t.affineVars {
		t.Affine[i].Init(v0.Affine[i], v1.Affine[i], v2.Affine[i], e0, e1, e2, a)
	}
	for i := range t.perspVars {
		t.Perspective[i].Init(
			v0.Perspective[i]*w0,
			v1.Perspective[i]*w1,
			v2.Perspective[i]*w2,
			e0, e1, e2, a)
	}
}

// Culled reports whether the triangle produces no pixels.
func (t *TriangleEquations) Culled() bool {
	return t.culled
}

// Bounds returns the half-open pixel rectangle that can contain covered
// pixel centers. It is empty for culled triangles.
func (t *TriangleEquations) Bounds() image.Rectangle {
	if t.culled {
		return image.Rectangle{}
	}
	return t.bounds
}

// Contains reports whether the sample point (x, y) passes all three edge tests.
func (t *TriangleEquations) Contains(x, y float64) bool {
	return t.E0.TestPoint(x, y) && t.E1.TestPoint(x, y) && t.E2.TestPoint(x, y)
}

// snapXY rounds the vertex position to a 1/2^bits pixel grid.
func snapXY(v *Vertex, bits int) [2]float64 {
	if bits <= 0 {
		return [2]float64{v.X, v.Y}
	}
	scale := float64(int(1) << bits)
	return [2]float64{
		math.Round(v.X*scale) / scale,
		math.Round(v.Y*scale) / scale,
	}
}

func finitePosition(v *Vertex) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
