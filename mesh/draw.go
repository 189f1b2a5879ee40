// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mesh

import (
	"cmp"
	"log/slog"
	"math"
	"slices"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/trirast"
)

// Camera maps world space to a pixel viewport.
type Camera struct {
	View       f64.Mat4
	Projection f64.Mat4

	// Width and Height are the viewport size in pixels.
	Width, Height int
}

// NewCamera returns a camera at eye looking at center with a vertical field
// of view of fovY radians.
func NewCamera(eye, center f64.Vec3, fovY float64, width, height int) Camera {
	return Camera{
		View:       LookAt(eye, center, f64.Vec3{0, 1, 0}),
		Projection: Perspective(fovY, float64(width)/float64(height), 0.1, 100),
		Width:      width,
		Height:     height,
	}
}

// DrawOptions controls how a mesh is lit and shaded.
type DrawOptions struct {
	// Model places the mesh in world space. It must be rigid or uniformly
	// scaled, since normals go through its upper 3x3 unchanged.
	Model f64.Mat4

	// Light is the direction towards a directional light in world space.
	Light f64.Vec3

	// Color is the base color; Ambient the light received by faces turned
	// away from Light.
	Color   f64.Vec3
	Ambient float64

	// Shader overrides the fragment shader. When nil, PerspectiveColorShader
	// is used if the rasterizer interpolates at least three perspective
	// attributes, DefaultShader otherwise.
	Shader trirast.Shader
}

// DefaultDrawOptions returns a light gray material lit from the upper left.
func DefaultDrawOptions() DrawOptions {
	return DrawOptions{
		Model:   Identity(),
		Light:   normalize(f64.Vec3{-0.4, 0.8, 0.6}),
		Color:   f64.Vec3{0.9, 0.9, 0.9},
		Ambient: 0.15,
	}
}

// projected is one triangle ready for the rasterizer.
type projected struct {
	v     [3]trirast.Vertex
	depth float64
}

// Draw rasterizes m into sink and returns the accumulated statistics.
//
// Vertices carry NDC depth mapped to [0, 1] in Z, clip-space W, the lit
// color in R, G, B and the same color in Perspective[0..2]. Triangles with a
// vertex behind the near plane are skipped; there is no frustum clipping.
// Without a depth buffer, triangles are drawn back to front.
func (m *Mesh) Draw(r *trirast.Rasterizer, cam Camera, opts DrawOptions, sink trirast.Sink) trirast.DrawStats {
	mvp := Mul(cam.Projection, Mul(cam.View, opts.Model))
	light := normalize(opts.Light)

	tris := make([]projected, 0, m.TriangleCount())
	skipped := 0
	for i := 0; i+2 < len(m.Indices); i += 3 {
		var p projected
		ok := true
		for k := range 3 {
			idx := m.Indices[i+k]
			v, visible := projectVertex(mvp, opts, light, cam, m.Positions[idx], m.Normals[idx])
			if !visible {
				ok = false
				break
			}
			p.v[k] = v
			p.depth += v.Z
		}
		if !ok {
			skipped++
			continue
		}
		// Counter-clockwise in NDC (Y up) is clockwise on screen (Y down);
		// swap to keep front faces at positive area.
		p.v[1], p.v[2] = p.v[2], p.v[1]
		tris = append(tris, p)
	}
	if skipped > 0 {
		trirast.Logger().Warn("mesh: triangles behind the near plane skipped",
			slog.Int("skipped", skipped),
			slog.Int("total", m.TriangleCount()))
	}

	slices.SortStableFunc(tris, func(a, b projected) int {
		return cmp.Compare(b.depth, a.depth)
	})

	shader := opts.Shader
	if shader == nil {
		if r.Config().PerspectiveVarCount >= 3 {
			shader = trirast.PerspectiveColorShader
		} else {
			shader = trirast.DefaultShader
		}
	}

	var stats trirast.DrawStats
	for i := range tris {
		stats.Add(r.DrawTriangle(tris[i].v[0], tris[i].v[1], tris[i].v[2], sink, shader))
	}
	return stats
}

// projectVertex lights a vertex and maps it to viewport space. It reports
// false for vertices behind the eye or in front of the near plane.
func projectVertex(mvp f64.Mat4, opts DrawOptions, light f64.Vec3, cam Camera, pos, normal f64.Vec3) (trirast.Vertex, bool) {
	clip := Transform(mvp, f64.Vec4{pos[0], pos[1], pos[2], 1})
	w := clip[3]
	if !(w > 0) {
		return trirast.Vertex{}, false
	}
	ndcX, ndcY, ndcZ := clip[0]/w, clip[1]/w, clip[2]/w
	if ndcZ < -1 || math.IsNaN(ndcZ) {
		return trirast.Vertex{}, false
	}

	n := normalize(transformDir(opts.Model, normal))
	intensity := opts.Ambient + (1-opts.Ambient)*max(0, dot(n, light))
	c := scale(opts.Color, intensity)

	v := trirast.Vertex{
		X: (ndcX + 1) / 2 * float64(cam.Width),
		Y: (1 - ndcY) / 2 * float64(cam.Height),
		Z: (ndcZ + 1) / 2,
		W: w,
		R: c[0],
		G: c[1],
		B: c[2],
	}
	v.Perspective[0], v.Perspective[1], v.Perspective[2] = c[0], c[1], c[2]
	return v, true
}
