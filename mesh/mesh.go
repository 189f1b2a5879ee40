// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package mesh turns solids into triangle meshes and draws them through the
// trirast rasterizer with a perspective camera.
//
// Meshes come from signed distance functions (github.com/deadsy/sdfx) via
// marching cubes. Drawing transforms vertices to clip space, divides by W,
// maps to the viewport and hands each triangle to the rasterizer together
// with depth, 1/W and perspective-correct color attributes.
package mesh

import "golang.org/x/image/math/f64"

// Mesh is an indexed triangle mesh.
//
// Triangles wind counter-clockwise when seen from the side their normals
// point to.
type Mesh struct {
	Positions []f64.Vec3
	Normals   []f64.Vec3 // one per position
	Indices   []uint32   // three per triangle
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// Bounds returns the axis-aligned bounding box of the positions.
func (m *Mesh) Bounds() (lo, hi f64.Vec3) {
	if len(m.Positions) == 0 {
		return lo, hi
	}
	lo, hi = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for i := range 3 {
			lo[i] = min(lo[i], p[i])
			hi[i] = max(hi[i], p[i])
		}
	}
	return lo, hi
}

// Add appends one triangle with per-vertex normals.
func (m *Mesh) Add(p0, p1, p2, n0, n1, n2 f64.Vec3) {
	base := uint32(len(m.Positions)) //nolint:gosec // meshes stay far below 2^32 vertices
	m.Positions = append(m.Positions, p0, p1, p2)
	m.Normals = append(m.Normals, n0, n1, n2)
	m.Indices = append(m.Indices, base, base+1, base+2)
}
