// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mesh

import (
	"errors"
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"golang.org/x/image/math/f64"
)

// DefaultCells is the marching cubes resolution along the longest side.
const DefaultCells = 64

// ErrEmptyMesh is returned when a solid produces no triangles.
var ErrEmptyMesh = errors.New("mesh: solid produced no triangles")

// gradientStep is the central-difference step used to estimate normals.
const gradientStep = 1e-4

// FromSDF tessellates s with uniform marching cubes of the given resolution
// (cells along the longest bounding-box side; <= 0 means DefaultCells).
//
// Vertex normals are the normalized SDF gradient, and every triangle is
// wound counter-clockwise around the outward direction.
func FromSDF(s sdf.SDF3, cells int) (*Mesh, error) {
	if cells <= 0 {
		cells = DefaultCells
	}

	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
	if len(triangles) == 0 {
		return nil, ErrEmptyMesh
	}

	m := &Mesh{
		Positions: make([]f64.Vec3, 0, len(triangles)*3),
		Normals:   make([]f64.Vec3, 0, len(triangles)*3),
		Indices:   make([]uint32, 0, len(triangles)*3),
	}
	for _, tri := range triangles {
		p0 := toVec(tri[0])
		p1 := toVec(tri[1])
		p2 := toVec(tri[2])

		face := cross(sub(p1, p0), sub(p2, p0))
		if dot(face, face) == 0 {
			continue
		}

		n0, n1, n2 := gradient(s, p0), gradient(s, p1), gradient(s, p2)
		outward := f64.Vec3{n0[0] + n1[0] + n2[0], n0[1] + n1[1] + n2[1], n0[2] + n1[2] + n2[2]}
		if dot(face, outward) < 0 {
			p1, p2 = p2, p1
			n1, n2 = n2, n1
		}
		m.Add(p0, p1, p2, n0, n1, n2)
	}
	if m.IsEmpty() {
		return nil, ErrEmptyMesh
	}
	return m, nil
}

// Box returns a mesh of a box with the given size centered at the origin.
func Box(x, y, z float64, cells int) (*Mesh, error) {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, fmt.Errorf("mesh: box: %w", err)
	}
	return FromSDF(s, cells)
}

// Cylinder returns a mesh of a Z-aligned cylinder centered at the origin.
func Cylinder(height, radius float64, cells int) (*Mesh, error) {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("mesh: cylinder: %w", err)
	}
	return FromSDF(s, cells)
}

func toVec(v v3.Vec) f64.Vec3 {
	return f64.Vec3{v.X, v.Y, v.Z}
}

// gradient estimates the unit outward normal of s at p.
func gradient(s sdf.SDF3, p f64.Vec3) f64.Vec3 {
	at := func(dx, dy, dz float64) float64 {
		return s.Evaluate(v3.Vec{X: p[0] + dx, Y: p[1] + dy, Z: p[2] + dz})
	}
	h := gradientStep
	return normalize(f64.Vec3{
		at(h, 0, 0) - at(-h, 0, 0),
		at(0, h, 0) - at(0, -h, 0),
		at(0, 0, h) - at(0, 0, -h),
	})
}
