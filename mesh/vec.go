// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mesh

import (
	"math"

	"golang.org/x/image/math/f64"
)

func sub(a, b f64.Vec3) f64.Vec3 {
	return f64.Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func scale(a f64.Vec3, s float64) f64.Vec3 {
	return f64.Vec3{a[0] * s, a[1] * s, a[2] * s}
}

func dot(a, b f64.Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// normalize returns a unit vector, or the zero vector for zero input.
func normalize(a f64.Vec3) f64.Vec3 {
	l := math.Sqrt(dot(a, a))
	if l == 0 {
		return f64.Vec3{}
	}
	return scale(a, 1/l)
}

// Identity returns the 4x4 identity matrix.
func Identity() f64.Mat4 {
	return f64.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns a*b. Matrices are row-major and act on column vectors, so
// Mul(a, b) applies b first.
func Mul(a, b f64.Mat4) f64.Mat4 {
	var m f64.Mat4
	for r := range 4 {
		for c := range 4 {
			var s float64
			for k := range 4 {
				s += a[r*4+k] * b[k*4+c]
			}
			m[r*4+c] = s
		}
	}
	return m
}

// Transform returns m*v.
func Transform(m f64.Mat4, v f64.Vec4) f64.Vec4 {
	var out f64.Vec4
	for r := range 4 {
		out[r] = m[r*4]*v[0] + m[r*4+1]*v[1] + m[r*4+2]*v[2] + m[r*4+3]*v[3]
	}
	return out
}

// transformDir applies the upper 3x3 of m to a direction.
func transformDir(m f64.Mat4, d f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		m[0]*d[0] + m[1]*d[1] + m[2]*d[2],
		m[4]*d[0] + m[5]*d[1] + m[6]*d[2],
		m[8]*d[0] + m[9]*d[1] + m[10]*d[2],
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float64) f64.Mat4 {
	return f64.Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// RotateX returns a rotation of angle radians about the X axis.
func RotateX(angle float64) f64.Mat4 {
	s, c := math.Sincos(angle)
	return f64.Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation of angle radians about the Y axis.
func RotateY(angle float64) f64.Mat4 {
	s, c := math.Sincos(angle)
	return f64.Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns an OpenGL-style projection: the view looks down -Z and
// depth in [near, far] maps to NDC Z in [-1, 1]. fovY is in radians.
func Perspective(fovY, aspect, near, far float64) f64.Mat4 {
	f := 1 / math.Tan(fovY/2)
	return f64.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (near - far), 2 * far * near / (near - far),
		0, 0, -1, 0,
	}
}

// LookAt returns a view matrix for a camera at eye looking at center.
func LookAt(eye, center, up f64.Vec3) f64.Mat4 {
	f := normalize(sub(center, eye))
	s := normalize(cross(f, up))
	u := cross(s, f)
	return f64.Mat4{
		s[0], s[1], s[2], -dot(s, eye),
		u[0], u[1], u[2], -dot(u, eye),
		-f[0], -f[1], -f[2], dot(f, eye),
		0, 0, 0, 1,
	}
}
