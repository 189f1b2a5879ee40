// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package trirast

import "image/color"

// Fragment is the shader input for one covered pixel: its integer
// coordinate and the attributes interpolated at the pixel center.
//
// Perspective values are still multiplied by 1/W; use PerspectiveVar for the
// corrected value. A Fragment is reused between pixels and must not be
// retained or modified by the shader.
type Fragment struct {
	X, Y int
	ParamSample
}

// PerspectiveVar returns perspective attribute i divided by the
// interpolated 1/W, which undoes the projection's non-linearity.
func (f *Fragment) PerspectiveVar(i int) float64 {
	return f.Perspective[i] / f.InvW
}

// W returns the perspective-correct W at the pixel.
func (f *Fragment) W() float64 {
	return 1 / f.InvW
}

// Shader converts interpolated attributes into a color.
// Shade is called concurrently from several workers and must be safe for
// that; it must not depend on call order.
type Shader interface {
	Shade(f *Fragment) color.RGBA
}

// ShaderFunc adapts a function to the Shader interface.
type ShaderFunc func(f *Fragment) color.RGBA

// Shade calls fn(f).
func (fn ShaderFunc) Shade(f *Fragment) color.RGBA {
	return fn(f)
}

// DefaultShader maps the interpolated R, G and B channels to an opaque color.
var DefaultShader Shader = ShaderFunc(shadeColor)

// DepthShader renders interpolated Z in [0, 1] as gray, near (0) bright.
// Requires Config.InterpolateDepth.
var DepthShader Shader = ShaderFunc(shadeDepth)

// PerspectiveColorShader uses perspective attributes 0, 1 and 2 as the R, G
// and B channels. Requires Config.PerspectiveVarCount >= 3.
var PerspectiveColorShader Shader = ShaderFunc(shadePerspectiveColor)

func shadeColor(f *Fragment) color.RGBA {
	return color.RGBA{
		R: ChannelToByte(f.R),
		G: ChannelToByte(f.G),
		B: ChannelToByte(f.B),
		A: 255,
	}
}

func shadeDepth(f *Fragment) color.RGBA {
	v := ChannelToByte(1 - f.Z)
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

func shadePerspectiveColor(f *Fragment) color.RGBA {
	return color.RGBA{
		R: ChannelToByte(f.PerspectiveVar(0)),
		G: ChannelToByte(f.PerspectiveVar(1)),
		B: ChannelToByte(f.PerspectiveVar(2)),
		A: 255,
	}
}

// ChannelToByte scales a [0, 1] channel to [0, 255], truncating toward zero
// and clamping out-of-range values. NaN maps to 0.
func ChannelToByte(v float64) uint8 {
	x := v * 255
	if !(x > 0) {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x)
}
