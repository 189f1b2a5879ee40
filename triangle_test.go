package trirast

import (
	"image"
	"math"
	"testing"
)

func TestTriangleEquations_Area(t *testing.T) {
	v0, v1, v2 := vtx(500, 50), vtx(250, 300), vtx(10, 10)
	tri := NewTriangleEquations(&v0, &v1, &v2, DefaultConfig())

	// Shoelace: (500*300 - 250*50 + 250*10 - 10*300 + 10*50 - 500*10) / 2
	if tri.Area != 66250 {
		t.Errorf("Area = %v, want 66250", tri.Area)
	}
	if tri.Culled() {
		t.Error("front-facing triangle culled")
	}
	if got, want := tri.Bounds(), image.Rect(10, 10, 500, 300); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestTriangleEquations_Culling(t *testing.T) {
	cfgW := DefaultConfig()
	cfgW.InterpolateReciprocalW = true

	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		name       string
		v0, v1, v2 Vertex
		cfg        Config
		culled     bool
	}{
		{"front facing", vtx(0, 0), vtx(10, 0), vtx(0, 10), DefaultConfig(), false},
		{"back facing", vtx(0, 0), vtx(0, 10), vtx(10, 0), DefaultConfig(), true},
		{"all equal", vtx(5, 5), vtx(5, 5), vtx(5, 5), DefaultConfig(), true},
		{"collinear", vtx(0, 0), vtx(5, 5), vtx(10, 10), DefaultConfig(), true},
		{"collapses after snapping", vtx(0, 0), vtx(1e-4, 0), vtx(0, 1e-4), DefaultConfig(), true},
		{"NaN position", vtx(nan, 0), vtx(10, 0), vtx(0, 10), DefaultConfig(), true},
		{"infinite position", vtx(0, 0), vtx(inf, 0), vtx(0, 10), DefaultConfig(), true},
		{"W zero ignored without 1/W", Vertex{X: 0, Y: 0}, Vertex{X: 10, Y: 0}, Vertex{X: 0, Y: 10}, DefaultConfig(), false},
		{"W zero with 1/W", Vertex{X: 0, Y: 0}, Vertex{X: 10, Y: 0, W: 1}, Vertex{X: 0, Y: 10, W: 1}, cfgW, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tri := NewTriangleEquations(&tt.v0, &tt.v1, &tt.v2, tt.cfg)
			if tri.Culled() != tt.culled {
				t.Errorf("Culled() = %v, want %v (area %v)", tri.Culled(), tt.culled, tri.Area)
			}
			if tt.culled && !tri.Bounds().Empty() {
				t.Errorf("culled triangle has bounds %v", tri.Bounds())
			}
		})
	}
}

func TestTriangleEquations_Contains(t *testing.T) {
	v0, v1, v2 := vtx(0, 0), vtx(8, 0), vtx(0, 8)
	tri := NewTriangleEquations(&v0, &v1, &v2, DefaultConfig())

	tests := []struct {
		x, y float64
		want bool
	}{
		{1, 1, true},
		{3.5, 3.5, true},
		{7, 7, false},
		{-1, 1, false},
		{4, 4, tri.E1.Tie}, // on the hypotenuse
	}
	for _, tt := range tests {
		if got := tri.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestTriangleEquations_Snapping(t *testing.T) {
	// 0.1 is not representable; snapped to 1/256 it becomes 26/256.
	v0, v1, v2 := vtx(0.1, 0), vtx(10, 0), vtx(0, 10)
	tri := NewTriangleEquations(&v0, &v1, &v2, DefaultConfig())

	if got := tri.E2.Evaluate(26.0/256, 0); got != 0 {
		t.Errorf("snapped vertex not on edge: %v", got)
	}

	cfg := DefaultConfig()
	cfg.SubpixelBits = 0
	raw := NewTriangleEquations(&v0, &v1, &v2, cfg)
	if got := raw.E2.Evaluate(26.0/256, 0); got == 0 {
		t.Error("unsnapped edge passes through the snapped vertex")
	}
}

func TestNewVertex(t *testing.T) {
	v := NewVertex(1, 2, 0.1, 0.2, 0.3)
	if v.X != 1 || v.Y != 2 || v.R != 0.1 || v.G != 0.2 || v.B != 0.3 {
		t.Errorf("NewVertex() = %+v", v)
	}
	if v.W != 1 || v.Z != 0 {
		t.Errorf("NewVertex() W=%v Z=%v, want W=1 Z=0", v.W, v.Z)
	}
}
