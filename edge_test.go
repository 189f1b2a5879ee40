package trirast

import (
	"math/rand/v2"
	"testing"
)

func TestEdgeEquation_Init(t *testing.T) {
	tests := []struct {
		name    string
		v0, v1  Vertex
		a, b, c float64
		tie     bool
	}{
		{"right", vtx(0, 0), vtx(10, 0), 0, 10, 0, true},
		{"left", vtx(10, 0), vtx(0, 0), 0, -10, 0, false},
		{"down", vtx(0, 0), vtx(0, 10), -10, 0, 0, false},
		{"up", vtx(0, 10), vtx(0, 0), 10, 0, 0, true},
		{"diagonal", vtx(1, 2), vtx(4, 6), -4, 3, -2, false},
		{"diagonal reversed", vtx(4, 6), vtx(1, 2), 4, -3, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e EdgeEquation
			e.Init(&tt.v0, &tt.v1)
			if e.A != tt.a || e.B != tt.b || e.C != tt.c {
				t.Errorf("Init() = (%v, %v, %v), want (%v, %v, %v)", e.A, e.B, e.C, tt.a, tt.b, tt.c)
			}
			if e.Tie != tt.tie {
				t.Errorf("Tie = %v, want %v", e.Tie, tt.tie)
			}
		})
	}
}

func TestEdgeEquation_ZeroAtEndpoints(t *testing.T) {
	v0, v1 := vtx(3.25, -7.5), vtx(120.75, 44)
	var e EdgeEquation
	e.Init(&v0, &v1)

	if got := e.Evaluate(v0.X, v0.Y); got != 0 {
		t.Errorf("Evaluate(v0) = %v, want 0", got)
	}
	if got := e.Evaluate(v1.X, v1.Y); got != 0 {
		t.Errorf("Evaluate(v1) = %v, want 0", got)
	}
}

func TestEdgeEquation_Test(t *testing.T) {
	tie := EdgeEquation{Tie: true}
	noTie := EdgeEquation{Tie: false}

	tests := []struct {
		name string
		e    EdgeEquation
		v    float64
		want bool
	}{
		{"positive", noTie, 0.5, true},
		{"negative", tie, -0.5, false},
		{"zero with tie", tie, 0, true},
		{"zero without tie", noTie, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Test(tt.v); got != tt.want {
				t.Errorf("Test(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestEdgeEquation_OppositeTies(t *testing.T) {
	// A shared edge is seen with opposite directions by its two triangles;
	// exactly one of them may own the samples on it.
	rng := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		v0 := vtx(float64(rng.IntN(64)), float64(rng.IntN(64)))
		v1 := vtx(float64(rng.IntN(64)), float64(rng.IntN(64)))
		if v0.X == v1.X && v0.Y == v1.Y {
			continue
		}
		var fwd, rev EdgeEquation
		fwd.Init(&v0, &v1)
		rev.Init(&v1, &v0)
		if fwd.Tie == rev.Tie {
			t.Fatalf("edge %v->%v: both directions have Tie=%v", v0, v1, fwd.Tie)
		}
		if fwd.TestPoint(v0.X, v0.Y) == rev.TestPoint(v0.X, v0.Y) {
			t.Fatalf("edge %v->%v: endpoint owned by both or neither direction", v0, v1)
		}
	}
}

func TestEdgeEquation_Step(t *testing.T) {
	v0, v1 := vtx(0.5, 1.25), vtx(17.75, 9)
	var e EdgeEquation
	e.Init(&v0, &v1)

	v := e.Evaluate(2.5, 3.5)
	if got, want := e.StepX(v), e.Evaluate(3.5, 3.5); got != want {
		t.Errorf("StepX = %v, want %v", got, want)
	}
	if got, want := e.StepY(v), e.Evaluate(2.5, 4.5); got != want {
		t.Errorf("StepY = %v, want %v", got, want)
	}
	if got, want := e.StepXBy(v, 7), e.Evaluate(9.5, 3.5); got != want {
		t.Errorf("StepXBy = %v, want %v", got, want)
	}
	if got, want := e.StepYBy(v, 7), e.Evaluate(2.5, 10.5); got != want {
		t.Errorf("StepYBy = %v, want %v", got, want)
	}
}

// TestEdgeSample_SteppingExact checks that with snapped vertices, walking a
// sample across the canvas in unit steps lands on exactly the value direct
// evaluation gives.
func TestEdgeSample_SteppingExact(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	cfg := DefaultConfig()

	for i := range 200 {
		v0 := vtx(rng.Float64()*1024, rng.Float64()*1024)
		v1 := vtx(rng.Float64()*1024, rng.Float64()*1024)
		v2 := vtx(rng.Float64()*1024, rng.Float64()*1024)
		tri := NewTriangleEquations(&v0, &v1, &v2, cfg)

		x0, y0 := float64(rng.IntN(512))+0.5, float64(rng.IntN(512))+0.5
		nx, ny := rng.IntN(300), rng.IntN(300)

		var s EdgeSample
		s.Init(tri, x0, y0)
		for range ny {
			s.StepY(tri)
		}
		for range nx {
			s.StepX(tri)
		}

		var want EdgeSample
		want.Init(tri, x0+float64(nx), y0+float64(ny))
		if s != want {
			t.Fatalf("case %d: stepped %+v, direct %+v", i, s, want)
		}

		var by EdgeSample
		by.Init(tri, x0, y0)
		by.StepXBy(tri, float64(nx))
		by.StepYBy(tri, float64(ny))
		if by != want {
			t.Fatalf("case %d: StepBy %+v, direct %+v", i, by, want)
		}
	}
}

func BenchmarkEdgeSample_Step(b *testing.B) {
	v0, v1, v2 := vtx(500, 50), vtx(250, 300), vtx(10, 10)
	tri := NewTriangleEquations(&v0, &v1, &v2, DefaultConfig())

	var s EdgeSample
	s.Init(tri, 0.5, 0.5)
	for b.Loop() {
		s.StepX(tri)
		_ = s.Test(tri)
	}
}
