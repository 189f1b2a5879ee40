package trirast

import (
	"image"
	"testing"

	"golang.org/x/image/vector"
)

// TestRasterizer_AreaCoverageOracle cross-checks pixel ownership against an
// independent area-coverage rasterizer. A pixel more than half covered must
// have its center inside the triangle, since any line through the center
// splits the pixel in two equal halves. A pixel with zero coverage cannot
// contain a covered center.
func TestRasterizer_AreaCoverageOracle(t *testing.T) {
	const size = 96

	tests := []struct {
		name       string
		v0, v1, v2 [2]float64
	}{
		{"reference scaled", [2]float64{75, 7.5}, [2]float64{37.5, 45}, [2]float64{1.5, 1.5}},
		{"right", [2]float64{4, 4}, [2]float64{90, 4}, [2]float64{4, 90}},
		{"quarter offsets", [2]float64{10.25, 80.75}, [2]float64{47.5, 3.25}, [2]float64{88.75, 70.5}},
		{"wide", [2]float64{-10, 30}, [2]float64{110, 20.5}, [2]float64{50, 60.25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v0, v1, v2 := vtx(tt.v0[0], tt.v0[1]), vtx(tt.v1[0], tt.v1[1]), vtx(tt.v2[0], tt.v2[1])
			r := mustNew(t, DefaultConfig())
			if r.Equations(v0, v1, v2).Culled() {
				v1, v2 = v2, v1
			}

			sink := newGridSink(image.Rect(0, 0, size, size))
			if stats := r.DrawTriangle(v0, v1, v2, boundedSink{sink}, nil); stats.Pixels == 0 {
				t.Fatal("triangle drew nothing")
			}

			z := vector.NewRasterizer(size, size)
			z.MoveTo(float32(v0.X), float32(v0.Y))
			z.LineTo(float32(v1.X), float32(v1.Y))
			z.LineTo(float32(v2.X), float32(v2.Y))
			z.ClosePath()
			mask := image.NewAlpha(image.Rect(0, 0, size, size))
			z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					a := mask.AlphaAt(x, y).A
					n := sink.count(x, y)
					if a >= 160 && n != 1 {
						t.Errorf("pixel (%d,%d) coverage %d/255 but written %d times", x, y, a, n)
					}
					if a == 0 && n != 0 {
						t.Errorf("pixel (%d,%d) has no coverage but was written", x, y)
					}
				}
			}
		})
	}
}
