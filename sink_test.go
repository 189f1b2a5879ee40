package trirast

import (
	"image"
	"image/color"
	"sync/atomic"
	"testing"
)

// gridSink records every SetPixel call: how many times each pixel was
// written, its last color, and how many writes fell outside the grid.
type gridSink struct {
	rect    image.Rectangle
	writes  []atomic.Int32
	colors  []color.RGBA
	outside atomic.Int64
}

func newGridSink(r image.Rectangle) *gridSink {
	n := r.Dx() * r.Dy()
	return &gridSink{
		rect:   r,
		writes: make([]atomic.Int32, n),
		colors: make([]color.RGBA, n),
	}
}

func (s *gridSink) index(x, y int) int {
	return (y-s.rect.Min.Y)*s.rect.Dx() + (x - s.rect.Min.X)
}

func (s *gridSink) SetPixel(x, y int, c color.RGBA) {
	if !image.Pt(x, y).In(s.rect) {
		s.outside.Add(1)
		return
	}
	i := s.index(x, y)
	s.writes[i].Add(1)
	s.colors[i] = c
}

func (s *gridSink) count(x, y int) int {
	return int(s.writes[s.index(x, y)].Load())
}

func (s *gridSink) color(x, y int) color.RGBA {
	return s.colors[s.index(x, y)]
}

func (s *gridSink) total() int {
	n := 0
	for i := range s.writes {
		n += int(s.writes[i].Load())
	}
	return n
}

// boundedSink is a gridSink that advertises its bounds.
type boundedSink struct {
	*gridSink
}

func (s boundedSink) Bounds() image.Rectangle {
	return s.rect
}

var (
	_ Sink    = (*gridSink)(nil)
	_ Bounded = boundedSink{}
)

// mustNew returns a Rasterizer for cfg and closes it when the test ends.
func mustNew(tb testing.TB, cfg Config) *Rasterizer {
	tb.Helper()
	r, err := New(cfg)
	if err != nil {
		tb.Fatalf("New(%+v) = %v", cfg, err)
	}
	tb.Cleanup(r.Close)
	return r
}

// vtx is a white vertex at (x, y).
func vtx(x, y float64) Vertex {
	return NewVertex(x, y, 1, 1, 1)
}
