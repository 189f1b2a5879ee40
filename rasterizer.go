// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package trirast

import (
	"image"
	"log/slog"
	"runtime"
	"sync"

	"github.com/gogpu/trirast/internal/parallel"
)

// DrawStats reports what one draw call did.
type DrawStats struct {
	// BlocksOut, BlocksIn and BlocksPartial count grid cells per coverage class.
	BlocksOut     int
	BlocksIn      int
	BlocksPartial int

	// Pixels is the number of SetPixel calls made.
	Pixels int
}

// Add accumulates o into s.
func (s *DrawStats) Add(o DrawStats) {
	s.BlocksOut += o.BlocksOut
	s.BlocksIn += o.BlocksIn
	s.BlocksPartial += o.BlocksPartial
	s.Pixels += o.Pixels
}

// Blocks returns the number of grid cells visited.
func (s DrawStats) Blocks() int {
	return s.BlocksOut + s.BlocksIn + s.BlocksPartial
}

// Rasterizer draws triangles by splitting their bounding box into a grid of
// square blocks and processing the blocks, possibly on several workers.
//
// Every pixel belongs to exactly one block, and blocks only read the shared
// TriangleEquations, so the result does not depend on the worker count or
// on scheduling.
//
// Thread safety: Rasterizer is safe for concurrent draw calls. Close must
// not be called while a draw is in progress.
type Rasterizer struct {
	cfg  Config
	pool *parallel.WorkerPool
}

// New returns a Rasterizer for cfg. It starts a worker pool when more than
// one worker is configured; call Close to stop it.
func New(cfg Config) (*Rasterizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	r := &Rasterizer{cfg: cfg}
	if cfg.Workers > 1 {
		r.pool = parallel.NewWorkerPool(cfg.Workers)
		Logger().Info("trirast: worker pool started",
			slog.Int("workers", cfg.Workers),
			slog.Int("blockSize", cfg.BlockSize))
	}
	return r, nil
}

// Config returns the effective configuration.
func (r *Rasterizer) Config() Config {
	return r.cfg
}

// Close stops the worker pool. Close is idempotent.
func (r *Rasterizer) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// Equations runs triangle setup for v0, v1, v2 under the rasterizer's
// configuration.
func (r *Rasterizer) Equations(v0, v1, v2 Vertex) *TriangleEquations {
	return NewTriangleEquations(&v0, &v1, &v2, r.cfg)
}

// DrawTriangle rasterizes the triangle v0, v1, v2 into sink. A nil shader
// means DefaultShader. Back-facing and degenerate triangles write nothing.
func (r *Rasterizer) DrawTriangle(v0, v1, v2 Vertex, sink Sink, shader Shader) DrawStats {
	return r.DrawEquations(NewTriangleEquations(&v0, &v1, &v2, r.cfg), sink, shader)
}

// DrawTriangles rasterizes a triangle list: vertices 3i, 3i+1, 3i+2 form
// triangle i. Trailing vertices that do not form a triangle are ignored.
func (r *Rasterizer) DrawTriangles(vertices []Vertex, sink Sink, shader Shader) DrawStats {
	var stats DrawStats
	for i := 0; i+2 < len(vertices); i += 3 {
		t := NewTriangleEquations(&vertices[i], &vertices[i+1], &vertices[i+2], r.cfg)
		stats.Add(r.DrawEquations(t, sink, shader))
	}
	return stats
}

// DrawEquations rasterizes a triangle whose setup has already been done.
// t must have been built with a configuration whose attribute options match
// what shader reads.
func (r *Rasterizer) DrawEquations(t *TriangleEquations, sink Sink, shader Shader) DrawStats {
	if t.Culled() {
		return DrawStats{}
	}
	if shader == nil {
		shader = DefaultShader
	}

	area := t.Bounds()
	clip := area
	if b, ok := sink.(Bounded); ok {
		clip = b.Bounds()
		area = area.Intersect(clip)
	}
	if area.Empty() {
		return DrawStats{}
	}

	g := newBlockGrid(area, r.cfg.BlockSize)
	Logger().Debug("trirast: dispatch",
		slog.Int("blocksX", g.stepsX),
		slog.Int("blocksY", g.stepsY))

	d := dispatch{
		t:        t,
		grid:     g,
		clip:     clip,
		sink:     sink,
		shader:   shader,
		perPixel: r.cfg.BlockMode == BlockModePerPixel,
	}

	if r.pool == nil || g.cells() == 1 {
		return d.cells(0, g.cells())
	}

	var (
		mu    sync.Mutex
		stats DrawStats
	)
	r.pool.Run(g.cells(), 0, func(lo, hi int) {
		s := d.cells(lo, hi)
		mu.Lock()
		stats.Add(s)
		mu.Unlock()
	})
	return stats
}

// blockGrid is the block-aligned cover of a pixel rectangle. Block origins
// are multiples of the block size in canvas space, so two triangles always
// agree on which block a pixel belongs to.
type blockGrid struct {
	minX, minY     int
	stepsX, stepsY int
	size           int
}

func newBlockGrid(area image.Rectangle, size int) blockGrid {
	mask := ^(size - 1)
	minX := area.Min.X & mask
	minY := area.Min.Y & mask
	maxX := (area.Max.X - 1) & mask
	maxY := (area.Max.Y - 1) & mask
	return blockGrid{
		minX:   minX,
		minY:   minY,
		stepsX: (maxX-minX)/size + 1,
		stepsY: (maxY-minY)/size + 1,
		size:   size,
	}
}

func (g blockGrid) cells() int {
	return g.stepsX * g.stepsY
}

// origin returns the top-left pixel of cell i (row-major).
func (g blockGrid) origin(i int) (x, y int) {
	return g.minX + (i%g.stepsX)*g.size, g.minY + (i/g.stepsX)*g.size
}

// dispatch is the per-draw state shared read-only by all workers.
type dispatch struct {
	t        *TriangleEquations
	grid     blockGrid
	clip     image.Rectangle
	sink     Sink
	shader   Shader
	perPixel bool
}

// cells classifies and rasterizes cells [lo, hi).
func (d *dispatch) cells(lo, hi int) DrawStats {
	var s DrawStats
	for i := lo; i < hi; i++ {
		bx, by := d.grid.origin(i)

		cov := ClassifyBlock(d.t, bx, by, d.grid.size)
		switch cov {
		case CoverageAllOut:
			s.BlocksOut++
			continue
		case CoverageAllIn:
			s.BlocksIn++
			if d.perPixel {
				cov = CoveragePartial
			}
		default:
			s.BlocksPartial++
		}
		s.Pixels += RasterizeBlock(d.t, bx, by, d.grid.size, cov, d.clip, d.sink, d.shader)
	}
	return s
}
