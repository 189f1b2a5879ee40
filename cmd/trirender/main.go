// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command trirender rasterizes a demo scene with trirast and saves it as a
// PNG or BMP file.
//
// Scenes:
//
//	triangles  two Gouraud-shaded triangles
//	box        a lit SDF box seen in perspective
//	cylinder   a lit SDF cylinder seen in perspective
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/trirast"
	"github.com/gogpu/trirast/framebuffer"
	"github.com/gogpu/trirast/mesh"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 640, "image height")
		output  = flag.String("output", "trirender.png", "output file (.png or .bmp)")
		scene   = flag.String("scene", "triangles", "scene: triangles, box or cylinder")
		block   = flag.Int("block", trirast.DefaultBlockSize, "block size (power of two)")
		workers = flag.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
		cells   = flag.Int("cells", mesh.DefaultCells, "marching cubes resolution for mesh scenes")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		trirast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := trirast.DefaultConfig()
	cfg.BlockSize = *block
	cfg.Workers = *workers

	fb, err := framebuffer.New(*width, *height, gputypes.TextureFormatRGBA8Unorm)
	if err != nil {
		log.Fatalf("framebuffer: %v", err)
	}
	fb.Clear(color.RGBA{A: 255})

	start := time.Now()
	stats, err := render(*scene, cfg, fb, *cells)
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	elapsed := time.Since(start)

	if err := fb.Save(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("%s saved to %s (%dx%d): %d pixels, %d/%d/%d blocks in/partial/out, %v\n",
		*scene, *output, *width, *height,
		stats.Pixels, stats.BlocksIn, stats.BlocksPartial, stats.BlocksOut, elapsed)
}

func render(scene string, cfg trirast.Config, fb *framebuffer.Framebuffer, cells int) (trirast.DrawStats, error) {
	switch scene {
	case "triangles":
		r, err := trirast.New(cfg)
		if err != nil {
			return trirast.DrawStats{}, err
		}
		defer r.Close()
		return drawTriangles(r, fb), nil

	case "box", "cylinder":
		cfg.InterpolateDepth = true
		cfg.PerspectiveVarCount = 3
		r, err := trirast.New(cfg)
		if err != nil {
			return trirast.DrawStats{}, err
		}
		defer r.Close()

		var m *mesh.Mesh
		if scene == "box" {
			m, err = mesh.Box(1, 1, 1, cells)
		} else {
			m, err = mesh.Cylinder(1.2, 0.5, cells)
		}
		if err != nil {
			return trirast.DrawStats{}, err
		}
		return drawMesh(r, m, fb), nil

	default:
		return trirast.DrawStats{}, fmt.Errorf("unknown scene %q", scene)
	}
}

// drawTriangles draws a triangle and a copy of it 550 pixels lower, scaled
// to the canvas.
func drawTriangles(r *trirast.Rasterizer, fb *framebuffer.Framebuffer) trirast.DrawStats {
	sx := float64(fb.Width()) / 640
	sy := float64(fb.Height()) / 640

	v := func(x, y, cr, cg, cb float64) trirast.Vertex {
		return trirast.NewVertex(x*sx, y*sy, cr, cg, cb)
	}

	var stats trirast.DrawStats
	stats.Add(r.DrawTriangle(
		v(500, 50, 0, 0, 0.8),
		v(250, 300, 0, 0.8, 0),
		v(10, 10, 0.8, 0, 0),
		fb, nil))
	stats.Add(r.DrawTriangle(
		v(500, 600, 0, 0, 0.8),
		v(250, 630, 0, 0.8, 0),
		v(10, 590, 0.8, 0, 0),
		fb, nil))
	return stats
}

func drawMesh(r *trirast.Rasterizer, m *mesh.Mesh, fb *framebuffer.Framebuffer) trirast.DrawStats {
	cam := mesh.NewCamera(f64.Vec3{1.6, 1.2, 2.4}, f64.Vec3{}, math.Pi/4, fb.Width(), fb.Height())
	opts := mesh.DefaultDrawOptions()
	opts.Model = mesh.Mul(mesh.RotateY(math.Pi/6), mesh.RotateX(-math.Pi/2))
	opts.Color = f64.Vec3{0.95, 0.6, 0.25}
	return m.Draw(r, cam, opts, fb)
}
