package render

import (
	"fmt"
	"time"
)

// Options configures a Renderer.
type Options struct {
	Width     int
	Height    int
	Distance  float64
	Glyph     rune
	DepthSort bool
}

// DefaultOptions is a 192×108 grid with a render distance of 20 columns.
func DefaultOptions() Options {
	return Options{
		Width:    192,
		Height:   108,
		Distance: 20,
		Glyph:    Glyph,
	}
}

// FrameStats describes one rendered frame.
type FrameStats struct {
	CullingStats
	Lit     int // Cells holding the line glyph after rasterization
	Elapsed time.Duration
}

// Renderer runs the per-frame chain: clear, project, rasterize.
type Renderer struct {
	Camera      *Camera
	Terrain     HeightMap
	Framebuffer *Framebuffer
	Pipeline    *Pipeline
	Rasterizer  *Rasterizer

	// Scratch triangle list, reused every frame.
	tris []ScreenTriangle
}

// NewRenderer wires a camera and a heightmap to a fresh framebuffer.
func NewRenderer(cam *Camera, hm HeightMap, opts Options) (*Renderer, error) {
	fb, err := NewFramebuffer(opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("new renderer: %w", err)
	}
	pl, err := NewPipeline(opts.Width, opts.Height, opts.Distance)
	if err != nil {
		return nil, fmt.Errorf("new renderer: %w", err)
	}

	rast := NewRasterizer(fb)
	if opts.Glyph != 0 {
		rast.Glyph = opts.Glyph
	}
	rast.DepthSort = opts.DepthSort

	return &Renderer{
		Camera:      cam,
		Terrain:     hm,
		Framebuffer: fb,
		Pipeline:    pl,
		Rasterizer:  rast,
	}, nil
}

// RenderFrame draws the terrain as seen from the camera's current pose.
// The framebuffer holds the result until the next call.
func (r *Renderer) RenderFrame() FrameStats {
	start := time.Now()

	r.Framebuffer.Clear(Blank)
	r.Pipeline.Begin(r.Camera)
	r.tris = r.Pipeline.Scan(r.Terrain, r.tris[:0])
	r.Rasterizer.Draw(r.tris)

	return FrameStats{
		CullingStats: r.Pipeline.CullingStats,
		Lit:          r.Framebuffer.Count(r.Rasterizer.Glyph),
		Elapsed:      time.Since(start),
	}
}

// Triangles returns the triangles of the last frame. The slice is reused by
// the next RenderFrame.
func (r *Renderer) Triangles() []ScreenTriangle {
	return r.tris
}
