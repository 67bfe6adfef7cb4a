package render

import (
	"testing"
	"time"

	"github.com/taigrr/cubeterm/pkg/math3d"
)

func newTestRenderer(t *testing.T, hm HeightMap, opts Options) *Renderer {
	t.Helper()
	cam := NewCamera(opts.Width, opts.Height)
	r, err := NewRenderer(cam, hm, opts)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestRenderFrame(t *testing.T) {
	r := newTestRenderer(t, flat(0), DefaultOptions())

	stats := r.RenderFrame()
	if stats.Columns != 41*41 {
		t.Errorf("columns = %d, want %d", stats.Columns, 41*41)
	}
	if stats.Accepted == 0 || stats.Lit == 0 {
		t.Fatalf("empty frame: %+v", stats)
	}
	if stats.Accepted != len(r.Triangles()) {
		t.Errorf("accepted %d, kept %d", stats.Accepted, len(r.Triangles()))
	}
	if got := r.Framebuffer.Count(Glyph); got != stats.Lit {
		t.Errorf("lit = %d, framebuffer has %d", stats.Lit, got)
	}

	// The camera at y=12 looks level over a plain at y=0: nothing above the
	// horizon row.
	for y := range 54 {
		if row := r.Framebuffer.Row(y); containsGlyph(row) {
			t.Fatalf("row %d above the horizon has ink: %q", y, row)
		}
	}
}

func containsGlyph(row string) bool {
	for _, c := range row {
		if c != Blank {
			return true
		}
	}
	return false
}

func TestRenderFrameDeterministic(t *testing.T) {
	a := newTestRenderer(t, patch(100), DefaultOptions())
	b := newTestRenderer(t, patch(100), DefaultOptions())

	for range 5 {
		a.Camera.Move(math3d.V3(0, 0, 0.3))
		b.Camera.Move(math3d.V3(0, 0, 0.3))
		a.RenderFrame()
		b.RenderFrame()
	}
	if a.Framebuffer.String() != b.Framebuffer.String() {
		t.Error("identical inputs produced different frames")
	}
}

func TestRenderFrameClearsPreviousFrame(t *testing.T) {
	hm := patch(100)
	r := newTestRenderer(t, hm, DefaultOptions())
	r.RenderFrame()

	// Fly far away from the patch: the next frame must be blank.
	r.Camera.SetPosition(math3d.V3(1000, 12, 1000))
	stats := r.RenderFrame()
	if stats.Lit != 0 || stats.Columns != 0 {
		t.Errorf("frame away from the map: %+v", stats)
	}
	if r.Framebuffer.Count(Blank) != 192*108 {
		t.Error("previous frame not cleared")
	}
}

func TestRenderFrameEmptyWorld(t *testing.T) {
	r := newTestRenderer(t, empty{}, DefaultOptions())
	stats := r.RenderFrame()
	if stats.Lit != 0 || stats.Accepted != 0 {
		t.Errorf("empty world drew something: %+v", stats)
	}
}

func TestNewRendererOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Glyph = '*'
	opts.DepthSort = true
	r := newTestRenderer(t, flat(0), opts)
	if r.Rasterizer.Glyph != '*' || !r.Rasterizer.DepthSort {
		t.Errorf("rasterizer = %+v", r.Rasterizer)
	}

	opts.Width = 0
	if _, err := NewRenderer(NewCamera(1, 1), flat(0), opts); err == nil {
		t.Error("NewRenderer with zero width succeeded")
	}
}

func TestFrameCounter(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewFrameCounter(start)

	for i := 1; i < 30; i++ {
		if c.Tick(start.Add(time.Duration(i) * time.Second / 30)) {
			t.Fatalf("rate refreshed after %d frames", i)
		}
	}
	if !c.Tick(start.Add(time.Second)) {
		t.Fatal("rate not refreshed after one second")
	}
	if c.FPS() != 30 {
		t.Errorf("FPS() = %v, want 30", c.FPS())
	}
	if got := c.Label(); got != "30 FPS" {
		t.Errorf("Label() = %q, want %q", got, "30 FPS")
	}
}

func BenchmarkRenderFrame(b *testing.B) {
	cam := NewCamera(192, 108)
	r, err := NewRenderer(cam, flat(0), DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		r.RenderFrame()
	}
}
