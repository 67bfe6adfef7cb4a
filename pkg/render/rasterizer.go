package render

import (
	"cmp"
	"slices"
)

// Rasterizer traces triangle edges into a framebuffer. There is no depth
// buffer: later triangles overwrite earlier ones.
type Rasterizer struct {
	fb    *Framebuffer
	Glyph rune

	// DepthSort draws far triangles first instead of in traversal order.
	DepthSort bool
}

// NewRasterizer creates a rasterizer drawing Glyph into fb.
func NewRasterizer(fb *Framebuffer) *Rasterizer {
	return &Rasterizer{fb: fb, Glyph: Glyph}
}

// Draw rasterizes the edges (0,1), (1,2) and (2,0) of every triangle. With
// DepthSort set, tris is reordered in place.
func (r *Rasterizer) Draw(tris []ScreenTriangle) {
	if r.DepthSort {
		SortBackToFront(tris)
	}
	for i := range tris {
		r.DrawTriangle(&tris[i])
	}
}

// DrawTriangle rasterizes the three edges of t.
func (r *Rasterizer) DrawTriangle(t *ScreenTriangle) {
	for j := range 3 {
		a, b := t.P[j], t.P[(j+1)%3]
		r.fb.DrawLine(a.X, a.Y, b.X, b.Y, r.Glyph)
	}
}

// SortBackToFront orders tris by increasing mean inverse depth, keeping
// traversal order among equals.
func SortBackToFront(tris []ScreenTriangle) {
	slices.SortStableFunc(tris, func(a, b ScreenTriangle) int {
		return cmp.Compare(a.Depth(), b.Depth())
	})
}
