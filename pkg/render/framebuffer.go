// Package render draws a heightfield as wireframe cubes on a character grid.
//
// A frame goes through a fixed chain: the Camera supplies view and
// projection matrices, the Pipeline turns every terrain column near the
// camera into a unit cube and keeps the front-facing, fully on-screen
// triangles, and the Rasterizer traces their edges into a Framebuffer of
// glyphs.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Default glyphs.
const (
	Blank = ' '
	Glyph = '.'
)

// ErrInvalidViewport is returned for framebuffers with a non-positive size.
var ErrInvalidViewport = errors.New("render: viewport must be at least 1x1")

// Framebuffer is a Width×Height grid of glyphs in row-major order.
type Framebuffer struct {
	Width  int
	Height int
	Cells  []rune
}

// NewFramebuffer creates a blank framebuffer.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("framebuffer %dx%d: %w", width, height, ErrInvalidViewport)
	}
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Cells:  make([]rune, width*height),
	}
	fb.Clear(Blank)
	return fb, nil
}

// Clear fills every cell with g.
func (fb *Framebuffer) Clear(g rune) {
	// Use copy-doubling for faster clearing
	n := len(fb.Cells)
	if n == 0 {
		return
	}
	fb.Cells[0] = g
	for i := 1; i < n; i *= 2 {
		copy(fb.Cells[i:], fb.Cells[:i])
	}
}

// Set writes g at column x, row y. Writes outside the grid are dropped.
func (fb *Framebuffer) Set(x, y int, g rune) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Cells[y*fb.Width+x] = g
}

// Get returns the glyph at (x, y), or Blank outside the grid.
func (fb *Framebuffer) Get(x, y int) rune {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Blank
	}
	return fb.Cells[y*fb.Width+x]
}

// Row returns row y as a string.
func (fb *Framebuffer) Row(y int) string {
	if y < 0 || y >= fb.Height {
		return ""
	}
	return string(fb.Cells[y*fb.Width : (y+1)*fb.Width])
}

// String returns the grid with rows separated by newlines.
func (fb *Framebuffer) String() string {
	var b strings.Builder
	b.Grow((fb.Width + 1) * fb.Height)
	for y := range fb.Height {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(fb.Row(y))
	}
	return b.String()
}

// WriteTo writes the grid followed by a trailing newline.
func (fb *Framebuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, fb.String()+"\n")
	return int64(n), err
}

// Count returns how many cells hold g.
func (fb *Framebuffer) Count(g rune) int {
	n := 0
	for _, c := range fb.Cells {
		if c == g {
			n++
		}
	}
	return n
}

// DrawLine traces the segment (x1, y1)–(x2, y2) with Bresenham's integer
// algorithm. Steep lines are walked along y; the walk always runs with
// increasing major coordinate, so a segment and its reverse light the same
// cells.
func (fb *Framebuffer) DrawLine(x1, y1, x2, y2 int, g rune) {
	steep := abs(y2-y1) > abs(x2-x1)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	dx := x2 - x1
	dy := abs(y2 - y1)
	err := dx / 2
	ystep := -1
	if y1 < y2 {
		ystep = 1
	}

	y := y1
	for x := x1; x <= x2; x++ {
		if steep {
			fb.Set(y, x, g)
		} else {
			fb.Set(x, y, g)
		}
		err -= dy
		if err < 0 {
			y += ystep
			err += dx
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
