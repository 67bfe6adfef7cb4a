package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Cell size of the bitmap font used by ToImage.
const (
	CellWidth  = 7
	CellHeight = 13
)

// ToImage renders the glyph grid with a 7×13 bitmap font, fg on bg.
func (fb *Framebuffer) ToImage(fg, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width*CellWidth, fb.Height*CellHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
	}

	for y := range fb.Height {
		for x := range fb.Width {
			g := fb.Cells[y*fb.Width+x]
			if g == Blank {
				continue
			}
			d.Dot = fixed.P(x*CellWidth, y*CellHeight+ascent)
			d.DrawString(string(g))
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file, white glyphs on black.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, fb.ToImage(color.White, color.Black)); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return f.Close()
}
