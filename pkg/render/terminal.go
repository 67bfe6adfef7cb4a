package render

import (
	uv "github.com/charmbracelet/ultraviolet"
)

// Draw copies the framebuffer onto scr with its top-left corner at
// area.Min. Cells beyond either the area or the framebuffer are left alone.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	fb.DrawStyled(scr, area, uv.Style{})
}

// DrawStyled is Draw with every cell painted in style.
func (fb *Framebuffer) DrawStyled(scr uv.Screen, area uv.Rectangle, style uv.Style) {
	rows := min(fb.Height, area.Dy())
	cols := min(fb.Width, area.Dx())

	for y := range rows {
		for x := range cols {
			scr.SetCell(area.Min.X+x, area.Min.Y+y, &uv.Cell{
				Content: string(fb.Cells[y*fb.Width+x]),
				Width:   1,
				Style:   style,
			})
		}
	}
}
