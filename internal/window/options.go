// Package window shows frames in a desktop window. The real implementation
// needs the ebiten build tag; without it Run reports ErrUnavailable.
package window

import (
	"errors"
	"image/color"

	"github.com/taigrr/cubeterm/pkg/render"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("window: built without the ebiten tag")

// Options configures the window.
type Options struct {
	Title string
	Scale int // Screen pixels per framebuffer cell
	TPS   int
	On    color.Color
	Off   color.Color
}

// DefaultOptions returns green-on-black cells at 5× scale, 30 ticks per
// second.
func DefaultOptions() Options {
	return Options{
		Title: "cubeterm",
		Scale: 5,
		TPS:   30,
		On:    color.RGBA{0, 255, 128, 255},
		Off:   color.Black,
	}
}

// fillRGBA converts the framebuffer into RGBA pixels in buf, one pixel per
// cell.
func fillRGBA(buf []byte, fb *render.Framebuffer, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range fb.Cells {
		base := i * 4
		if c != render.Blank {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
