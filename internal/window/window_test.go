package window

import (
	"image/color"
	"testing"

	"github.com/taigrr/cubeterm/pkg/render"
)

func TestFillRGBA(t *testing.T) {
	fb, err := render.NewFramebuffer(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	fb.Set(1, 0, render.Glyph)

	buf := make([]byte, 4*3)
	fillRGBA(buf, fb, color.RGBA{10, 20, 30, 255}, color.RGBA{0, 0, 0, 255})

	want := []byte{0, 0, 0, 255, 10, 20, 30, 255, 0, 0, 0, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Scale < 1 || opts.TPS < 1 || opts.On == nil || opts.Off == nil {
		t.Errorf("DefaultOptions() = %+v", opts)
	}
}
