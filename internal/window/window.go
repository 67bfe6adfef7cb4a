//go:build ebiten

package window

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/taigrr/cubeterm/pkg/render"
)

// Game adapts a renderer to the ebiten.Game interface.
type Game struct {
	r    *render.Renderer
	step func()
	opts Options

	img     *ebiten.Image
	buf     []byte
	counter *render.FrameCounter
	paused  bool
}

// New constructs a Game. step is called before every rendered frame.
func New(r *render.Renderer, step func(), opts Options) *Game {
	fb := r.Framebuffer
	return &Game{
		r:       r,
		step:    step,
		opts:    opts,
		img:     ebiten.NewImage(fb.Width, fb.Height),
		buf:     make([]byte, 4*fb.Width*fb.Height),
		counter: render.NewFrameCounter(time.Now()),
	}
}

// Update handles input and renders the next frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	if g.step != nil {
		g.step()
	}
	g.r.RenderFrame()
	if g.counter.Tick(time.Now()) {
		ebiten.SetWindowTitle(g.opts.Title + " " + g.counter.Label())
	}
	return nil
}

// Draw uploads the framebuffer and scales it onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	fillRGBA(g.buf, g.r.Framebuffer, g.opts.On, g.opts.Off)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.opts.Scale), float64(g.opts.Scale))
	screen.DrawImage(g.img, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.r.Framebuffer
	return fb.Width * g.opts.Scale, fb.Height * g.opts.Scale
}

// Run opens the window and blocks until it is closed.
func Run(r *render.Renderer, step func(), opts Options) error {
	g := New(r, step, opts)
	fb := r.Framebuffer

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(fb.Width*opts.Scale, fb.Height*opts.Scale)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
