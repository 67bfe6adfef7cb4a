package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/taigrr/cubeterm/pkg/render"
)

const (
	steerStep = 15.0
	climbStep = 1.0
)

var errNotTerminal = errors.New("stdout is not a terminal; use `cubeterm frame` to render headless")

func newRunCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Fly over the terrain in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, cfg)
		},
	}
}

// session is the mutable state of an interactive run. It is only touched by
// the frame loop; the input goroutine sends closures over a channel.
type session struct {
	cfg    *Config
	scene  *scene
	term   *uv.Terminal
	width  int
	height int
	paused bool
	hud    bool
}

type action func(*session) error

func runInteractive(cmd *cobra.Command, cfg *Config) error {
	if !term.IsTerminal(os.Stdout.Fd()) {
		return errNotTerminal
	}

	sc, err := cfg.newScene(time.Now())
	if err != nil {
		return err
	}

	t := uv.DefaultTerminal()
	width, height, err := t.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := t.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	t.EnterAltScreen()
	t.HideCursor()

	defer func() {
		t.ExitAltScreen()
		t.ShowCursor()
		_ = t.Shutdown(context.Background())
	}()

	s := &session{cfg: cfg, scene: sc, term: t, hud: true}
	if err := s.resize(width, height); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	actions := make(chan action, 16)
	go readInput(ctx, cancel, t.Events(), actions)

	return s.loop(ctx, actions)
}

// readInput turns terminal events into actions until ctx is done.
func readInput(ctx context.Context, cancel context.CancelFunc, events <-chan uv.Event, actions chan<- action) {
	send := func(a action) {
		select {
		case actions <- a:
		case <-ctx.Done():
		}
	}

	for {
		var (
			ev uv.Event
			ok bool
		)
		select {
		case <-ctx.Done():
			return
		case ev, ok = <-events:
			if !ok {
				return
			}
		}

		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			w, h := ev.Width, ev.Height
			send(func(s *session) error { return s.resize(w, h) })
		case uv.KeyPressEvent:
			switch {
			case ev.MatchString("q", "escape", "ctrl+c"):
				cancel()
				return
			case ev.MatchString("space"):
				send(func(s *session) error { s.paused = !s.paused; return nil })
			case ev.MatchString("left", "a"):
				send(func(s *session) error { s.scene.flight.Steer(-steerStep); return nil })
			case ev.MatchString("right", "d"):
				send(func(s *session) error { s.scene.flight.Steer(steerStep); return nil })
			case ev.MatchString("up", "w"):
				send(func(s *session) error { s.scene.flight.Climb(climbStep); return nil })
			case ev.MatchString("down", "s"):
				send(func(s *session) error { s.scene.flight.Climb(-climbStep); return nil })
			case ev.MatchString("f"):
				send(func(s *session) error {
					s.scene.flight.Follow = !s.scene.flight.Follow
					return nil
				})
			case ev.MatchString("h"):
				send(func(s *session) error { s.hud = !s.hud; return nil })
			}
		}
	}
}

func (s *session) loop(ctx context.Context, actions <-chan action) error {
	frameTime := time.Second / time.Duration(s.cfg.FPS)
	counter := render.NewFrameCounter(time.Now())

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frameStart := time.Now()

	drain:
		for {
			select {
			case a := <-actions:
				if err := a(s); err != nil {
					return err
				}
			default:
				break drain
			}
		}

		if !s.paused {
			s.scene.flight.Step()
		}
		stats := s.scene.renderer.RenderFrame()

		if counter.Tick(frameStart) {
			_, _ = s.term.WriteString(ansi.SetWindowTitle("cubeterm " + counter.Label()))
		}
		s.draw(counter.Label(), stats)

		if err := s.term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		if elapsed := time.Since(frameStart); elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}
}

func (s *session) draw(label string, stats render.FrameStats) {
	s.term.Clear()

	grid := s.height
	if s.hud {
		grid--
	}
	s.scene.renderer.Framebuffer.DrawStyled(s.term, uv.Rect(0, 0, s.width, grid), cellStyle)

	if !s.hud {
		return
	}
	var extra []string
	if s.paused {
		extra = append(extra, pausedStyle.Render("paused"))
	}
	if s.scene.flight.Follow {
		extra = append(extra, footerStyle.Render("follow"))
	}
	line := statusLine(label, s.scene.seed, stats, extra...)
	uv.NewStyledString(line).Draw(s.term, uv.Rect(0, s.height-1, s.width, 1))
}

// resize tracks the terminal size and, with --fit, regrows the grid to it.
func (s *session) resize(width, height int) error {
	s.width, s.height = width, height
	s.term.Erase()
	if err := s.term.Resize(width, height); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}
	if !s.cfg.Fit || width < 1 || height < 2 {
		return nil
	}
	return s.scene.resize(s.cfg, width, height-1)
}
