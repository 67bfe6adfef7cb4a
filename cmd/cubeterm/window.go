package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/taigrr/cubeterm/internal/window"
)

func newWindowCmd(cfg *Config) *cobra.Command {
	opts := window.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Fly over the terrain in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := cfg.newScene(time.Now())
			if err != nil {
				return err
			}
			opts.TPS = cfg.FPS

			err = window.Run(sc.renderer, sc.flight.Step, opts)
			if errors.Is(err, window.ErrUnavailable) {
				return fmt.Errorf("%w: rebuild with `go build -tags ebiten`", err)
			}
			return err
		},
	}

	cmd.Flags().IntVar(&opts.Scale, "scale", opts.Scale, "screen pixels per cell")
	return cmd
}
