package main

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/taigrr/cubeterm/pkg/render"
)

func newFrameCmd(cfg *Config) *cobra.Command {
	var (
		frames int
		png    string
		plain  bool
	)

	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Render frames without a terminal and print the last one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if frames < 1 {
				return fmt.Errorf("%w: --frames %d must be at least 1", errConfig, frames)
			}

			sc, err := cfg.newScene(time.Now())
			if err != nil {
				return err
			}

			var (
				stats render.FrameStats
				total time.Duration
			)
			for range frames {
				sc.flight.Step()
				stats = sc.renderer.RenderFrame()
				total += stats.Elapsed
			}
			fb := sc.renderer.Framebuffer

			if png != "" {
				if err := fb.SavePNG(png); err != nil {
					return err
				}
				cmd.Printf("wrote %s (%dx%d cells)\n", png, fb.Width, fb.Height)
				return nil
			}

			out := cmd.OutOrStdout()
			if plain {
				_, err := fb.WriteTo(out)
				return err
			}

			avg := total / time.Duration(frames)
			label := fmt.Sprintf("frame %d", frames)
			lipgloss.Fprintln(out, frameStyle.Render(fb.String()))
			lipgloss.Fprintln(out, statusLine(label, sc.seed, stats,
				footerStyle.Render(fmt.Sprintf("%d culled", stats.BackFaces)),
				footerStyle.Render(fmt.Sprintf("%d rejected", stats.Rejected)),
				footerStyle.Render(fmt.Sprintf("%s/frame", avg.Round(time.Microsecond))),
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&frames, "frames", "n", 1, "frames to simulate before printing")
	cmd.Flags().StringVar(&png, "png", "", "save the last frame as a PNG instead of printing it")
	cmd.Flags().BoolVar(&plain, "plain", false, "print the raw grid without styling")
	return cmd
}

