// Command cubeterm flies over procedurally generated voxel terrain and draws
// it as wireframe cubes on a character grid.
//
// Usage:
//
//	cubeterm [run] [flags]      - Fly interactively in the terminal
//	cubeterm frame [flags]      - Render headless, print or save the last frame
//	cubeterm export FILE.glb    - Write the terrain around the camera as glTF
//	cubeterm window [flags]     - Fly in a desktop window (ebiten builds)
//
// Controls (run):
//
//	Left/Right, A/D - Steer
//	Up/Down, W/S    - Climb and descend
//	F               - Toggle ground following
//	Space           - Pause
//	H               - Toggle status line
//	Q, Esc          - Quit
package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := NewConfig()

	root := &cobra.Command{
		Use:   "cubeterm",
		Short: "Wireframe voxel terrain in the terminal",
		Long: "cubeterm generates a value-noise heightfield, stands a unit cube on every\n" +
			"column and flies a camera over it, drawing the cubes as wireframes.",
		Args: cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, cfg)
		},
	}
	cfg.Bind(root.PersistentFlags())

	root.AddCommand(
		newRunCmd(cfg),
		newFrameCmd(cfg),
		newExportCmd(cfg),
		newWindowCmd(cfg),
	)
	return root
}
