package main

import (
	"math"
	"time"

	"github.com/spf13/cobra"
	"github.com/taigrr/cubeterm/pkg/models"
)

func newExportCmd(cfg *Config) *cobra.Command {
	var radius int

	cmd := &cobra.Command{
		Use:   "export FILE.glb",
		Short: "Write the terrain around the camera start as a binary glTF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := cfg.newScene(time.Now())
			if err != nil {
				return err
			}
			if radius < 0 {
				radius = int(cfg.Distance)
			}

			pos := sc.camera.Position
			cx := int(math.Round(pos.X))
			cz := int(math.Round(pos.Z))
			mesh := models.TerrainMesh("terrain", sc.heights, cx, cz, radius)
			if err := models.SaveGLB(mesh, args[0]); err != nil {
				return err
			}

			cmd.Printf("wrote %s: %d vertices, %d triangles (seed %d)\n",
				args[0], mesh.VertexCount(), mesh.TriangleCount(), sc.seed)
			return nil
		},
	}

	cmd.Flags().IntVar(&radius, "radius", -1, "columns around the start to export (default: --distance)")
	return cmd
}
