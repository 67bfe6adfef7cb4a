//go:build !ebiten

package window

import "github.com/taigrr/cubeterm/pkg/render"

// Run always fails in the headless build.
func Run(*render.Renderer, func(), Options) error {
	return ErrUnavailable
}
