package terrain

import (
	"errors"
	"fmt"
)

// Upsample is the number of heightfield cells per coarse cell along each axis.
const Upsample = 10

// ErrInvalidSize is returned when a grid size is not positive.
var ErrInvalidSize = errors.New("terrain: grid size must be positive")

// CoarseGrid is a size×size grid of digits (0–9) in row-major order.
type CoarseGrid struct {
	Size  int
	Cells []int
}

// NewCoarseGrid allocates an empty grid.
func NewCoarseGrid(size int) (*CoarseGrid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("coarse grid %d: %w", size, ErrInvalidSize)
	}
	return &CoarseGrid{Size: size, Cells: make([]int, size*size)}, nil
}

// At returns the value at column x, row y. Both coordinates wrap.
func (g *CoarseGrid) At(x, y int) int {
	return g.Cells[wrap(y, g.Size)*g.Size+wrap(x, g.Size)]
}

// HeightField is the dense (10·n)×(10·n) elevation grid. It is created once
// and never modified afterwards.
type HeightField struct {
	Size  int
	Cells []int
}

// At returns the height at column x, row y with periodic wraparound.
func (h *HeightField) At(x, y int) int {
	return h.Cells[wrap(y, h.Size)*h.Size+wrap(x, h.Size)]
}

// Height returns the elevation of column (x, z). Columns outside the field
// report false.
func (h *HeightField) Height(x, z int) (int, bool) {
	if x < 0 || x >= h.Size || z < 0 || z >= h.Size {
		return 0, false
	}
	return h.Cells[z*h.Size+x], true
}

// Tiled returns a view of h that repeats it endlessly in both directions.
func (h *HeightField) Tiled() Tiled {
	return Tiled{h}
}

// Tiled is an unbounded view over a HeightField. Because interpolation wraps
// at the edges the repetition is seamless.
type Tiled struct {
	field *HeightField
}

// Height returns the elevation of column (x, z). It always succeeds.
func (t Tiled) Height(x, z int) (int, bool) {
	return t.field.At(x, z), true
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
