package terrain

import (
	"fmt"
	"math"
)

const (
	digitsPerDraw = 10
	// Draws at or below minDraw are lifted by liftDraw so every draw has ten
	// decimal digits.
	minDraw  = 1_000_000_000
	liftDraw = 1_147_483_647
)

// GenerateCoarse fills a size×size grid with decimal digits drawn from the
// xorshift stream starting at seed. Each draw supplies ten digits, least
// significant first; the write position wraps modulo size² so the last draw
// may overwrite the first cells. It returns the advanced seed.
func GenerateCoarse(seed Seed, size int) (*CoarseGrid, Seed, error) {
	grid, err := NewCoarseGrid(size)
	if err != nil {
		return nil, seed, err
	}

	n := size * size
	draws := (n + digitsPerDraw - 1) / digitsPerDraw
	for i := range draws {
		var v uint32
		v, seed = seed.Next()
		if v <= minDraw {
			v += liftDraw
			seed = Seed(v)
		}
		for j := range digitsPerDraw {
			grid.Cells[(digitsPerDraw*i+j)%n] = int(v % 10)
			v /= 10
		}
	}
	return grid, seed, nil
}

// Interpolate upsamples a coarse grid into a heightfield. Each output cell
// blends the four surrounding coarse values: linearly along x, then along y
// with the smooth ease curve, and the result is floored. Neighbour lookups
// wrap on both axes, so the field tiles without seams.
func Interpolate(coarse *CoarseGrid) *HeightField {
	size := coarse.Size * Upsample
	hf := &HeightField{Size: size, Cells: make([]int, size*size)}

	for y := range size {
		py := float64(y) / Upsample
		fy := int(math.Floor(py))
		ty := min(py-float64(fy), 1)
		sy := smooth(ty)

		for x := range size {
			px := float64(x) / Upsample
			fx := int(math.Floor(px))
			tx := px - float64(fx)

			top := lerp(tx, float64(coarse.At(fx, fy)), float64(coarse.At(fx+1, fy)))
			bottom := lerp(tx, float64(coarse.At(fx, fy+1)), float64(coarse.At(fx+1, fy+1)))

			hf.Cells[y*size+x] = int(math.Floor(lerp(sy, top, bottom)))
		}
	}
	return hf
}

// Generate runs GenerateCoarse and Interpolate. The returned field is
// (10·size)² cells.
func Generate(seed Seed, size int) (*HeightField, error) {
	coarse, _, err := GenerateCoarse(seed, size)
	if err != nil {
		return nil, fmt.Errorf("generate terrain: %w", err)
	}
	return Interpolate(coarse), nil
}

// smooth is the quintic ease curve t³(6t²−15t+10).
func smooth(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}
