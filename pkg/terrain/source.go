package terrain

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Source produces coarse grids. Every source fills the grid with the same
// 0–9 digit range so the output can go through Interpolate unchanged.
type Source interface {
	Coarse(size int) (*CoarseGrid, error)
}

// Source kinds accepted by NewSource.
const (
	SourceValue   = "value"
	SourcePerlin  = "perlin"
	SourceSimplex = "simplex"
)

// NewSource returns the named coarse-grid source seeded with seed.
func NewSource(kind string, seed uint32) (Source, error) {
	switch kind {
	case SourceValue, "":
		return &ValueSource{Seed: Seed(seed)}, nil
	case SourcePerlin:
		return NewPerlinSource(int64(seed)), nil
	case SourceSimplex:
		return NewSimplexSource(int64(seed)), nil
	default:
		return nil, fmt.Errorf("unknown terrain source %q (want %s, %s or %s)",
			kind, SourceValue, SourcePerlin, SourceSimplex)
	}
}

// Build draws a coarse grid from src and interpolates it.
func Build(src Source, size int) (*HeightField, error) {
	coarse, err := src.Coarse(size)
	if err != nil {
		return nil, fmt.Errorf("build terrain: %w", err)
	}
	return Interpolate(coarse), nil
}

// ValueSource is the xorshift digit generator. Seed advances with every call.
type ValueSource struct {
	Seed Seed
}

// Coarse implements Source.
func (s *ValueSource) Coarse(size int) (*CoarseGrid, error) {
	grid, next, err := GenerateCoarse(s.Seed, size)
	if err != nil {
		return nil, err
	}
	s.Seed = next
	return grid, nil
}

// PerlinSource samples fractal Perlin noise at each coarse cell. It does not
// tile: the wrapped interpolation shows a seam at the field's edge.
type PerlinSource struct {
	noise *perlin.Perlin
	Scale float64
}

// NewPerlinSource returns a Perlin source with two octaves.
func NewPerlinSource(seed int64) *PerlinSource {
	return &PerlinSource{
		noise: perlin.NewPerlin(2, 2, 2, seed),
		Scale: 0.137,
	}
}

// Coarse implements Source.
func (s *PerlinSource) Coarse(size int) (*CoarseGrid, error) {
	grid, err := NewCoarseGrid(size)
	if err != nil {
		return nil, err
	}
	for y := range size {
		for x := range size {
			v := s.noise.Noise2D(float64(x)*s.Scale, float64(y)*s.Scale)
			grid.Cells[y*size+x] = toDigit(v)
		}
	}
	return grid, nil
}

// SimplexSource samples OpenSimplex noise on a torus embedded in 4D, so the
// coarse grid wraps around in both directions just like the value source.
type SimplexSource struct {
	noise opensimplex.Noise
	// Radius of the sampling torus in noise units per coarse grid length.
	Radius float64
}

// NewSimplexSource returns a simplex source.
func NewSimplexSource(seed int64) *SimplexSource {
	return &SimplexSource{noise: opensimplex.New(seed), Radius: 1.5}
}

// Coarse implements Source.
func (s *SimplexSource) Coarse(size int) (*CoarseGrid, error) {
	grid, err := NewCoarseGrid(size)
	if err != nil {
		return nil, err
	}
	// Keep feature size independent of the grid size.
	r := s.Radius * float64(size) / (2 * math.Pi) / 4
	for y := range size {
		b := 2 * math.Pi * float64(y) / float64(size)
		for x := range size {
			a := 2 * math.Pi * float64(x) / float64(size)
			v := s.noise.Eval4(r*math.Cos(a), r*math.Sin(a), r*math.Cos(b), r*math.Sin(b))
			grid.Cells[y*size+x] = toDigit(v)
		}
	}
	return grid, nil
}

// toDigit maps noise in roughly [-1, 1] onto 0–9.
func toDigit(v float64) int {
	d := int(math.Floor((v + 1) * 5))
	return max(0, min(9, d))
}
