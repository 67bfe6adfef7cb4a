package main

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/taigrr/cubeterm/internal/flight"
	"github.com/taigrr/cubeterm/pkg/math3d"
	"github.com/taigrr/cubeterm/pkg/render"
	"github.com/taigrr/cubeterm/pkg/terrain"
)

var errConfig = errors.New("invalid configuration")

// Config holds the settings shared by every command.
type Config struct {
	Width    int
	Height   int
	FOV      float64
	Near     float64
	Far      float64
	Distance float64

	MapSize int    // Heightfield cells per side, a multiple of 10
	Seed    uint32 // 0 derives a seed from the clock
	Source  string
	Wrap    bool

	Start  []float64
	Pitch  float64
	Yaw    float64
	Speed  float64
	Follow bool
	FPS    int

	Glyph     string
	DepthSort bool
	Fit       bool
}

// NewConfig returns the defaults: a 192×108 grid, 70° lens, 20 column
// render distance over a 1000×1000 map, starting at (50, 12, 50) and
// moving 0.3 units per frame.
func NewConfig() *Config {
	return &Config{
		Width:    192,
		Height:   108,
		FOV:      70,
		Near:     0.1,
		Far:      1000,
		Distance: 20,
		MapSize:  1000,
		Source:   terrain.SourceValue,
		Wrap:     true,
		Start:    []float64{50, 12, 50},
		Speed:    0.3,
		FPS:      30,
		Glyph:    string(render.Glyph),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "framebuffer columns")
	fs.IntVar(&c.Height, "height", c.Height, "framebuffer rows")
	fs.Float64Var(&c.FOV, "fov", c.FOV, "field of view in degrees")
	fs.Float64Var(&c.Near, "near", c.Near, "near clip plane")
	fs.Float64Var(&c.Far, "far", c.Far, "far clip plane")
	fs.Float64Var(&c.Distance, "distance", c.Distance, "render distance in columns")

	fs.IntVar(&c.MapSize, "map-size", c.MapSize, "terrain cells per side (multiple of 10)")
	fs.Uint32Var(&c.Seed, "seed", c.Seed, "terrain seed (0 picks one from the clock)")
	fs.StringVar(&c.Source, "source", c.Source, "coarse noise: value, perlin or simplex")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "repeat the terrain endlessly")

	fs.Float64SliceVar(&c.Start, "start", c.Start, "camera start position x,y,z")
	fs.Float64Var(&c.Pitch, "pitch", c.Pitch, "camera pitch in degrees (positive looks down)")
	fs.Float64Var(&c.Yaw, "yaw", c.Yaw, "camera heading in degrees")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "distance travelled per frame")
	fs.BoolVar(&c.Follow, "follow", c.Follow, "follow the ground instead of holding altitude")
	fs.IntVar(&c.FPS, "fps", c.FPS, "target frames per second")

	fs.StringVar(&c.Glyph, "glyph", c.Glyph, "character used for lines")
	fs.BoolVar(&c.DepthSort, "depth-sort", c.DepthSort, "draw far triangles first")
	fs.BoolVar(&c.Fit, "fit", c.Fit, "size the grid to the terminal (run only)")
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d must be at least 1x1", errConfig, c.Width, c.Height)
	case c.FOV <= 0 || c.FOV >= 180:
		return fmt.Errorf("%w: fov %v must be between 0 and 180", errConfig, c.FOV)
	case c.Near <= 0 || c.Far <= c.Near:
		return fmt.Errorf("%w: need 0 < near < far, got %v and %v", errConfig, c.Near, c.Far)
	case c.Distance < 0:
		return fmt.Errorf("%w: negative render distance %v", errConfig, c.Distance)
	case c.MapSize < terrain.Upsample || c.MapSize%terrain.Upsample != 0:
		return fmt.Errorf("%w: map size %d must be a positive multiple of %d", errConfig, c.MapSize, terrain.Upsample)
	case len(c.Start) != 3:
		return fmt.Errorf("%w: start needs three coordinates, got %d", errConfig, len(c.Start))
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d must be positive", errConfig, c.FPS)
	case utf8.RuneCountInString(c.Glyph) != 1:
		return fmt.Errorf("%w: glyph %q must be a single character", errConfig, c.Glyph)
	}
	if _, err := terrain.NewSource(c.Source, 1); err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	return nil
}

func (c *Config) renderOptions() render.Options {
	g, _ := utf8.DecodeRuneInString(c.Glyph)
	return render.Options{
		Width:     c.Width,
		Height:    c.Height,
		Distance:  c.Distance,
		Glyph:     g,
		DepthSort: c.DepthSort,
	}
}

// scene is everything a command needs to produce frames.
type scene struct {
	seed     uint32
	field    *terrain.HeightField
	heights  render.HeightMap
	camera   *render.Camera
	renderer *render.Renderer
	flight   *flight.Flight
}

func (c *Config) newScene(now time.Time) (*scene, error) {
	seed := c.Seed
	if seed == 0 {
		seed = uint32(now.UnixNano()) | 1
	}

	src, err := terrain.NewSource(c.Source, seed)
	if err != nil {
		return nil, err
	}
	field, err := terrain.Build(src, c.MapSize/terrain.Upsample)
	if err != nil {
		return nil, err
	}
	var hm render.HeightMap = field
	if c.Wrap {
		hm = field.Tiled()
	}

	cam := render.NewCamera(c.Width, c.Height)
	cam.SetProjection(c.FOV, float64(c.Height)/float64(c.Width), c.Near, c.Far)
	cam.SetPosition(math3d.V3(c.Start[0], c.Start[1], c.Start[2]))
	cam.SetRotation(c.Pitch, c.Yaw)

	r, err := render.NewRenderer(cam, hm, c.renderOptions())
	if err != nil {
		return nil, err
	}

	fl := flight.New(cam, hm, c.Speed, c.FPS)
	fl.Follow = c.Follow

	return &scene{
		seed:     seed,
		field:    field,
		heights:  hm,
		camera:   cam,
		renderer: r,
		flight:   fl,
	}, nil
}

// resize swaps in a renderer for a width×height grid, keeping the camera.
func (s *scene) resize(c *Config, width, height int) error {
	opts := c.renderOptions()
	opts.Width, opts.Height = width, height

	r, err := render.NewRenderer(s.camera, s.heights, opts)
	if err != nil {
		return err
	}
	s.camera.SetProjection(c.FOV, float64(height)/float64(width), c.Near, c.Far)
	s.renderer = r
	return nil
}
