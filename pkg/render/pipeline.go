package render

import (
	"fmt"
	"math"

	"github.com/taigrr/cubeterm/pkg/math3d"
)

// HeightMap reports the terrain elevation of column (x, z). ok is false for
// columns that do not exist.
type HeightMap interface {
	Height(x, z int) (h int, ok bool)
}

// Point is a screen position in cells.
type Point struct {
	X, Y int
}

// ScreenTriangle is a projected cube face ready for rasterization.
type ScreenTriangle struct {
	P    [3]Point
	InvW [3]float64 // 1/w per corner; larger is nearer
	Face int        // index into CubeFaces
}

// Depth returns the mean inverse depth of the triangle.
func (t ScreenTriangle) Depth() float64 {
	return (t.InvW[0] + t.InvW[1] + t.InvW[2]) / 3
}

// CullingStats counts what happened to the geometry of one frame.
type CullingStats struct {
	Columns   int // Terrain columns inside the render window
	Faces     int // Faces tested for facing
	BackFaces int // Faces culled as facing away
	Rejected  int // Front faces dropped during projection
	Accepted  int // Triangles handed to the rasterizer
}

// Pipeline projects terrain cubes to screen triangles. Begin must be called
// once per frame before ProjectCube or Scan.
type Pipeline struct {
	Width    int
	Height   int
	Distance float64 // Render distance in columns along each axis

	CullingStats CullingStats

	camPos math3d.Vec3
	view   math3d.Mat4
	proj   math3d.Mat4
}

// NewPipeline creates a pipeline for a width×height viewport.
func NewPipeline(width, height int, distance float64) (*Pipeline, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pipeline %dx%d: %w", width, height, ErrInvalidViewport)
	}
	return &Pipeline{Width: width, Height: height, Distance: distance}, nil
}

// Begin snapshots the camera for the coming frame and resets the stats.
func (p *Pipeline) Begin(cam *Camera) {
	p.camPos = cam.Position
	p.view = cam.ViewMatrix()
	p.proj = cam.ProjectionMatrix()
	p.CullingStats = CullingStats{}
}

// Scan walks every column within Distance of the camera on both axes, rows
// (z) outer and columns (x) inner, and appends the triangles of the cube
// standing on each one to dst.
func (p *Pipeline) Scan(hm HeightMap, dst []ScreenTriangle) []ScreenTriangle {
	x0 := int(math.Ceil(p.camPos.X - p.Distance))
	x1 := int(math.Floor(p.camPos.X + p.Distance))
	z0 := int(math.Ceil(p.camPos.Z - p.Distance))
	z1 := int(math.Floor(p.camPos.Z + p.Distance))

	for z := z0; z <= z1; z++ {
		for x := x0; x <= x1; x++ {
			h, ok := hm.Height(x, z)
			if !ok {
				continue
			}
			p.CullingStats.Columns++
			dst = p.ProjectCube(math3d.V3(float64(x), float64(h), float64(z)), dst)
		}
	}
	return dst
}

// ProjectCube appends the visible triangles of the unit cube centred at pos
// to dst, in face order.
//
// A face is kept when its first corner, relative to the camera, points
// against the face normal. A kept face is dropped whole if any corner lands
// behind the camera, has a degenerate w, or rounds to a point outside
// [0, Width]×[0, Height].
func (p *Pipeline) ProjectCube(pos math3d.Vec3, dst []ScreenTriangle) []ScreenTriangle {
	center := pos.Sub(p.camPos)

	for i, face := range CubeFaces {
		p.CullingStats.Faces++

		sample := CubeVertices[face[0]].Add(center)
		if sample.Dot(CubeNormals[i]) >= 0 {
			p.CullingStats.BackFaces++
			continue
		}

		tri := ScreenTriangle{Face: i}
		visible := true
		for j, idx := range face {
			pt, invW, ok := p.project(CubeVertices[idx].Add(center))
			if !ok {
				visible = false
				break
			}
			tri.P[j] = pt
			tri.InvW[j] = invW
		}
		if !visible {
			p.CullingStats.Rejected++
			continue
		}

		p.CullingStats.Accepted++
		dst = append(dst, tri)
	}
	return dst
}

// project maps a camera-relative point to screen cells.
func (p *Pipeline) project(v math3d.Vec3) (Point, float64, bool) {
	clip := p.proj.MulVec4(p.view.MulVec4(math3d.V4FromV3(v, 1)))
	if !clip.Finite() || clip.W <= 0 {
		return Point{}, 0, false
	}

	w, h := float64(p.Width), float64(p.Height)
	sx := math.Round((clip.X/clip.W + 1) * w / 2)
	sy := h - math.Round((clip.Y/clip.W+1)*h/2)
	// Compare as floats: a tiny w can push the quotient past the int range.
	if !(sx >= 0 && sx <= w && sy >= 0 && sy <= h) {
		return Point{}, 0, false
	}
	return Point{int(sx), int(sy)}, 1 / clip.W, true
}
