package render

import "github.com/taigrr/cubeterm/pkg/math3d"

// CubeVertices are the corners of a unit cube centred on the origin.
var CubeVertices = [8]math3d.Vec3{
	{X: 0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: -0.5, Z: 0.5},
	{X: -0.5, Y: -0.5, Z: 0.5},
	{X: -0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: 0.5, Z: -0.5},
	{X: 0.5, Y: 0.5, Z: 0.5},
	{X: -0.5, Y: 0.5, Z: 0.5},
	{X: -0.5, Y: 0.5, Z: -0.5},
}

// CubeNormals holds the outward normal of each triangle in CubeFaces.
var CubeNormals = [12]math3d.Vec3{
	{X: 0, Y: -1, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: -1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: -1},
	{X: 0, Y: -1, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: -1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: -1},
}

// CubeFaces are the twelve triangles of the cube as indices into
// CubeVertices, two per side.
var CubeFaces = [12][3]int{
	{1, 2, 3},
	{7, 6, 5},
	{4, 5, 1},
	{5, 6, 2},
	{2, 6, 7},
	{0, 3, 7},
	{0, 1, 3},
	{4, 7, 5},
	{0, 4, 1},
	{1, 5, 2},
	{3, 2, 7},
	{4, 0, 7},
}

// CubeFace returns the corners and normal of triangle i.
func CubeFace(i int) (corners [3]math3d.Vec3, normal math3d.Vec3) {
	f := CubeFaces[i]
	return [3]math3d.Vec3{CubeVertices[f[0]], CubeVertices[f[1]], CubeVertices[f[2]]}, CubeNormals[i]
}
