// Package models converts terrain into triangle meshes and moves them in
// and out of glTF binary files.
package models

import (
	"github.com/taigrr/cubeterm/pkg/math3d"
	"github.com/taigrr/cubeterm/pkg/render"
)

// Mesh is an indexed triangle mesh. Faces wind counter-clockwise around
// their outward normal, as glTF expects.
type Mesh struct {
	Name     string
	Vertices []MeshVertex
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// MeshVertex holds the vertex attributes cubeterm exports.
type MeshVertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
}

// Face is a triangle as indices into Mesh.Vertices.
type Face struct {
	V [3]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// TerrainMesh builds one unit cube per column of hm within radius columns
// of (cx, cz), the same square window the renderer scans. Side triangles
// shared by two neighbouring cubes at equal height are left out.
func TerrainMesh(name string, hm render.HeightMap, cx, cz, radius int) *Mesh {
	m := NewMesh(name)

	for z := cz - radius; z <= cz+radius; z++ {
		for x := cx - radius; x <= cx+radius; x++ {
			h, ok := hm.Height(x, z)
			if !ok {
				continue
			}
			m.addCube(hm, x, h, z)
		}
	}
	m.CalculateBounds()
	return m
}

func (m *Mesh) addCube(hm render.HeightMap, x, h, z int) {
	center := math3d.V3(float64(x), float64(h), float64(z))
	base := len(m.Vertices)
	for _, v := range render.CubeVertices {
		m.Vertices = append(m.Vertices, MeshVertex{Position: v.Add(center)})
	}

	for i, f := range render.CubeFaces {
		n := render.CubeNormals[i]
		if n.Y == 0 {
			if nh, ok := hm.Height(x+int(n.X), z+int(n.Z)); ok && nh == h {
				continue
			}
		}
		m.Faces = append(m.Faces, Face{V: [3]int{base + f[0], base + f[1], base + f[2]}})
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceNormal returns the unit normal of face i from its winding.
func (m *Mesh) FaceNormal(i int) math3d.Vec3 {
	f := m.Faces[i]
	v0 := m.Vertices[f.V[0]].Position
	v1 := m.Vertices[f.V[1]].Position
	v2 := m.Vertices[f.V[2]].Position
	return v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
}

// CalculateSmoothNormals sets every vertex normal to the average of the
// normals of the faces around it.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Zero3()
	}

	// Accumulate area-weighted face normals per vertex
	for _, f := range m.Faces {
		v0 := m.Vertices[f.V[0]].Position
		v1 := m.Vertices[f.V[1]].Position
		v2 := m.Vertices[f.V[2]].Position
		normal := v1.Sub(v0).Cross(v2.Sub(v0))

		for _, idx := range f.V {
			m.Vertices[idx].Normal = m.Vertices[idx].Normal.Add(normal)
		}
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}
