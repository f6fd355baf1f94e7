// Package model provides CPU-side triangle meshes and procedural builders.
package model

import "github.com/Faultbox/furgroom/pkg/math"

// Vertex is an interleaved mesh vertex with position, normal, and texture
// coordinates, laid out for direct GPU upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds indexed triangles ready for GPU upload.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the positions of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c math.Vec3) {
	a = math.Vec3From(m.Vertices[m.Indices[3*i]].Position)
	b = math.Vec3From(m.Vertices[m.Indices[3*i+1]].Position)
	c = math.Vec3From(m.Vertices[m.Indices[3*i+2]].Position)
	return a, b, c
}

// Validate reports whether every index refers to a vertex and the index
// count is a multiple of three.
func (m *Mesh) Validate() bool {
	if len(m.Indices)%3 != 0 || len(m.Indices) == 0 {
		return false
	}
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return false
		}
	}
	return true
}

// ComputeBounds recalculates Bounds from the vertices.
func (m *Mesh) ComputeBounds() {
	b := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for _, v := range m.Vertices {
		for k := 0; k < 3; k++ {
			if v.Position[k] < b.Min[k] {
				b.Min[k] = v.Position[k]
			}
			if v.Position[k] > b.Max[k] {
				b.Max[k] = v.Position[k]
			}
		}
	}
	m.Bounds = b
}

// Center returns the middle of the box.
func (b Bounds) Center() math.Vec3 {
	return math.Vec3{
		X: (b.Min[0] + b.Max[0]) / 2,
		Y: (b.Min[1] + b.Max[1]) / 2,
		Z: (b.Min[2] + b.Max[2]) / 2,
	}
}

// Radius returns half the diagonal of the box.
func (b Bounds) Radius() float32 {
	return math.Vec3From(b.Max).Distance(math.Vec3From(b.Min)) / 2
}
