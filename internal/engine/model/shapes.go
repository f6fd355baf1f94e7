package model

import (
	"github.com/chewxy/math32"
)

// Plane builds a flat square of the given size on the XZ plane, centered at
// the origin with normals along +Y, split into segments x segments quads.
// Texture coordinates span [0, 1] across the square.
func Plane(size float32, segments int) *Mesh {
	if segments < 1 {
		segments = 1
	}

	m := &Mesh{Name: "plane"}
	half := size / 2
	step := size / float32(segments)

	for z := 0; z <= segments; z++ {
		for x := 0; x <= segments; x++ {
			u := float32(x) / float32(segments)
			v := float32(z) / float32(segments)
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{-half + float32(x)*step, 0, -half + float32(z)*step},
				Normal:   [3]float32{0, 1, 0},
				TexCoord: [2]float32{u, v},
			})
		}
	}

	row := uint32(segments + 1)
	for z := uint32(0); z < uint32(segments); z++ {
		for x := uint32(0); x < uint32(segments); x++ {
			i := z*row + x
			// Counter-clockwise seen from +Y.
			m.Indices = append(m.Indices, i, i+row, i+1, i+1, i+row, i+row+1)
		}
	}

	m.ComputeBounds()
	return m
}

// Sphere builds a UV sphere. rings and sectors are clamped to at least 3.
func Sphere(radius float32, rings, sectors int) *Mesh {
	if rings < 3 {
		rings = 3
	}
	if sectors < 3 {
		sectors = 3
	}

	m := &Mesh{Name: "sphere"}

	for r := 0; r <= rings; r++ {
		v := float32(r) / float32(rings)
		phi := v * math32.Pi
		sinPhi, cosPhi := math32.Sincos(phi)

		for s := 0; s <= sectors; s++ {
			u := float32(s) / float32(sectors)
			theta := u * 2 * math32.Pi
			sinTheta, cosTheta := math32.Sincos(theta)

			n := [3]float32{cosTheta * sinPhi, cosPhi, sinTheta * sinPhi}
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{n[0] * radius, n[1] * radius, n[2] * radius},
				Normal:   n,
				TexCoord: [2]float32{u, v},
			})
		}
	}

	row := uint32(sectors + 1)
	for r := uint32(0); r < uint32(rings); r++ {
		for s := uint32(0); s < uint32(sectors); s++ {
			i := r*row + s
			m.Indices = append(m.Indices, i, i+1, i+row, i+1, i+row+1, i+row)
		}
	}

	m.ComputeBounds()
	return m
}
