package noise

import (
	"math"
	"math/rand"
)

// perlin is 2D gradient noise over a seeded 256-entry permutation.
type perlin struct {
	perm [512]int
}

// newPerlin shuffles the permutation table from rng.
func newPerlin(rng *rand.Rand) *perlin {
	p := &perlin{}

	var perm [256]int
	for i := range perm {
		perm[i] = i
	}

	for i := len(perm) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	// Duplicate so corner lookups never wrap
	for i := 0; i < 256; i++ {
		p.perm[i] = perm[i]
		p.perm[i+256] = perm[i]
	}

	return p
}

// Noise2D returns gradient noise in [-1, 1]. It is zero on lattice points.
func (p *perlin) Noise2D(x, y float64) float64 {
	xf := math.Floor(x)
	yf := math.Floor(y)

	X := int(xf) & 255
	Y := int(yf) & 255

	x -= xf
	y -= yf

	u := fade(x)
	v := fade(y)

	A := p.perm[X] + Y
	B := p.perm[X+1] + Y

	return lerp(v,
		lerp(u, grad2D(p.perm[A], x, y), grad2D(p.perm[B], x-1, y)),
		lerp(u, grad2D(p.perm[A+1], x, y-1), grad2D(p.perm[B+1], x-1, y-1)))
}

// Sample returns noise remapped to [0, 1].
func (p *perlin) Sample(x, y float64) float64 {
	n := (p.Noise2D(x, y) + 1) * 0.5
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad2D picks one of eight gradients (axis and diagonal) from the hash.
func grad2D(hash int, x, y float64) float64 {
	switch hash & 7 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	case 3:
		return -x - y
	case 4:
		return x
	case 5:
		return -x
	case 6:
		return y
	default:
		return -y
	}
}
