package noise

import "math/rand"

func newPerlinForTest(seed int64) *perlin {
	return newPerlin(rand.New(rand.NewSource(seed)))
}
