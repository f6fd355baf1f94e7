// Package noise generates the tileable fractal density pattern that masks
// fur strands per shell.
package noise

import (
	"errors"
	"fmt"
	"image"
	"math"
	"math/rand"
)

// MaxSize bounds the texture edge length accepted by Generate.
const MaxSize = 8192

// ErrInvalidSettings is returned for settings that cannot produce a pattern.
var ErrInvalidSettings = errors.New("invalid noise settings")

// Settings controls pattern generation. Identical settings always produce
// identical patterns.
type Settings struct {
	Size        int     `yaml:"texture_size" toml:"texture_size"`
	Octaves     int     `yaml:"octaves" toml:"octaves"`
	Persistence float64 `yaml:"persistence" toml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity" toml:"lacunarity"`
	Scale       float64 `yaml:"noise_scale" toml:"noise_scale"`
	Seed        int64   `yaml:"seed" toml:"seed"`
}

// DefaultSettings returns a 512x512 four-octave pattern.
func DefaultSettings() Settings {
	return Settings{
		Size:        512,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2,
		Scale:       10,
		Seed:        42,
	}
}

// Validate reports whether the settings can be generated.
func (s Settings) Validate() error {
	if s.Size <= 0 {
		return fmt.Errorf("%w: texture size must be positive, got %d", ErrInvalidSettings, s.Size)
	}
	if s.Size > MaxSize {
		return fmt.Errorf("%w: texture size %d exceeds %d", ErrInvalidSettings, s.Size, MaxSize)
	}
	if s.Octaves < 0 {
		return fmt.Errorf("%w: octaves must not be negative, got %d", ErrInvalidSettings, s.Octaves)
	}
	return nil
}

// Pattern is a square grid of densities in [0, 1], row-major (y*size + x).
// A Pattern is never modified after Generate returns it.
type Pattern struct {
	size     int
	settings Settings
	values   []float64
}

// Generate builds a fractal Perlin pattern.
//
// The seeded stream first yields one offset per octave in [-100000, 100000)
// on each axis, then shuffles the permutation table. Every octave adds
// (noise*2-1)*amplitude and the sum is clamped to [0, 1].
func Generate(s Settings) (*Pattern, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(s.Seed))

	type offset struct{ x, y float64 }
	offsets := make([]offset, s.Octaves)
	for i := range offsets {
		offsets[i].x = float64(rng.Intn(200000) - 100000)
		offsets[i].y = float64(rng.Intn(200000) - 100000)
	}

	field := newPerlin(rng)
	size := float64(s.Size)

	p := &Pattern{
		size:     s.Size,
		settings: s,
		values:   make([]float64, s.Size*s.Size),
	}

	for y := 0; y < s.Size; y++ {
		for x := 0; x < s.Size; x++ {
			amplitude := 1.0
			frequency := 1.0
			height := 0.0

			for i := 0; i < s.Octaves; i++ {
				sampleX := float64(x)/size*s.Scale*frequency + offsets[i].x
				sampleY := float64(y)/size*s.Scale*frequency + offsets[i].y

				height += (field.Sample(sampleX, sampleY)*2 - 1) * amplitude

				amplitude *= s.Persistence
				frequency *= s.Lacunarity
			}

			p.values[y*s.Size+x] = clamp01(height)
		}
	}

	return p, nil
}

// Size returns the edge length in texels.
func (p *Pattern) Size() int {
	return p.size
}

// Settings returns the settings the pattern was generated from.
func (p *Pattern) Settings() Settings {
	return p.settings
}

// At returns the density at (x, y). Coordinates wrap, so the pattern tiles.
func (p *Pattern) At(x, y int) float64 {
	x = wrap(x, p.size)
	y = wrap(y, p.size)
	return p.values[y*p.size+x]
}

// Values returns a copy of the densities in row-major order.
func (p *Pattern) Values() []float64 {
	out := make([]float64, len(p.values))
	copy(out, p.values)
	return out
}

// RGBA returns size*size greyscale texels (R=G=B=density, A=255) as bytes,
// ready for a GL_RGBA/GL_UNSIGNED_BYTE upload.
func (p *Pattern) RGBA() []byte {
	out := make([]byte, len(p.values)*4)
	for i, v := range p.values {
		g := toByte(v)
		out[i*4] = g
		out[i*4+1] = g
		out[i*4+2] = g
		out[i*4+3] = 255
	}
	return out
}

// Image returns the pattern as an RGBA image for PNG export.
func (p *Pattern) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.size, p.size))
	copy(img.Pix, p.RGBA())
	return img
}

func toByte(v float64) uint8 {
	return uint8(math.Floor(clamp01(v)*255 + 0.5))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
