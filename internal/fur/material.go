package fur

import (
	"github.com/Faultbox/furgroom/pkg/math"
)

// Parameter ranges. Setters clamp into these.
const (
	MinShellCount = 1
	MaxShellCount = 32

	MaxFurLength   = 0.2
	MaxFurDensity  = 2.0
	MaxFurThinness = 10.0
)

// Material holds the shell shading parameters of one surface. Every ranged
// setter clamps, so a Material is always valid.
type Material struct {
	shellCount    int
	length        float32
	density       float32
	thinness      float32
	shading       float32
	color         math.Color
	windDirection math.Vec4
	windStrength  float32
	gravity       float32
	verticalBlend float32
	verticalDir   math.Vec3
}

// NewMaterial returns a material with the stock fur look.
func NewMaterial() *Material {
	return &Material{
		shellCount:    16,
		length:        0.05,
		density:       1.0,
		thinness:      1.0,
		shading:       0.25,
		color:         math.White,
		windDirection: math.Vec4{1, 0, 0, 0},
		windStrength:  0.5,
		gravity:       0.25,
		verticalBlend: 0,
		verticalDir:   math.Up,
	}
}

func (m *Material) ShellCount() int              { return m.shellCount }
func (m *Material) FurLength() float32           { return m.length }
func (m *Material) FurDensity() float32          { return m.density }
func (m *Material) FurThinness() float32         { return m.thinness }
func (m *Material) FurShading() float32          { return m.shading }
func (m *Material) FurColor() math.Color         { return m.color }
func (m *Material) WindDirection() math.Vec4     { return m.windDirection }
func (m *Material) WindStrength() float32        { return m.windStrength }
func (m *Material) GravityStrength() float32     { return m.gravity }
func (m *Material) VerticalBlend() float32       { return m.verticalBlend }
func (m *Material) VerticalDirection() math.Vec3 { return m.verticalDir }

func (m *Material) SetShellCount(n int) {
	m.shellCount = math.ClampInt(n, MinShellCount, MaxShellCount)
}

func (m *Material) SetFurLength(v float32)   { m.length = math.Clamp(v, 0, MaxFurLength) }
func (m *Material) SetFurDensity(v float32)  { m.density = math.Clamp(v, 0, MaxFurDensity) }
func (m *Material) SetFurThinness(v float32) { m.thinness = math.Clamp(v, 0, MaxFurThinness) }
func (m *Material) SetFurShading(v float32)  { m.shading = math.Clamp01(v) }
func (m *Material) SetFurColor(c math.Color) { m.color = c.Clamped() }

// SetWindDirection stores the direction as given; it is normalized when
// snapshotted.
func (m *Material) SetWindDirection(v math.Vec4) { m.windDirection = v }

func (m *Material) SetWindStrength(v float32)    { m.windStrength = math.Clamp01(v) }
func (m *Material) SetGravityStrength(v float32) { m.gravity = math.Clamp01(v) }

// SetVerticalBlend mixes fur growth between the surface normal (0) and the
// vertical direction (1).
func (m *Material) SetVerticalBlend(v float32) { m.verticalBlend = math.Clamp01(v) }

func (m *Material) SetVerticalDirection(v math.Vec3) { m.verticalDir = v }

// Snapshot is an immutable copy of a Material for one frame, with directions
// normalized.
type Snapshot struct {
	ShellCount        int
	Length            float32
	Density           float32
	Thinness          float32
	Shading           float32
	Color             math.Color
	WindDirection     math.Vec4
	WindStrength      float32
	Gravity           float32
	VerticalBlend     float32
	VerticalDirection math.Vec3
}

// Snapshot captures the current values.
func (m *Material) Snapshot() Snapshot {
	vertical := m.verticalDir.Normalize()
	if vertical == (math.Vec3{}) {
		vertical = math.Up
	}

	return Snapshot{
		ShellCount:        m.shellCount,
		Length:            m.length,
		Density:           m.density,
		Thinness:          m.thinness,
		Shading:           m.shading,
		Color:             m.color,
		WindDirection:     m.windDirection.Normalize(),
		WindStrength:      m.windStrength,
		Gravity:           m.gravity,
		VerticalBlend:     m.verticalBlend,
		VerticalDirection: vertical,
	}
}

// MaterialConfig is the file representation of a Material.
type MaterialConfig struct {
	ShellCount        int        `yaml:"shell_count" toml:"shell_count"`
	Length            float32    `yaml:"length" toml:"length"`
	Density           float32    `yaml:"density" toml:"density"`
	Thinness          float32    `yaml:"thinness" toml:"thinness"`
	Shading           float32    `yaml:"shading" toml:"shading"`
	Color             [4]float32 `yaml:"color" toml:"color"`
	WindDirection     [4]float32 `yaml:"wind_direction" toml:"wind_direction"`
	WindStrength      float32    `yaml:"wind_strength" toml:"wind_strength"`
	Gravity           float32    `yaml:"gravity" toml:"gravity"`
	VerticalBlend     float32    `yaml:"vertical_blend" toml:"vertical_blend"`
	VerticalDirection [3]float32 `yaml:"vertical_direction" toml:"vertical_direction"`
}

// DefaultMaterialConfig mirrors NewMaterial.
func DefaultMaterialConfig() MaterialConfig {
	m := NewMaterial()
	return MaterialConfig{
		ShellCount:        m.shellCount,
		Length:            m.length,
		Density:           m.density,
		Thinness:          m.thinness,
		Shading:           m.shading,
		Color:             m.color.Array(),
		WindDirection:     m.windDirection,
		WindStrength:      m.windStrength,
		Gravity:           m.gravity,
		VerticalBlend:     m.verticalBlend,
		VerticalDirection: m.verticalDir.Array(),
	}
}

// ApplyConfig assigns every field through its clamping setter.
func (m *Material) ApplyConfig(c MaterialConfig) {
	m.SetShellCount(c.ShellCount)
	m.SetFurLength(c.Length)
	m.SetFurDensity(c.Density)
	m.SetFurThinness(c.Thinness)
	m.SetFurShading(c.Shading)
	m.SetFurColor(math.ColorFrom(c.Color[:]))
	m.SetWindDirection(math.Vec4(c.WindDirection))
	m.SetWindStrength(c.WindStrength)
	m.SetGravityStrength(c.Gravity)
	m.SetVerticalBlend(c.VerticalBlend)
	m.SetVerticalDirection(math.Vec3From(c.VerticalDirection))
}
