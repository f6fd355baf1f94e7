// Package lighting provides the directional light the viewer shades with.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/furgroom/pkg/math"
)

// Sun is a directional light placed by angles in degrees. Azimuth rotates
// around +Y starting at +Z; elevation is measured up from the horizon.
type Sun struct {
	Azimuth   float32 `yaml:"azimuth" toml:"azimuth"`
	Elevation float32 `yaml:"elevation" toml:"elevation"`
}

// DefaultSun lights the scene from above, slightly left and in front.
func DefaultSun() Sun {
	return Sun{Azimuth: 35, Elevation: 60}
}

// ToSun returns the unit vector pointing from the scene towards the sun.
func (s Sun) ToSun() math.Vec3 {
	az := s.Azimuth * math32.Pi / 180
	el := s.Elevation * math32.Pi / 180

	sinAz, cosAz := math32.Sincos(az)
	sinEl, cosEl := math32.Sincos(el)
	return math.Vec3{X: cosEl * sinAz, Y: sinEl, Z: cosEl * cosAz}
}

// Direction returns the direction the light travels, as the shaders expect.
func (s Sun) Direction() math.Vec3 {
	return s.ToSun().Scale(-1)
}
