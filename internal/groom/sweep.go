package groom

import "github.com/Faultbox/furgroom/pkg/math"

// VerticalBias flattens sweep directions for fur that grows along a fixed
// vertical axis, so strokes part the fur sideways instead of into the skin.
type VerticalBias struct {
	Enabled bool `yaml:"enabled" toml:"enabled"`
	// HorizontalBias blends the direction toward its XZ projection.
	HorizontalBias float32 `yaml:"horizontal_bias" toml:"horizontal_bias"`
	// DownwardBias additionally blends toward -Y by DownwardBiasStrength.
	DownwardBias         bool    `yaml:"downward_bias" toml:"downward_bias"`
	DownwardBiasStrength float32 `yaml:"downward_bias_strength" toml:"downward_bias_strength"`
}

// SweepSettings configures the sweep gesture.
type SweepSettings struct {
	Radius      float32 `yaml:"radius" toml:"radius"`
	MaxStrength float32 `yaml:"max_strength" toml:"max_strength"`
	Falloff     float32 `yaml:"falloff" toml:"falloff"`
	// Momentum is the per-frame decay factor once motion stops, in [0, 1].
	Momentum float32 `yaml:"momentum" toml:"momentum"`
	// Sensitivity converts pixels of motion into strength.
	Sensitivity float32 `yaml:"sensitivity" toml:"sensitivity"`
	// MotionThreshold is the minimum pointer motion in pixels per frame.
	MotionThreshold float32 `yaml:"motion_threshold" toml:"motion_threshold"`
	// SmoothingRate scales dt when easing toward the target strength.
	SmoothingRate float32 `yaml:"smoothing_rate" toml:"smoothing_rate"`
	// SnapEpsilon is the strength below which decay snaps to zero.
	SnapEpsilon float32 `yaml:"snap_epsilon" toml:"snap_epsilon"`

	Vertical VerticalBias `yaml:"vertical" toml:"vertical"`
}

// DefaultSweepSettings returns the stock sweep with the vertical bias off.
func DefaultSweepSettings() SweepSettings {
	return SweepSettings{
		Radius:          0.5,
		MaxStrength:     0.2,
		Falloff:         1.5,
		Momentum:        0.7,
		Sensitivity:     0.001,
		MotionThreshold: 1.0,
		SmoothingRate:   10,
		SnapEpsilon:     1e-3,
		Vertical: VerticalBias{
			HorizontalBias:       0.8,
			DownwardBiasStrength: 0.2,
		},
	}
}

// VerticalFurSweep returns the preset for fur that points straight up: wider
// radius, stronger strokes and both direction biases enabled.
func VerticalFurSweep() SweepSettings {
	s := DefaultSweepSettings()
	s.Radius = 0.7
	s.MaxStrength = 0.3
	s.Vertical = VerticalBias{
		Enabled:              true,
		HorizontalBias:       0.8,
		DownwardBias:         true,
		DownwardBiasStrength: 0.2,
	}
	return s
}

// Sweep strokes fur in the direction of pointer motion. It has no press or
// release: strength eases toward a motion-derived target while the pointer
// moves over the surface and decays geometrically otherwise.
type Sweep struct {
	settings SweepSettings
	phase    Phase

	primed    bool
	last      math.Vec2
	position  math.Vec3
	direction math.Vec3
	strength  float32
	over      bool
}

// NewSweep creates an idle sweep.
func NewSweep(settings SweepSettings) *Sweep {
	return &Sweep{settings: settings}
}

// Kind returns KindSweep.
func (s *Sweep) Kind() Kind { return KindSweep }

// Phase returns the current state.
func (s *Sweep) Phase() Phase { return s.phase }

// Settings returns the active settings.
func (s *Sweep) Settings() SweepSettings { return s.settings }

// SetSettings replaces the settings and clamps the current strength to the
// new maximum.
func (s *Sweep) SetSettings(settings SweepSettings) {
	s.settings = settings
	s.strength = math.Clamp(s.strength, 0, s.maxStrength())
}

// OverSurface reports whether the last qualifying motion hit the surface.
func (s *Sweep) OverSurface() bool { return s.over }

// Update advances the sweep by one frame.
func (s *Sweep) Update(dt float32, ptr Pointer, probe Probe) Params {
	if !s.primed {
		s.primed = true
		s.last = ptr.Position
		return s.Params()
	}

	delta := ptr.Position.Sub(s.last)
	s.last = ptr.Position

	magnitude := delta.Length()
	moved := magnitude > s.settings.MotionThreshold

	if moved {
		target := math.Clamp(magnitude*s.settings.Sensitivity, 0, s.maxStrength())
		s.strength = math.Lerp(s.strength, target, math.Clamp01(dt*s.settings.SmoothingRate))
		s.strength = math.Clamp(s.strength, 0, s.maxStrength())

		if local, ok := probe.Hit(ptr.Position); ok {
			s.over = true
			s.position = local
			s.direction = s.localDirection(probe, delta.Normalize())
		} else {
			s.over = false
		}
	}

	if !moved || !s.over {
		s.decay()
		return s.Params()
	}

	s.phase = PhaseActive
	return s.Params()
}

func (s *Sweep) localDirection(probe Probe, screen math.Vec2) math.Vec3 {
	dir := probe.LocalDirection(screen).Normalize()

	if v := s.settings.Vertical; v.Enabled {
		dir = dir.Lerp(dir.Horizontal().Normalize(), v.HorizontalBias)
		if v.DownwardBias {
			dir = dir.Lerp(math.Down, v.DownwardBiasStrength)
		}
	}

	return dir.Normalize()
}

func (s *Sweep) decay() {
	s.strength *= math.Clamp01(s.settings.Momentum)
	if s.strength < s.settings.SnapEpsilon {
		s.strength = 0
	}

	if s.strength == 0 {
		s.phase = PhaseIdle
	} else {
		s.phase = PhaseRecovering
	}
}

func (s *Sweep) maxStrength() float32 {
	if s.settings.MaxStrength < 0 {
		return 0
	}
	return s.settings.MaxStrength
}

// Params returns the last published record.
func (s *Sweep) Params() Params {
	return Params{
		Kind:      KindSweep,
		Phase:     s.phase,
		Position:  s.position,
		Secondary: s.direction,
		Strength:  s.strength,
		Radius:    s.settings.Radius,
		Falloff:   s.settings.Falloff,
	}
}

// Deactivate forces the sweep to zero strength and forgets the last pointer
// position, so reactivation does not see a jump.
func (s *Sweep) Deactivate() {
	s.phase = PhaseIdle
	s.strength = 0
	s.over = false
	s.primed = false
}
