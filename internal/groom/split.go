package groom

import "github.com/Faultbox/furgroom/pkg/math"

// SplitSettings configures the split gesture.
type SplitSettings struct {
	Strength float32 `yaml:"strength" toml:"strength"`
	Width    float32 `yaml:"width" toml:"width"`
	Falloff  float32 `yaml:"falloff" toml:"falloff"`
	// RecoverySpeed is the time in seconds for the parting to close.
	RecoverySpeed float32 `yaml:"recovery_speed" toml:"recovery_speed"`
	// Highlight tints the parting line, RGBA.
	Highlight [4]float32 `yaml:"highlight" toml:"highlight"`
}

// DefaultSplitSettings returns the stock split.
func DefaultSplitSettings() SplitSettings {
	return SplitSettings{
		Strength:      0.2,
		Width:         0.1,
		Falloff:       1.5,
		RecoverySpeed: 3.0,
		Highlight:     [4]float32{1, 1, 1, 0.3},
	}
}

// Split parts fur along the line dragged from the press point to the current
// pointer hit, then closes the parting after release.
type Split struct {
	settings SplitSettings
	phase    Phase
	start    math.Vec3
	end      math.Vec3
	strength float32
	recovery recovery
}

// NewSplit creates an idle split.
func NewSplit(settings SplitSettings) *Split {
	return &Split{settings: settings}
}

// Kind returns KindSplit.
func (s *Split) Kind() Kind { return KindSplit }

// Phase returns the current state.
func (s *Split) Phase() Phase { return s.phase }

// Settings returns the active settings.
func (s *Split) Settings() SplitSettings { return s.settings }

// SetSettings replaces the settings.
func (s *Split) SetSettings(settings SplitSettings) { s.settings = settings }

// Update advances the split by one frame.
func (s *Split) Update(dt float32, ptr Pointer, probe Probe) Params {
	if ptr.Pressed {
		if local, ok := probe.Hit(ptr.Position); ok {
			s.phase = PhaseActive
			s.start = local
			s.end = local
			s.strength = s.settings.Strength
			s.recovery.reset()
			return s.Params()
		}
	}

	switch s.phase {
	case PhaseActive:
		if ptr.Down {
			if local, ok := probe.Hit(ptr.Position); ok {
				s.end = local
				s.strength = s.settings.Strength
			}
			return s.Params()
		}
		s.phase = PhaseRecovering
		s.recovery.reset()
		s.recover(dt)

	case PhaseRecovering:
		s.recover(dt)
	}

	return s.Params()
}

func (s *Split) recover(dt float32) {
	strength, done := s.recovery.step(dt, s.settings.RecoverySpeed, s.settings.Strength)
	s.strength = strength
	if done {
		s.phase = PhaseIdle
	}
}

// Params returns the last published record.
func (s *Split) Params() Params {
	return Params{
		Kind:      KindSplit,
		Phase:     s.phase,
		Position:  s.start,
		Secondary: s.end,
		Strength:  s.strength,
		Radius:    s.settings.Width,
		Falloff:   s.settings.Falloff,
		Highlight: math.ColorFrom(s.settings.Highlight[:]).Clamped(),
	}
}

// Deactivate forces the split to zero strength.
func (s *Split) Deactivate() {
	s.phase = PhaseIdle
	s.strength = 0
	s.recovery.reset()
}
