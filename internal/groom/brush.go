package groom

import "github.com/Faultbox/furgroom/pkg/math"

// BrushSettings configures the brush gesture.
type BrushSettings struct {
	Radius   float32 `yaml:"radius" toml:"radius"`
	Strength float32 `yaml:"strength" toml:"strength"`
	Falloff  float32 `yaml:"falloff" toml:"falloff"`
	// RecoverySpeed is the time in seconds for fur to spring back.
	RecoverySpeed float32 `yaml:"recovery_speed" toml:"recovery_speed"`
}

// DefaultBrushSettings returns the stock brush.
func DefaultBrushSettings() BrushSettings {
	return BrushSettings{
		Radius:        0.5,
		Strength:      0.1,
		Falloff:       1.0,
		RecoverySpeed: 2.0,
	}
}

// Brush pushes fur around the pointer while the button is held and lets it
// recover linearly after release.
type Brush struct {
	settings BrushSettings
	phase    Phase
	center   math.Vec3
	strength float32
	recovery recovery
}

// NewBrush creates an idle brush.
func NewBrush(settings BrushSettings) *Brush {
	return &Brush{settings: settings}
}

// Kind returns KindBrush.
func (b *Brush) Kind() Kind { return KindBrush }

// Phase returns the current state.
func (b *Brush) Phase() Phase { return b.phase }

// Settings returns the active settings.
func (b *Brush) Settings() BrushSettings { return b.settings }

// SetSettings replaces the settings. An active brush publishes the new values
// on its next hit.
func (b *Brush) SetSettings(s BrushSettings) { b.settings = s }

// Update advances the brush by one frame.
func (b *Brush) Update(dt float32, ptr Pointer, probe Probe) Params {
	switch {
	case ptr.Down || ptr.Pressed:
		// A tap pressed and released within one frame still brushes once.
		if local, ok := probe.Hit(ptr.Position); ok {
			b.phase = PhaseActive
			b.center = local
			b.strength = b.settings.Strength
			b.recovery.reset()
		}
		// A miss while held keeps whatever was last published, recovery
		// included.

	case b.phase != PhaseIdle:
		b.phase = PhaseRecovering
		b.recover(dt)
	}

	return b.Params()
}

func (b *Brush) recover(dt float32) {
	strength, done := b.recovery.step(dt, b.settings.RecoverySpeed, b.settings.Strength)
	b.strength = strength
	if done {
		b.phase = PhaseIdle
	}
}

// Params returns the last published record.
func (b *Brush) Params() Params {
	return Params{
		Kind:     KindBrush,
		Phase:    b.phase,
		Position: b.center,
		Strength: b.strength,
		Radius:   b.settings.Radius,
		Falloff:  b.settings.Falloff,
	}
}

// Deactivate forces the brush to zero strength.
func (b *Brush) Deactivate() {
	b.phase = PhaseIdle
	b.strength = 0
	b.recovery.reset()
}
