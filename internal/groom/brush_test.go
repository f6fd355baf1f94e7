package groom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/furgroom/pkg/math"
)

func TestBrushActivePublishesSettings(t *testing.T) {
	b := NewBrush(DefaultBrushSettings())
	probe := &planeProbe{}

	p := b.Update(0.016, press(50, 100), probe)

	assert.Equal(t, PhaseActive, p.Phase)
	assert.Equal(t, KindBrush, p.Kind)
	assert.Equal(t, math.Vec3{X: 0.5, Z: 1}, p.Position)
	assert.Equal(t, float32(0.1), p.Strength)
	assert.Equal(t, float32(0.5), p.Radius)
	assert.Equal(t, float32(1.0), p.Falloff)

	p = b.Update(0.016, down(100, 100), probe)
	assert.Equal(t, math.Vec3{X: 1, Z: 1}, p.Position)
	assert.Equal(t, float32(0.1), p.Strength)
}

func TestBrushHoldsOnMiss(t *testing.T) {
	b := NewBrush(DefaultBrushSettings())
	probe := &planeProbe{miss: map[math.Vec2]bool{{X: 999, Y: 999}: true}}

	before := b.Update(0.016, press(10, 10), probe)
	after := b.Update(0.5, down(999, 999), probe)

	assert.Equal(t, before, after)
}

func TestBrushIgnoresMissWhileIdle(t *testing.T) {
	b := NewBrush(DefaultBrushSettings())
	probe := &planeProbe{miss: map[math.Vec2]bool{{X: 1, Y: 1}: true}}

	p := b.Update(0.016, press(1, 1), probe)
	assert.Equal(t, PhaseIdle, p.Phase)
	assert.Zero(t, p.Strength)
}

func TestBrushRecovery(t *testing.T) {
	s := DefaultBrushSettings()
	s.Strength = 0.1
	s.RecoverySpeed = 2.0
	b := NewBrush(s)
	probe := &planeProbe{}

	b.Update(0.016, press(10, 20), probe)

	// Released at t=0; four quarter-second frames reach t=1.0s.
	var p Params
	for i := 0; i < 4; i++ {
		p = b.Update(0.25, up(10, 20), probe)
		assert.Equal(t, PhaseRecovering, p.Phase)
	}
	assert.InDelta(t, 0.05, p.Strength, 1e-6)
	assert.Equal(t, math.Vec3{X: 0.1, Z: 0.2}, p.Position, "recovers at the last center")

	for i := 0; i < 4; i++ {
		p = b.Update(0.25, up(10, 20), probe)
	}
	assert.Equal(t, float32(0), p.Strength)
	assert.Equal(t, PhaseIdle, p.Phase)

	// Stays at zero until the next press.
	for i := 0; i < 3; i++ {
		p = b.Update(0.25, up(10, 20), probe)
		assert.Equal(t, float32(0), p.Strength)
		assert.Equal(t, PhaseIdle, b.Phase())
	}
}

func TestBrushRecoveryCurve(t *testing.T) {
	const strength, duration = float32(0.3), float32(1.5)
	b := NewBrush(BrushSettings{Radius: 1, Strength: strength, Falloff: 2, RecoverySpeed: duration})
	probe := &planeProbe{}

	b.Update(0.016, press(0, 0), probe)

	elapsed := float32(0)
	for elapsed < 2*duration {
		p := b.Update(0.125, up(0, 0), probe)
		elapsed += 0.125

		want := strength * (1 - math.Clamp01(elapsed/duration))
		require.InDelta(t, want, p.Strength, 1e-6, "t=%v", elapsed)
		if elapsed >= duration {
			require.Equal(t, float32(0), p.Strength)
		}
	}
}

func TestBrushRepressDuringRecovery(t *testing.T) {
	b := NewBrush(DefaultBrushSettings())
	probe := &planeProbe{}

	b.Update(0.016, press(0, 0), probe)
	b.Update(0.5, up(0, 0), probe)
	require.Equal(t, PhaseRecovering, b.Phase())

	p := b.Update(0.016, press(200, 0), probe)
	assert.Equal(t, PhaseActive, p.Phase)
	assert.Equal(t, float32(0.1), p.Strength)
	assert.Equal(t, math.Vec3{X: 2}, p.Position)

	// Recovery restarts from zero elapsed time.
	p = b.Update(1.0, up(200, 0), probe)
	assert.InDelta(t, 0.05, p.Strength, 1e-6)
}

func TestBrushRecoveryFreezesWhileHeldOffSurface(t *testing.T) {
	b := NewBrush(DefaultBrushSettings())
	probe := &planeProbe{miss: map[math.Vec2]bool{{X: 5, Y: 5}: true}}

	b.Update(0.016, press(0, 0), probe)
	p := b.Update(0.5, up(0, 0), probe)
	require.Equal(t, PhaseRecovering, p.Phase)
	assert.InDelta(t, 0.075, p.Strength, 1e-6)

	p = b.Update(0.5, down(5, 5), probe)
	assert.Equal(t, PhaseRecovering, p.Phase)
	assert.InDelta(t, 0.075, p.Strength, 1e-6)
	assert.Equal(t, math.Vec3{}, p.Position)

	// Recovery resumes where it stopped once the button is up.
	p = b.Update(0.5, up(5, 5), probe)
	assert.InDelta(t, 0.05, p.Strength, 1e-6)
}

func TestBrushTapWithinOneFrame(t *testing.T) {
	b := NewBrush(DefaultBrushSettings())
	tap := Pointer{Pressed: true, Released: true, Position: math.Vec2{X: 300}}

	p := b.Update(0.016, tap, &planeProbe{})
	assert.Equal(t, PhaseActive, p.Phase)
	assert.Equal(t, float32(0.1), p.Strength)
	assert.Equal(t, math.Vec3{X: 3}, p.Position)

	p = b.Update(1.0, up(300, 0), &planeProbe{})
	assert.Equal(t, PhaseRecovering, p.Phase)
	assert.InDelta(t, 0.05, p.Strength, 1e-6)
}

func TestBrushDeactivate(t *testing.T) {
	b := NewBrush(DefaultBrushSettings())
	b.Update(0.016, press(0, 0), &planeProbe{})

	b.Deactivate()
	assert.Equal(t, PhaseIdle, b.Phase())
	assert.Zero(t, b.Params().Strength)
}

func TestBrushInstantRecovery(t *testing.T) {
	b := NewBrush(BrushSettings{Strength: 0.2, RecoverySpeed: 0})
	b.Update(0.016, press(0, 0), &planeProbe{})

	p := b.Update(0.016, up(0, 0), &planeProbe{})
	assert.Zero(t, p.Strength)
	assert.Equal(t, PhaseIdle, p.Phase)
}
