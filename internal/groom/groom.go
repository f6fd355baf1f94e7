// Package groom implements the pointer gestures that perturb fur: brush,
// sweep and split. Each gesture is a small state machine advanced once per
// frame that publishes a Params record for the shell renderer.
package groom

import (
	"github.com/Faultbox/furgroom/pkg/math"
)

// Kind identifies a gesture.
type Kind uint8

const (
	KindBrush Kind = iota
	KindSweep
	KindSplit
)

func (k Kind) String() string {
	switch k {
	case KindBrush:
		return "brush"
	case KindSweep:
		return "sweep"
	case KindSplit:
		return "split"
	default:
		return "unknown"
	}
}

// Phase is the state of a gesture.
type Phase uint8

const (
	// PhaseIdle publishes zero strength.
	PhaseIdle Phase = iota
	// PhaseActive follows the pointer (for split: drawing the parting line).
	PhaseActive
	// PhaseRecovering decays strength back to zero.
	PhaseRecovering
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseRecovering:
		return "recovering"
	default:
		return "unknown"
	}
}

// Params is the record a gesture publishes each frame. Positions are in the
// surface's local space.
type Params struct {
	Kind  Kind
	Phase Phase

	// Position is the brush center, the sweep position or the split start.
	Position math.Vec3
	// Secondary is the sweep direction or the split end.
	Secondary math.Vec3

	Strength float32
	// Radius is the brush or sweep radius, or the split width.
	Radius  float32
	Falloff float32

	// Highlight is only set by split.
	Highlight math.Color
}

// Active reports whether the record has any visible effect.
func (p Params) Active() bool {
	return p.Strength > 0
}

// Pointer is the single pointer's state for one frame.
type Pointer struct {
	Down     bool
	Pressed  bool
	Released bool
	Position math.Vec2
}

// Probe answers spatial queries against the groomed surface.
type Probe interface {
	// Hit casts a ray through the screen position and returns the hit point
	// in the surface's local space. ok is false when the ray misses this
	// surface.
	Hit(screen math.Vec2) (local math.Vec3, ok bool)

	// LocalDirection converts a normalized screen-space motion into a
	// local-space direction. The result need not be normalized.
	LocalDirection(screen math.Vec2) math.Vec3
}

// Gesture is implemented by Brush, Sweep and Split.
type Gesture interface {
	Kind() Kind
	Update(dt float32, ptr Pointer, probe Probe) Params
	Params() Params
	Phase() Phase
	Deactivate()
}
