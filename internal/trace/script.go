package trace

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/furgroom/internal/fur"
	"github.com/Faultbox/furgroom/internal/groom"
	"github.com/Faultbox/furgroom/pkg/math"
)

// OrthoHost is a synthetic host looking straight down -Y at one surface.
// Screen pixels map onto the surface's local XZ plane, Scale pixels per
// unit, with the screen origin at local (0, 0).
type OrthoHost struct {
	Target fur.SurfaceID
	Scale  float32
	// Extent is the half size of the hittable square in local units. Zero
	// means unbounded.
	Extent float32
}

// CastRay implements fur.Host.
func (h OrthoHost) CastRay(screen math.Vec2) (fur.Hit, bool) {
	p := math.Vec3{X: screen.X / h.Scale, Z: screen.Y / h.Scale}
	if h.Extent > 0 && (math32.Abs(p.X) > h.Extent || math32.Abs(p.Z) > h.Extent) {
		return fur.Hit{}, false
	}
	return fur.Hit{SurfaceID: h.Target, LocalPoint: p}, true
}

// CameraBasis implements fur.Host. Screen right is +X and screen down is +Z.
func (h OrthoHost) CameraBasis() (right, up, forward math.Vec3) {
	return math.Vec3{X: 1}, math.Vec3{Z: -1}, math.Vec3{Y: -1}
}

// Script is a scripted stroke: the pointer presses at From, drags to To over
// Drag frames, releases and is then left alone for Rest frames.
type Script struct {
	Gesture groom.Kind
	From    math.Vec2
	To      math.Vec2
	Drag    int
	Rest    int
	DT      float32
}

// DefaultScript drags across a 2x2 surface in one second and rests for two.
func DefaultScript(kind groom.Kind) Script {
	return Script{
		Gesture: kind,
		From:    math.Vec2{X: -80, Y: 0},
		To:      math.Vec2{X: 80, Y: 40},
		Drag:    60,
		Rest:    120,
		DT:      1.0 / 60,
	}
}

// Frames returns the total frame count.
func (sc Script) Frames() int {
	return sc.Drag + 1 + sc.Rest
}

// Pointer returns the pointer state for frame i.
func (sc Script) Pointer(i int) fur.Input {
	switch {
	case i == 0:
		return fur.Input{Down: true, Pressed: true, Position: sc.From}
	case i < sc.Drag:
		t := float32(i) / float32(sc.Drag)
		return fur.Input{Down: true, Position: sc.From.Lerp(sc.To, t)}
	case i == sc.Drag:
		return fur.Input{Released: true, Position: sc.To}
	default:
		return fur.Input{Position: sc.To}
	}
}

// Run plays the script against s with only the scripted gesture enabled and
// records every frame. s is activated if needed.
func Run(s *fur.Surface, host fur.Host, sc Script, rec *Recorder) error {
	if sc.Drag < 1 || sc.Rest < 0 || sc.DT <= 0 {
		return fmt.Errorf("invalid script: drag=%d rest=%d dt=%g", sc.Drag, sc.Rest, sc.DT)
	}
	if !s.Active() {
		if err := s.Activate(); err != nil {
			return err
		}
	}
	for _, k := range []groom.Kind{groom.KindBrush, groom.KindSweep, groom.KindSplit} {
		s.EnableGesture(k, k == sc.Gesture)
	}

	var elapsed float32
	for i := 0; i < sc.Frames(); i++ {
		params := s.Tick(sc.DT, sc.Pointer(i), host)
		elapsed += sc.DT
		if err := rec.WriteFrame(i, elapsed, uint32(s.ID), params); err != nil {
			return err
		}
	}
	return nil
}
