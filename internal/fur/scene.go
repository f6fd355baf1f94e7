package fur

import (
	"go.uber.org/multierr"
)

// Scene drives a set of surfaces against one host.
type Scene struct {
	host     Host
	surfaces []*Surface
}

// NewScene creates an empty scene.
func NewScene(host Host) *Scene {
	return &Scene{host: host}
}

// Add appends a surface. Surfaces are ticked and rendered in insertion order.
func (sc *Scene) Add(s *Surface) {
	sc.surfaces = append(sc.surfaces, s)
}

// Remove deactivates and drops the surface with id.
func (sc *Scene) Remove(id SurfaceID) bool {
	for i, s := range sc.surfaces {
		if s.ID == id {
			s.Deactivate()
			sc.surfaces = append(sc.surfaces[:i], sc.surfaces[i+1:]...)
			return true
		}
	}
	return false
}

// Surface returns the surface with id, or nil.
func (sc *Scene) Surface(id SurfaceID) *Surface {
	for _, s := range sc.surfaces {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Surfaces returns the surfaces in order.
func (sc *Scene) Surfaces() []*Surface {
	return sc.surfaces
}

// Frame runs one frame: every surface ticks, then every surface renders, so
// all gesture records are published before any draw consumes them.
func (sc *Scene) Frame(dt float32, in Input, r Renderer) error {
	for _, s := range sc.surfaces {
		s.Tick(dt, in, sc.host)
	}

	var errs error
	for _, s := range sc.surfaces {
		errs = multierr.Append(errs, s.Render(r))
	}
	return errs
}
