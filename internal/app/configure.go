package app

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/furgroom/internal/config"
	"github.com/Faultbox/furgroom/internal/engine/model"
	"github.com/Faultbox/furgroom/internal/engine/renderer"
	"github.com/Faultbox/furgroom/internal/fur"
	"github.com/Faultbox/furgroom/pkg/math"
)

// Surface IDs of the demo scene.
const (
	SphereID fur.SurfaceID = 1
	RugID    fur.SurfaceID = 2
)

// Configure applies cfg to a surface. The pattern is regenerated only when
// its settings changed and the surface is active; an inactive surface picks
// the settings up on Activate.
func Configure(s *fur.Surface, cfg *config.Config) error {
	s.Material.ApplyConfig(cfg.Fur.MaterialConfig)
	s.Brush.SetSettings(cfg.Brush)
	s.Sweep.SetSettings(cfg.Sweep)
	s.Split.SetSettings(cfg.Split)
	if cfg.Fur.VerticalPreset > 0 {
		s.ApplyVerticalFur(cfg.Fur.VerticalPreset)
	}

	if cfg.Pattern == s.PatternSettings {
		return nil
	}
	if !s.Active() {
		s.PatternSettings = cfg.Pattern
		return nil
	}
	return s.RegeneratePattern(cfg.Pattern)
}

// Rug placement under the sphere.
var (
	rugPosition = math.Vec3{Y: -1.05}
	rugRotation = math.Vec3{Y: math32.Pi / 8}
)

// demoSurfaces builds the viewer's scene: a furred sphere resting on a
// furred rug turned slightly against the camera.
func demoSurfaces() []*fur.Surface {
	sphere := fur.NewSurface(SphereID, model.Sphere(1, 48, 64), renderer.BaseMaterial, renderer.FurMaterial)

	rug := fur.NewSurface(RugID, model.Plane(6, 32), renderer.BaseMaterial, renderer.FurMaterial)
	rug.Transform = math.TRS(rugPosition, rugRotation, math.Vec3{X: 1, Y: 1, Z: 1})

	return []*fur.Surface{sphere, rug}
}
