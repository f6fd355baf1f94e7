package fur

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/furgroom/internal/engine/model"
	"github.com/Faultbox/furgroom/internal/groom"
	"github.com/Faultbox/furgroom/internal/logger"
	"github.com/Faultbox/furgroom/internal/noise"
	"github.com/Faultbox/furgroom/pkg/math"
)

func furLogger() *zap.Logger {
	return logger.Named("fur")
}

// Surface is one groomable furred mesh. It is created inactive; Activate
// generates its pattern and Tick/Render drive it once per frame.
type Surface struct {
	ID           SurfaceID
	Mesh         *model.Mesh
	BaseMaterial Handle
	FurMaterial  Handle
	// Transform maps local space to world space.
	Transform math.Mat4

	Material        *Material
	PatternSettings noise.Settings

	Brush *groom.Brush
	Sweep *groom.Sweep
	Split *groom.Split

	enabled  [3]bool
	pattern  *noise.Pattern
	pipeline *Pipeline
	active   bool
	frame    []groom.Params
	log      *zap.Logger
}

// NewSurface creates an inactive surface with default material, pattern
// settings and all three gestures enabled.
func NewSurface(id SurfaceID, mesh *model.Mesh, base, fur Handle) *Surface {
	return &Surface{
		ID:              id,
		Mesh:            mesh,
		BaseMaterial:    base,
		FurMaterial:     fur,
		Transform:       math.Identity(),
		Material:        NewMaterial(),
		PatternSettings: noise.DefaultSettings(),
		Brush:           groom.NewBrush(groom.DefaultBrushSettings()),
		Sweep:           groom.NewSweep(groom.DefaultSweepSettings()),
		Split:           groom.NewSplit(groom.DefaultSplitSettings()),
		enabled:         [3]bool{true, true, true},
		frame:           make([]groom.Params, 0, 3),
	}
}

// SetLogger overrides the component logger, mainly for tests.
func (s *Surface) SetLogger(l *zap.Logger) {
	s.log = l
	if s.pipeline != nil {
		s.pipeline.log = l
	}
}

func (s *Surface) logger() *zap.Logger {
	if s.log == nil {
		return furLogger()
	}
	return s.log
}

// Active reports whether the surface is ticking and rendering.
func (s *Surface) Active() bool { return s.active }

// Pattern returns the current density pattern, nil while inactive.
func (s *Surface) Pattern() *noise.Pattern { return s.pattern }

// Pipeline returns the surface's render pipeline, nil before Activate.
func (s *Surface) Pipeline() *Pipeline { return s.pipeline }

// Activate checks the surface's collaborators, generates the pattern and
// starts ticking. Errors wrap ErrConfiguration and leave the surface
// inactive.
func (s *Surface) Activate() error {
	if s.Mesh == nil || !s.Mesh.Validate() {
		return fmt.Errorf("%w: surface %d has no usable mesh", ErrConfiguration, s.ID)
	}
	if s.BaseMaterial == 0 || s.FurMaterial == 0 {
		return fmt.Errorf("%w: surface %d is missing a material", ErrConfiguration, s.ID)
	}
	if s.Material == nil {
		s.Material = NewMaterial()
	}

	p, err := noise.Generate(s.PatternSettings)
	if err != nil {
		return fmt.Errorf("%w: surface %d: %w", ErrConfiguration, s.ID, err)
	}
	s.pattern = p

	if s.pipeline == nil {
		s.pipeline = NewPipeline(s.log)
	}
	s.pipeline.Reset()
	s.active = true

	s.logger().Info("surface activated",
		zap.Uint32("surface", uint32(s.ID)),
		zap.String("mesh", s.Mesh.Name),
		zap.Int("pattern_size", p.Size()),
		zap.Int("shells", s.Material.ShellCount()))
	return nil
}

// Deactivate stops the surface, forces every gesture to zero strength and
// releases the pattern.
func (s *Surface) Deactivate() {
	for _, g := range s.gestures() {
		g.Deactivate()
	}
	s.frame = s.frame[:0]
	s.pattern = nil
	s.active = false

	s.logger().Info("surface deactivated", zap.Uint32("surface", uint32(s.ID)))
}

// RegeneratePattern replaces the pattern with one generated from settings.
// On error the previous pattern and settings are kept.
func (s *Surface) RegeneratePattern(settings noise.Settings) error {
	p, err := noise.Generate(settings)
	if err != nil {
		if errors.Is(err, noise.ErrInvalidSettings) {
			return fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		return err
	}

	s.PatternSettings = settings
	if s.active {
		s.pattern = p
	}
	s.logger().Debug("pattern regenerated",
		zap.Uint32("surface", uint32(s.ID)),
		zap.Int64("seed", settings.Seed),
		zap.Int("size", settings.Size))
	return nil
}

// EnableGesture turns a gesture on or off. Disabling forces it to zero.
func (s *Surface) EnableGesture(kind groom.Kind, on bool) {
	if int(kind) >= len(s.enabled) {
		return
	}
	s.enabled[kind] = on
	if !on {
		s.gesture(kind).Deactivate()
	}
}

// GestureEnabled reports whether kind is ticked.
func (s *Surface) GestureEnabled(kind groom.Kind) bool {
	return int(kind) < len(s.enabled) && s.enabled[kind]
}

// ApplyVerticalFur grows the fur along +Y by strength and switches the sweep
// to its vertical preset, keeping the sweep's decay tuning.
func (s *Surface) ApplyVerticalFur(strength float32) {
	s.Material.SetVerticalBlend(strength)
	s.Material.SetVerticalDirection(math.Up)

	cur := s.Sweep.Settings()
	preset := groom.VerticalFurSweep()
	cur.Radius = preset.Radius
	cur.MaxStrength = preset.MaxStrength
	cur.Vertical = preset.Vertical
	s.Sweep.SetSettings(cur)
}

// Tick advances every enabled gesture by dt and returns this frame's
// records. An inactive surface returns nil.
func (s *Surface) Tick(dt float32, in Input, host Host) []groom.Params {
	if !s.active {
		return nil
	}

	probe := surfaceProbe{surface: s, host: host}
	s.frame = s.frame[:0]
	for _, g := range s.gestures() {
		if !s.enabled[g.Kind()] {
			continue
		}
		s.frame = append(s.frame, g.Update(dt, in, probe))
	}
	return s.frame
}

// Frame returns the records published by the last Tick.
func (s *Surface) Frame() []groom.Params { return s.frame }

// Render draws the surface with the records of the last Tick.
func (s *Surface) Render(r Renderer) error {
	if !s.active {
		return nil
	}
	return s.pipeline.Render(s, r, s.frame)
}

func (s *Surface) gestures() [3]groom.Gesture {
	return [3]groom.Gesture{s.Brush, s.Sweep, s.Split}
}

func (s *Surface) gesture(kind groom.Kind) groom.Gesture {
	return s.gestures()[kind]
}

// surfaceProbe restricts host ray casts to one surface.
type surfaceProbe struct {
	surface *Surface
	host    Host
}

func (p surfaceProbe) Hit(screen math.Vec2) (math.Vec3, bool) {
	hit, ok := p.host.CastRay(screen)
	if !ok || hit.SurfaceID != p.surface.ID {
		return math.Vec3{}, false
	}
	return hit.LocalPoint, true
}

// LocalDirection maps a screen motion to the surface's local space. Screen
// Y grows downward, so it runs against the camera's up axis.
func (p surfaceProbe) LocalDirection(screen math.Vec2) math.Vec3 {
	right, up, _ := p.host.CameraBasis()
	world := right.Scale(screen.X).Sub(up.Scale(screen.Y))
	return p.surface.Transform.InverseTransformDirection(world)
}
