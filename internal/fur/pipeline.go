package fur

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/furgroom/internal/groom"
	"github.com/Faultbox/furgroom/internal/noise"
	"github.com/Faultbox/furgroom/pkg/math"
)

// ShellUniforms is everything one shell draw needs. Each draw carries its
// own copy; nothing is shared through global shader state.
type ShellUniforms struct {
	// Layer is Index/ShellCount, in (0, 1].
	Layer float32
	// Index counts shells from 1.
	Index int

	Material Snapshot
	Pattern  *noise.Pattern

	Brush groom.Params
	Sweep groom.Params
	Split groom.Params
}

// Upload writes the named shader parameters. Gestures that are not active
// are written with zero strength.
func (u *ShellUniforms) Upload(sink ParamSink) {
	m := u.Material

	sink.SetFloat("_Layer", u.Layer)
	sink.SetFloat("_FurLength", m.Length)
	sink.SetFloat("_FurDensity", m.Density)
	sink.SetFloat("_FurThinness", m.Thinness)
	sink.SetFloat("_FurShading", m.Shading)
	sink.SetColor("_FurColor", m.Color)
	sink.SetVector("_WindDirection", m.WindDirection)
	sink.SetFloat("_WindStrength", m.WindStrength)
	sink.SetFloat("_FurGravityStrength", m.Gravity)
	sink.SetFloat("_UseVerticalDirection", m.VerticalBlend)
	sink.SetVector("_VerticalDirection", math.Vec4From(m.VerticalDirection, 0))
	sink.SetTexture("_FurTex", u.Pattern)

	sink.SetVector("_BrushPos", math.Vec4From(u.Brush.Position, 1))
	sink.SetFloat("_BrushRadius", u.Brush.Radius)
	sink.SetFloat("_BrushStrength", strength(u.Brush))
	sink.SetFloat("_BrushFalloff", u.Brush.Falloff)

	sink.SetVector("_SweepPos", math.Vec4From(u.Sweep.Position, 1))
	sink.SetVector("_SweepDir", math.Vec4From(u.Sweep.Secondary, 0))
	sink.SetFloat("_SweepRadius", u.Sweep.Radius)
	sink.SetFloat("_SweepStrength", strength(u.Sweep))
	sink.SetFloat("_SweepFalloff", u.Sweep.Falloff)

	sink.SetVector("_SplitStart", math.Vec4From(u.Split.Position, 1))
	sink.SetVector("_SplitEnd", math.Vec4From(u.Split.Secondary, 1))
	sink.SetFloat("_SplitStrength", strength(u.Split))
	sink.SetFloat("_SplitWidth", u.Split.Radius)
	sink.SetFloat("_SplitFalloff", u.Split.Falloff)
	sink.SetColor("_SplitHighlightColor", u.Split.Highlight)
}

func strength(p groom.Params) float32 {
	if !p.Active() {
		return 0
	}
	return p.Strength
}

// Stats counts the draws of the last Render call.
type Stats struct {
	Issued  int
	Skipped int
}

// Pipeline renders one surface: a base draw followed by ShellCount shell
// draws in increasing layer order.
type Pipeline struct {
	log      *zap.Logger
	disabled bool
	stats    Stats
}

// NewPipeline creates a pipeline that logs through log, or through the
// global "fur" logger when log is nil.
func NewPipeline(log *zap.Logger) *Pipeline {
	return &Pipeline{log: log}
}

func (p *Pipeline) logger() *zap.Logger {
	if p.log == nil {
		return furLogger()
	}
	return p.log
}

// Disabled reports whether a configuration error stopped rendering.
func (p *Pipeline) Disabled() bool { return p.disabled }

// Reset re-enables a pipeline disabled by a configuration error.
func (p *Pipeline) Reset() {
	p.disabled = false
	p.stats = Stats{}
}

// Stats returns the counters of the last Render.
func (p *Pipeline) Stats() Stats { return p.stats }

// Render issues the draws for s. active holds this frame's gesture records;
// only records with positive strength reach the shells.
//
// A surface missing its mesh, materials or pattern fails with
// ErrConfiguration, which is logged once and disables the pipeline until
// Reset. Draw errors wrapping ErrResource skip that draw only and are
// returned combined; other draw errors are returned the same way.
func (p *Pipeline) Render(s *Surface, r Renderer, active []groom.Params) error {
	p.stats = Stats{}
	if p.disabled {
		return nil
	}

	if err := checkRenderable(s); err != nil {
		p.disabled = true
		p.logger().Error("fur rendering disabled",
			zap.Uint32("surface", uint32(s.ID)), zap.Error(err))
		return err
	}

	snap := s.Material.Snapshot()

	var errs error
	draw := func(call DrawCall) {
		if err := r.DrawMesh(call); err != nil {
			p.stats.Skipped++
			if errors.Is(err, ErrResource) {
				p.logger().Warn("draw skipped",
					zap.Uint32("surface", uint32(s.ID)),
					zap.Int("layer", int(call.RenderLayer)),
					zap.Error(err))
			}
			errs = multierr.Append(errs, err)
			return
		}
		p.stats.Issued++
	}

	draw(DrawCall{
		Surface:     s.ID,
		Mesh:        s.Mesh,
		Transform:   s.Transform,
		Material:    s.BaseMaterial,
		RenderLayer: LayerBase,
	})

	var brush, sweep, split groom.Params
	for _, g := range active {
		if !g.Active() {
			continue
		}
		switch g.Kind {
		case groom.KindBrush:
			brush = g
		case groom.KindSweep:
			sweep = g
		case groom.KindSplit:
			split = g
		}
	}

	n := snap.ShellCount
	for i := 1; i <= n; i++ {
		draw(DrawCall{
			Surface:     s.ID,
			Mesh:        s.Mesh,
			Transform:   s.Transform,
			Material:    s.FurMaterial,
			RenderLayer: LayerShell,
			Shell: &ShellUniforms{
				Layer:    float32(i) / float32(n),
				Index:    i,
				Material: snap,
				Pattern:  s.pattern,
				Brush:    brush,
				Sweep:    sweep,
				Split:    split,
			},
		})
	}

	return errs
}

func checkRenderable(s *Surface) error {
	var errs error
	if s.Mesh == nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: no mesh", ErrConfiguration))
	}
	if s.BaseMaterial == 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: no base material", ErrConfiguration))
	}
	if s.FurMaterial == 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: no fur material", ErrConfiguration))
	}
	if s.pattern == nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: no fur pattern", ErrConfiguration))
	}
	if s.Material == nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: no material parameters", ErrConfiguration))
	}
	return errs
}
