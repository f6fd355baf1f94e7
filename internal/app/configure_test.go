package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/furgroom/internal/config"
	"github.com/Faultbox/furgroom/internal/fur"
	"github.com/Faultbox/furgroom/internal/groom"
	"github.com/Faultbox/furgroom/internal/noise"
	"github.com/Faultbox/furgroom/pkg/math"
)

func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Pattern.Size = 16
	return cfg
}

func TestConfigureAppliesSettings(t *testing.T) {
	cfg := smallConfig()
	cfg.Fur.ShellCount = 7
	cfg.Fur.Length = 0.05
	cfg.Brush.Radius = 0.3
	cfg.Sweep.Momentum = 0.5
	cfg.Split.Width = 0.25

	s := demoSurfaces()[0]
	require.NoError(t, Configure(s, cfg))

	assert.Equal(t, 7, s.Material.ShellCount())
	assert.Equal(t, float32(0.05), s.Material.FurLength())
	assert.Equal(t, float32(0.3), s.Brush.Settings().Radius)
	assert.Equal(t, float32(0.5), s.Sweep.Settings().Momentum)
	assert.Equal(t, float32(0.25), s.Split.Settings().Width)
	assert.Equal(t, cfg.Pattern, s.PatternSettings)
	assert.Nil(t, s.Pattern(), "inactive surfaces generate on Activate")
}

func TestConfigureRegeneratesOnlyOnChange(t *testing.T) {
	cfg := smallConfig()
	s := demoSurfaces()[0]
	require.NoError(t, Configure(s, cfg))
	require.NoError(t, s.Activate())

	before := s.Pattern()
	require.NoError(t, Configure(s, cfg))
	assert.Same(t, before, s.Pattern(), "unchanged settings keep the pattern")

	cfg.Pattern.Seed++
	require.NoError(t, Configure(s, cfg))
	assert.NotSame(t, before, s.Pattern())
	assert.Equal(t, cfg.Pattern.Seed, s.Pattern().Settings().Seed)
}

func TestConfigureRejectsBadPattern(t *testing.T) {
	cfg := smallConfig()
	s := demoSurfaces()[0]
	require.NoError(t, Configure(s, cfg))
	require.NoError(t, s.Activate())
	before := s.Pattern()

	cfg.Pattern.Size = noise.MaxSize + 1
	err := Configure(s, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fur.ErrConfiguration))
	assert.Same(t, before, s.Pattern())
}

func TestConfigureVerticalPreset(t *testing.T) {
	cfg := smallConfig()
	cfg.Fur.VerticalPreset = 0.6

	s := demoSurfaces()[0]
	require.NoError(t, Configure(s, cfg))

	assert.Equal(t, float32(0.6), s.Material.VerticalBlend())
	assert.Equal(t, math.Up, s.Material.VerticalDirection())
	assert.True(t, s.Sweep.Settings().Vertical.Enabled)
	assert.Equal(t, groom.VerticalFurSweep().Radius, s.Sweep.Settings().Radius)
}

func TestDemoSurfaces(t *testing.T) {
	surfaces := demoSurfaces()
	require.Len(t, surfaces, 2)

	ids := map[fur.SurfaceID]bool{}
	for _, s := range surfaces {
		assert.True(t, s.Mesh.Validate())
		ids[s.ID] = true
	}
	assert.True(t, ids[SphereID])
	assert.True(t, ids[RugID])
}

func TestDemoRugPlacement(t *testing.T) {
	var rug *fur.Surface
	for _, s := range demoSurfaces() {
		if s.ID == RugID {
			rug = s
		}
	}
	require.NotNil(t, rug)

	origin := rug.Transform.TransformPoint(math.Vec3{})
	assert.InDelta(t, -1.05, origin.Y, 1e-5)
	assert.InDelta(t, 0, origin.X, 1e-5)
	assert.InDelta(t, 0, origin.Z, 1e-5)

	// Turned about the vertical axis only: the rug stays level.
	right := rug.Transform.TransformDirection(math.Vec3{X: 1})
	assert.InDelta(t, 0, right.Y, 1e-5)
	assert.InDelta(t, 1, right.Length(), 1e-5)
	assert.NotZero(t, right.Z)
	up := rug.Transform.TransformDirection(math.Vec3{Y: 1})
	assert.InDelta(t, 1, up.Y, 1e-5)
}
