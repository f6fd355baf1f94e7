// Package config handles viewer configuration loading and management.
package config

import (
	"github.com/Faultbox/furgroom/internal/engine/lighting"
	"github.com/Faultbox/furgroom/internal/fur"
	"github.com/Faultbox/furgroom/internal/groom"
	"github.com/Faultbox/furgroom/internal/noise"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig        `yaml:"window" toml:"window"`
	Fur     FurConfig           `yaml:"fur" toml:"fur"`
	Pattern noise.Settings      `yaml:"pattern" toml:"pattern"`
	Brush   groom.BrushSettings `yaml:"brush" toml:"brush"`
	Sweep   groom.SweepSettings `yaml:"sweep" toml:"sweep"`
	Split   groom.SplitSettings `yaml:"split" toml:"split"`
	Light   lighting.Sun        `yaml:"light" toml:"light"`
	Logging LoggingConfig       `yaml:"logging" toml:"logging"`
	Trace   TraceConfig         `yaml:"trace" toml:"trace"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width         int    `yaml:"width" toml:"width"`
	Height        int    `yaml:"height" toml:"height"`
	Fullscreen    bool   `yaml:"fullscreen" toml:"fullscreen"`
	VSync         bool   `yaml:"vsync" toml:"vsync"`
	Samples       int    `yaml:"samples" toml:"samples"`
	ScreenshotDir string `yaml:"screenshot_dir" toml:"screenshot_dir"`
}

// FurConfig holds the material plus the vertical fur preset.
type FurConfig struct {
	fur.MaterialConfig `yaml:",inline"`

	// VerticalPreset grows fur along +Y with this blend and switches the
	// sweep to its vertical preset. Zero leaves both untouched.
	VerticalPreset float32 `yaml:"vertical_preset" toml:"vertical_preset"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// TraceConfig controls the per-frame gesture CSV trace.
type TraceConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Path    string `yaml:"path" toml:"path"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:         1280,
			Height:        720,
			VSync:         true,
			Samples:       4,
			ScreenshotDir: "screenshots",
		},
		Fur:     FurConfig{MaterialConfig: fur.DefaultMaterialConfig()},
		Pattern: noise.DefaultSettings(),
		Brush:   groom.DefaultBrushSettings(),
		Sweep:   groom.DefaultSweepSettings(),
		Split:   groom.DefaultSplitSettings(),
		Light:   lighting.DefaultSun(),
		Logging: LoggingConfig{
			Level: "info",
		},
		Trace: TraceConfig{
			Path: "groom-trace.csv",
		},
	}
}
