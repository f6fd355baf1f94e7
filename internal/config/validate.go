package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/furgroom/internal/fur"
	"github.com/Faultbox/furgroom/internal/logger"
)

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var err error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.Samples < 0 {
		err = multierr.Append(err, fmt.Errorf("window: samples must not be negative, got %d", c.Window.Samples))
	}

	f := c.Fur
	if f.ShellCount < fur.MinShellCount || f.ShellCount > fur.MaxShellCount {
		err = multierr.Append(err, fmt.Errorf("fur: shell_count must be in [%d, %d], got %d",
			fur.MinShellCount, fur.MaxShellCount, f.ShellCount))
	}
	err = multierr.Append(err, nonNegative("fur.length", f.Length))
	err = multierr.Append(err, nonNegative("fur.density", f.Density))
	err = multierr.Append(err, nonNegative("fur.thinness", f.Thinness))
	err = multierr.Append(err, nonNegative("fur.wind_strength", f.WindStrength))
	err = multierr.Append(err, unit("fur.vertical_blend", f.VerticalBlend))
	err = multierr.Append(err, unit("fur.vertical_preset", f.VerticalPreset))

	if perr := c.Pattern.Validate(); perr != nil {
		err = multierr.Append(err, fmt.Errorf("pattern: %w", perr))
	}

	err = multierr.Append(err, positive("brush.radius", c.Brush.Radius))
	err = multierr.Append(err, positive("brush.recovery_speed", c.Brush.RecoverySpeed))
	err = multierr.Append(err, positive("sweep.radius", c.Sweep.Radius))
	err = multierr.Append(err, nonNegative("sweep.max_strength", c.Sweep.MaxStrength))
	err = multierr.Append(err, unit("sweep.momentum", c.Sweep.Momentum))
	err = multierr.Append(err, positive("split.width", c.Split.Width))
	err = multierr.Append(err, positive("split.recovery_speed", c.Split.RecoverySpeed))

	if c.Light.Elevation < -90 || c.Light.Elevation > 90 {
		err = multierr.Append(err, fmt.Errorf("light: elevation must be in [-90, 90], got %g", c.Light.Elevation))
	}

	if _, lerr := logger.ParseLevel(c.Logging.Level); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("logging: %w", lerr))
	}
	if c.Trace.Enabled && c.Trace.Path == "" {
		err = multierr.Append(err, fmt.Errorf("trace: path is required when enabled"))
	}
	return err
}

func positive(name string, v float32) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %g", name, v)
	}
	return nil
}

func nonNegative(name string, v float32) error {
	if v < 0 {
		return fmt.Errorf("%s must not be negative, got %g", name, v)
	}
	return nil
}

func unit(name string, v float32) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s must be in [0, 1], got %g", name, v)
	}
	return nil
}
