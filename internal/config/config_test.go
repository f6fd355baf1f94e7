package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/Faultbox/furgroom/internal/engine/lighting"
	"github.com/Faultbox/furgroom/internal/fur"
	"github.com/Faultbox/furgroom/internal/groom"
	"github.com/Faultbox/furgroom/internal/noise"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}

	if cfg.Fur.MaterialConfig != fur.DefaultMaterialConfig() {
		t.Errorf("unexpected fur defaults: %+v", cfg.Fur.MaterialConfig)
	}
	if cfg.Fur.VerticalPreset != 0 {
		t.Errorf("expected vertical preset off, got %g", cfg.Fur.VerticalPreset)
	}
	if cfg.Pattern != noise.DefaultSettings() {
		t.Errorf("unexpected pattern defaults: %+v", cfg.Pattern)
	}
	if cfg.Sweep.Vertical.Enabled {
		t.Error("expected vertical sweep bias to be off by default")
	}

	if cfg.Light != lighting.DefaultSun() {
		t.Errorf("unexpected light defaults: %+v", cfg.Light)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Trace.Enabled {
		t.Error("expected trace to be disabled by default")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true

fur:
  shell_count: 24
  length: 0.08
  color: [0.2, 0.1, 0.05, 1]
  vertical_preset: 0.5

pattern:
  texture_size: 256
  octaves: 3
  seed: 7

brush:
  radius: 0.25

sweep:
  momentum: 0.9
  vertical:
    enabled: true

light:
  elevation: 30

logging:
  level: "debug"
  log_file: "fur.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if !cfg.Window.VSync {
		t.Error("vsync should keep its default when absent from the file")
	}

	if cfg.Fur.ShellCount != 24 {
		t.Errorf("expected 24 shells, got %d", cfg.Fur.ShellCount)
	}
	if cfg.Fur.Length != 0.08 {
		t.Errorf("expected length 0.08, got %g", cfg.Fur.Length)
	}
	if cfg.Fur.Color != [4]float32{0.2, 0.1, 0.05, 1} {
		t.Errorf("unexpected color %v", cfg.Fur.Color)
	}
	if cfg.Fur.VerticalPreset != 0.5 {
		t.Errorf("expected vertical preset 0.5, got %g", cfg.Fur.VerticalPreset)
	}
	if cfg.Fur.Density != fur.DefaultMaterialConfig().Density {
		t.Errorf("density should keep its default, got %g", cfg.Fur.Density)
	}

	if cfg.Pattern.Size != 256 || cfg.Pattern.Octaves != 3 || cfg.Pattern.Seed != 7 {
		t.Errorf("unexpected pattern %+v", cfg.Pattern)
	}
	if cfg.Brush.Radius != 0.25 {
		t.Errorf("expected brush radius 0.25, got %g", cfg.Brush.Radius)
	}
	if cfg.Sweep.Momentum != 0.9 || !cfg.Sweep.Vertical.Enabled {
		t.Errorf("unexpected sweep %+v", cfg.Sweep)
	}

	if cfg.Light.Elevation != 30 || cfg.Light.Azimuth != lighting.DefaultSun().Azimuth {
		t.Errorf("unexpected light %+v", cfg.Light)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "fur.log" {
		t.Errorf("expected log file 'fur.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
[window]
width = 800
height = 600

[fur]
shell_count = 8
wind_strength = 0.3

[pattern]
seed = 99

[split]
width = 0.2
highlight = [1.0, 0.5, 0.0, 0.75]
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Fur.ShellCount != 8 {
		t.Errorf("expected 8 shells, got %d", cfg.Fur.ShellCount)
	}
	if cfg.Fur.WindStrength != 0.3 {
		t.Errorf("expected wind strength 0.3, got %g", cfg.Fur.WindStrength)
	}
	if cfg.Pattern.Seed != 99 {
		t.Errorf("expected seed 99, got %d", cfg.Pattern.Seed)
	}
	if cfg.Split.Width != 0.2 {
		t.Errorf("expected split width 0.2, got %g", cfg.Split.Width)
	}
	if want := [4]float32{1, 0.5, 0, 0.75}; cfg.Split.Highlight != want {
		t.Errorf("expected split highlight %v, got %v", want, cfg.Split.Highlight)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad yaml", "invalid.yaml", "window:\n  width: not a number\n  invalid syntax here\n"},
		{"unknown yaml field", "unknown.yaml", "window:\n  colour: red\n"},
		{"bad toml", "invalid.toml", "[window\nwidth = 1\n"},
		{"unknown toml field", "unknown.toml", "[fur]\nfluff = 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			cfg := Default()
			if err := loadFromFile(cfg, configPath); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("empty file should load as defaults: %v", err)
	}
	if cfg.Window.Width != Default().Window.Width {
		t.Errorf("expected default width, got %d", cfg.Window.Width)
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"config.yaml", FormatYAML},
		{"config.yml", FormatYAML},
		{"config.toml", FormatTOML},
		{"CONFIG.TOML", FormatTOML},
		{"config", FormatYAML},
	}

	for _, tt := range tests {
		if got := FormatOf(tt.path); got != tt.want {
			t.Errorf("FormatOf(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"window size", func(c *Config) { c.Window.Width = 0 }, "window"},
		{"shell count low", func(c *Config) { c.Fur.ShellCount = 0 }, "shell_count"},
		{"shell count high", func(c *Config) { c.Fur.ShellCount = fur.MaxShellCount + 1 }, "shell_count"},
		{"negative length", func(c *Config) { c.Fur.Length = -1 }, "fur.length"},
		{"vertical preset", func(c *Config) { c.Fur.VerticalPreset = 2 }, "fur.vertical_preset"},
		{"pattern size", func(c *Config) { c.Pattern.Size = 0 }, "pattern"},
		{"negative octaves", func(c *Config) { c.Pattern.Octaves = -1 }, "pattern"},
		{"brush radius", func(c *Config) { c.Brush.Radius = 0 }, "brush.radius"},
		{"sweep momentum", func(c *Config) { c.Sweep.Momentum = 1.5 }, "sweep.momentum"},
		{"split width", func(c *Config) { c.Split.Width = 0 }, "split.width"},
		{"light elevation", func(c *Config) { c.Light.Elevation = 120 }, "light"},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, "logging"},
		{"trace path", func(c *Config) { c.Trace.Enabled = true; c.Trace.Path = "" }, "trace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should mention %q", err, tt.field)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Window.Height = -1
	cfg.Fur.ShellCount = 0
	cfg.Pattern.Size = 0
	cfg.Logging.Level = "loud"

	errs := multierr.Errors(cfg.Validate())
	if len(errs) != 4 {
		t.Errorf("expected 4 errors, got %d: %v", len(errs), errs)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("HOME", tmpDir)

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "furgroom.toml")
	if err := os.WriteFile(configPath, []byte("[window]\nwidth = 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find furgroom.toml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "fur flags",
			setup: func() {
				*flagShells = 12
				*flagSeed = 5
				*flagVertical = 0.75
			},
			verify: func(cfg *Config) {
				if cfg.Fur.ShellCount != 12 {
					t.Errorf("expected 12 shells, got %d", cfg.Fur.ShellCount)
				}
				if cfg.Pattern.Seed != 5 {
					t.Errorf("expected seed 5, got %d", cfg.Pattern.Seed)
				}
				if cfg.Fur.VerticalPreset != 0.75 {
					t.Errorf("expected vertical preset 0.75, got %g", cfg.Fur.VerticalPreset)
				}
			},
			teardown: func() {
				*flagShells = 0
				*flagSeed = 0
				*flagVertical = 0
			},
		},
		{
			name:  "trace flag",
			setup: func() { *flagTrace = "out.csv" },
			verify: func(cfg *Config) {
				if !cfg.Trace.Enabled || cfg.Trace.Path != "out.csv" {
					t.Errorf("unexpected trace config %+v", cfg.Trace)
				}
			},
			teardown: func() { *flagTrace = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("fur:\n  shell_count: 99\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected validation error, got nil")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			cfg := Default()
			cfg.Window.Width = 1024
			cfg.Fur.ShellCount = 20
			cfg.Fur.VerticalPreset = 0.5
			cfg.Pattern.Seed = 1234
			cfg.Sweep = groom.VerticalFurSweep()
			cfg.Logging.Level = "warn"

			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo failed: %v", err)
			}

			loaded, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile failed: %v", err)
			}
			if *loaded != *cfg {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
			}
		})
	}
}

func TestEncodeYAMLUsesSectionNames(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Encode(&buf, FormatYAML); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	out := buf.String()
	for _, key := range []string{"window:", "fur:", "shell_count:", "pattern:", "texture_size:", "sweep:", "vertical:", "trace:"} {
		if !strings.Contains(out, key) {
			t.Errorf("encoded config missing %q", key)
		}
	}
	if strings.Contains(out, "materialconfig") {
		t.Error("material fields should be inlined under fur")
	}
}
