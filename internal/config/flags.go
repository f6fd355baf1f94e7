package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagShells     = flag.Int("shells", 0, "Fur shell count")
	flagSeed       = flag.Int64("seed", 0, "Noise pattern seed")
	flagVertical   = flag.Float64("vertical", 0, "Vertical fur blend (enables the vertical sweep preset)")
	flagTrace      = flag.String("trace", "", "Write per-frame gesture records to this CSV file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagShells > 0 {
		cfg.Fur.ShellCount = *flagShells
	}
	if *flagSeed != 0 {
		cfg.Pattern.Seed = *flagSeed
	}
	if *flagVertical > 0 {
		cfg.Fur.VerticalPreset = float32(*flagVertical)
	}
	if *flagTrace != "" {
		cfg.Trace.Enabled = true
		cfg.Trace.Path = *flagTrace
	}
}
