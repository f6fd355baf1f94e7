// furtool is a CLI utility for fur patterns, gesture traces and config files.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Faultbox/furgroom/internal/config"
	"github.com/Faultbox/furgroom/internal/engine/debug"
	"github.com/Faultbox/furgroom/internal/engine/model"
	"github.com/Faultbox/furgroom/internal/fur"
	"github.com/Faultbox/furgroom/internal/groom"
	"github.com/Faultbox/furgroom/internal/logger"
	"github.com/Faultbox/furgroom/internal/noise"
	"github.com/Faultbox/furgroom/internal/trace"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	if err := logger.Init("warn", ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	switch command {
	case "pattern", "p":
		cmdPattern(args)
	case "trace", "t":
		cmdTrace(args)
	case "config", "c":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`furtool - fur shell grooming utility

Usage:
  furtool <command> [options]

Commands:
  pattern [options]    Generate a noise pattern and write it as PNG and/or raw RGBA
  trace [options]      Run a scripted gesture on a synthetic plane and write a CSV trace
  config [options]     Print or write the effective configuration

Examples:
  furtool pattern -size 256 -seed 7 -o fur.png -preview 512
  furtool trace -gesture sweep -o sweep.csv
  furtool config -config furgroom.yaml -format toml -o furgroom.toml`)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// loadConfig reads path over the defaults, or returns the defaults if path
// is empty.
func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		fail(err)
	}
	return cfg
}

// patternFlags are the noise settings furtool pattern can override. Only
// flags given on the command line replace config values, so zero is a
// valid override.
type patternFlags struct {
	size        *int
	octaves     *int
	persistence *float64
	lacunarity  *float64
	scale       *float64
	seed        *int64
}

func definePatternFlags(fs *flag.FlagSet) patternFlags {
	def := noise.DefaultSettings()
	return patternFlags{
		size:        fs.Int("size", def.Size, "Texture size"),
		octaves:     fs.Int("octaves", def.Octaves, "Octave count"),
		persistence: fs.Float64("persistence", def.Persistence, "Amplitude falloff per octave"),
		lacunarity:  fs.Float64("lacunarity", def.Lacunarity, "Frequency growth per octave"),
		scale:       fs.Float64("scale", def.Scale, "Noise scale"),
		seed:        fs.Int64("seed", def.Seed, "Seed"),
	}
}

// apply copies the flags set on fs into s.
func (f patternFlags) apply(fs *flag.FlagSet, s *noise.Settings) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "size":
			s.Size = *f.size
		case "octaves":
			s.Octaves = *f.octaves
		case "persistence":
			s.Persistence = *f.persistence
		case "lacunarity":
			s.Lacunarity = *f.lacunarity
		case "scale":
			s.Scale = *f.scale
		case "seed":
			s.Seed = *f.seed
		}
	})
}

func cmdPattern(args []string) {
	fs := flag.NewFlagSet("pattern", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Take pattern settings from this config file")
	overrides := definePatternFlags(fs)
	out := fs.String("o", "pattern.png", "PNG output path (empty to skip)")
	raw := fs.String("raw", "", "Raw RGBA output path")
	preview := fs.Int("preview", 0, "Also write a 2x2 tiled preview scaled to N pixels")
	fs.Parse(args)

	s := loadConfig(*cfgPath).Pattern
	overrides.apply(fs, &s)

	p, err := noise.Generate(s)
	if err != nil {
		fail(err)
	}

	if *out != "" {
		if err := debug.WritePNG(*out, p.Image()); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %s\n", *out)
	}
	if *raw != "" {
		if err := os.WriteFile(*raw, p.RGBA(), 0644); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %s\n", *raw)
	}
	if *preview > 0 {
		path := previewPath(*out)
		if err := debug.WritePNG(path, debug.TilePreview(p.Image(), 2, *preview)); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %s\n", path)
	}

	lo, hi, mean := stats(p.Values())
	fmt.Printf("Size:    %dx%d\n", p.Size(), p.Size())
	fmt.Printf("Seed:    %d\n", s.Seed)
	fmt.Printf("Octaves: %d\n", s.Octaves)
	fmt.Printf("Range:   %.4f .. %.4f (mean %.4f)\n", lo, hi, mean)
}

func previewPath(out string) string {
	if out == "" {
		return "pattern-preview.png"
	}
	return strings.TrimSuffix(out, ".png") + "-preview.png"
}

func stats(values []float64) (lo, hi, mean float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	lo, hi = values[0], values[0]
	var sum float64
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
		sum += v
	}
	return lo, hi, sum / float64(len(values))
}

func cmdTrace(args []string) {
	fs := flag.NewFlagSet("trace", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Take fur and gesture settings from this config file")
	gesture := fs.String("gesture", "brush", "Gesture to script: brush, sweep or split")
	drag := fs.Int("drag", 60, "Frames spent dragging")
	rest := fs.Int("rest", 120, "Frames after release")
	out := fs.String("o", "trace.csv", "CSV output path")
	fs.Parse(args)

	kind, err := parseGesture(*gesture)
	if err != nil {
		fail(err)
	}

	cfg := loadConfig(*cfgPath)
	s := fur.NewSurface(1, model.Plane(2, 16), 1, 2)
	s.Material.ApplyConfig(cfg.Fur.MaterialConfig)
	s.PatternSettings = cfg.Pattern
	s.Brush.SetSettings(cfg.Brush)
	s.Sweep.SetSettings(cfg.Sweep)
	s.Split.SetSettings(cfg.Split)
	if cfg.Fur.VerticalPreset > 0 {
		s.ApplyVerticalFur(cfg.Fur.VerticalPreset)
	}

	rec, err := trace.NewRecorder(*out)
	if err != nil {
		fail(err)
	}
	defer rec.Close()

	sc := trace.DefaultScript(kind)
	sc.Drag, sc.Rest = *drag, *rest
	host := trace.OrthoHost{Target: s.ID, Scale: 100, Extent: 1}
	if err := trace.Run(s, host, sc, rec); err != nil {
		fail(err)
	}

	fmt.Printf("Wrote %d records to %s\n", rec.Rows(), *out)
}

func parseGesture(name string) (groom.Kind, error) {
	for _, k := range []groom.Kind{groom.KindBrush, groom.KindSweep, groom.KindSplit} {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown gesture %q (want brush, sweep or split)", name)
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Config file to read (defaults if empty)")
	format := fs.String("format", "yaml", "Output format when printing: yaml or toml")
	out := fs.String("o", "", "Write to this path instead of stdout (format from extension)")
	fs.Parse(args)

	cfg := loadConfig(*cfgPath)

	if *out != "" {
		if err := cfg.SaveTo(*out); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %s\n", *out)
		return
	}

	f := config.Format(strings.ToLower(*format))
	if f != config.FormatYAML && f != config.FormatTOML {
		fail(fmt.Errorf("unknown format %q", *format))
	}
	if err := cfg.Encode(os.Stdout, f); err != nil {
		fail(err)
	}
}
