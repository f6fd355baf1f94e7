package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(ConfigDir(), "config.yaml"))
}

// SaveTo writes the config to a specific path, encoded by its extension.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := c.Encode(&buf, FormatOf(path)); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Encode writes the config to w in the given format.
func (c *Config) Encode(w io.Writer, format Format) error {
	if format == FormatTOML {
		return toml.NewEncoder(w).Encode(c)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
