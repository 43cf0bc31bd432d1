package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	OutputDir   string `json:"output_dir"`
	TexturePath string `json:"texture"`
	Order       string `json:"order"`

	RenderSize  int `json:"render_size"`
	Supersample int `json:"supersample"`
	Frames      int `json:"frames"`
	Workers     int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Texture   string
	Order     string
	Size      int
	Frames    int
	Workers   int
}

// Resolve applies CLI overrides and fills any remaining empty fields
// with defaults. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Texture != "" {
		c.TexturePath = flags.Texture
	}
	if flags.Order != "" {
		c.Order = flags.Order
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Order == "" {
		c.Order = "XYZ"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 16
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
