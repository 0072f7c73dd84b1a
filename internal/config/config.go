package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all viewer settings. Pointer fields distinguish "not set in
// the file" from an explicit false/zero.
type Config struct {
	// Frame settings
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Title       string `json:"title"`
	Output      string `json:"output"`
	Supersample int    `json:"supersample"`

	// Scene settings
	SphereRadius float64 `json:"sphere_radius"`
	SphereDetail int     `json:"sphere_detail"`

	// Render options
	Background    *[3]float64 `json:"background"`
	ShowBackfaces *bool       `json:"show_backfaces"`
	LineWidth     float64     `json:"line_width"`
	PointSize     float64     `json:"point_size"`
	Lighting      *bool       `json:"lighting"`

	// Camera
	Front  *[3]float64 `json:"front"`
	LookAt *[3]float64 `json:"look_at"`
	Up     *[3]float64 `json:"up"`
	Zoom   float64     `json:"zoom"`

	// Turntable
	Frames  int `json:"frames"`
	Workers int `json:"workers"`
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
	Output      string
	Title       string
	Width       int
	Height      int
	Supersample int
	Frames      int
	Workers     int
}

// Resolve applies CLI flag overrides, then fills any remaining empty fields
// with defaults. Flags beat the file, the file beats defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Title != "" {
		c.Title = flags.Title
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Width <= 0 {
		c.Width = 1200
	}
	if c.Height <= 0 {
		c.Height = 800
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.SphereRadius <= 0 {
		c.SphereRadius = 15
	}
	if c.SphereDetail <= 0 {
		c.SphereDetail = 2
	}
	if c.LineWidth <= 0 {
		c.LineWidth = 2
	}
	if c.PointSize <= 0 {
		c.PointSize = 3
	}
	if c.Zoom <= 0 {
		c.Zoom = 0.8
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
