package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"rayblaster/internal/render"
)

// Config holds the scene selection, output paths and render settings.
type Config struct {
	// Scene and output
	Scene     string `json:"scene"`
	Output    string `json:"output"`
	OutputDir string `json:"output_dir"`
	Thumbnail int    `json:"thumbnail"`

	// Render settings
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	FOV         float64 `json:"fov"`
	Supersample int     `json:"supersample"`
	Workers     int     `json:"workers"`
	Jobs        int     `json:"jobs"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values. A relative .json scene
// path is taken relative to the config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if strings.HasSuffix(strings.ToLower(cfg.Scene), ".json") && !filepath.IsAbs(cfg.Scene) {
		cfg.Scene = filepath.Join(filepath.Dir(path), cfg.Scene)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Set names the flags given on the command line (by their long name), so an
// explicit zero or negative value still overrides the file and is rejected
// later by RenderOptions instead of being replaced by a default.
type Flags struct {
	Scene       string
	Output      string
	OutputDir   string
	Thumbnail   int
	Width       int
	Height      int
	FOV         float64
	Supersample int
	Workers     int
	Jobs        int

	Set map[string]bool
}

func (f Flags) given(name string, nonZero bool) bool {
	return nonZero || f.Set[name]
}

// Resolve applies CLI overrides and fills unset fields with defaults.
// Zero means unset in the config file; non-zero values are kept as they are
// so that RenderOptions can reject them.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.given("thumb", flags.Thumbnail != 0) {
		c.Thumbnail = flags.Thumbnail
	}
	if flags.given("width", flags.Width != 0) {
		c.Width = flags.Width
	}
	if flags.given("height", flags.Height != 0) {
		c.Height = flags.Height
	}
	if flags.given("fov", flags.FOV != 0) {
		c.FOV = flags.FOV
	}
	if flags.given("supersample", flags.Supersample != 0) {
		c.Supersample = flags.Supersample
	}
	if flags.given("threads", flags.Workers != 0) {
		c.Workers = flags.Workers
	}
	if flags.given("jobs", flags.Jobs != 0) {
		c.Jobs = flags.Jobs
	}

	// Defaults
	if c.Output == "" {
		c.Output = "render.png"
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Width == 0 && !flags.Set["width"] {
		c.Width = 640
	}
	if c.Height == 0 && !flags.Set["height"] {
		c.Height = 480
	}
	if c.FOV == 0 && !flags.Set["fov"] {
		c.FOV = 90
	}
	if c.Supersample == 0 && !flags.Set["supersample"] {
		c.Supersample = 1
	}
	if c.Workers == 0 && !flags.Set["threads"] {
		c.Workers = runtime.NumCPU()
	}
	if c.Jobs == 0 && !flags.Set["jobs"] {
		c.Jobs = 1
	}
}

// RenderOptions converts the render settings, rejecting unsupported values.
func (c Config) RenderOptions() (render.Options, error) {
	mode, err := render.ParseSupersampling(c.Supersample)
	if err != nil {
		return render.Options{}, fmt.Errorf("config: %w", err)
	}
	opts := render.Options{
		Width:         c.Width,
		Height:        c.Height,
		Workers:       c.Workers,
		FOV:           c.FOV,
		Supersampling: mode,
	}
	if err := opts.Validate(); err != nil {
		return render.Options{}, fmt.Errorf("config: %w", err)
	}
	if c.Jobs < 0 {
		return render.Options{}, fmt.Errorf("config: %w: jobs %d", render.ErrInvalidOptions, c.Jobs)
	}
	return opts, nil
}
