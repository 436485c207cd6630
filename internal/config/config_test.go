package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"rayblaster/internal/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{"scene": "scenes/room.json", "width": 320, "height": 200, "supersample": 16}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 320 || cfg.Height != 200 || cfg.Supersample != 16 {
		t.Errorf("cfg = %+v", cfg)
	}
	if want := filepath.Join(filepath.Dir(path), "scenes", "room.json"); cfg.Scene != want {
		t.Errorf("scene = %q, want %q", cfg.Scene, want)
	}
	if cfg.Workers != 0 {
		t.Errorf("unset workers = %d, want zero before Resolve", cfg.Workers)
	}
}

func TestLoad_BuiltinSceneNameUntouched(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"scene": "spheres"}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scene != "spheres" {
		t.Errorf("scene = %q, want spheres", cfg.Scene)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v", err)
	}
	if _, err := Load(writeConfig(t, `{"width": "wide"}`)); err == nil {
		t.Error("bad JSON accepted")
	}
}

func TestResolve_Defaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.Width != 640 || cfg.Height != 480 || cfg.FOV != 90 || cfg.Supersample != 1 {
		t.Errorf("render defaults = %+v", cfg)
	}
	if cfg.Workers != runtime.NumCPU() || cfg.Jobs != 1 {
		t.Errorf("workers = %d, jobs = %d", cfg.Workers, cfg.Jobs)
	}
	if cfg.Output != "render.png" || cfg.OutputDir != "renders" {
		t.Errorf("outputs = %q, %q", cfg.Output, cfg.OutputDir)
	}
}

func TestResolve_FlagsOverrideFile(t *testing.T) {
	cfg := Config{Scene: "sphere", Width: 100, Height: 100, Workers: 2, Supersample: 4}
	cfg.Resolve(Flags{Scene: "spheres", Width: 800, Workers: 8})

	if cfg.Scene != "spheres" || cfg.Width != 800 || cfg.Workers != 8 {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Height != 100 || cfg.Supersample != 4 {
		t.Errorf("file values lost: %+v", cfg)
	}
}

func TestRenderOptions(t *testing.T) {
	cfg := Config{Width: 64, Height: 48, FOV: 60, Supersample: 16, Workers: 3}
	opts, err := cfg.RenderOptions()
	if err != nil {
		t.Fatal(err)
	}
	want := render.Options{Width: 64, Height: 48, Workers: 3, FOV: 60, Supersampling: render.X16}
	if opts != want {
		t.Errorf("opts = %+v, want %+v", opts, want)
	}
}

func TestRenderOptions_Rejects(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"supersample 2", Config{Width: 1, Height: 1, FOV: 90, Supersample: 2, Workers: 1}, render.ErrUnsupportedSupersampling},
		{"supersample 8", Config{Width: 1, Height: 1, FOV: 90, Supersample: 8, Workers: 1}, render.ErrUnsupportedSupersampling},
		{"zero height", Config{Width: 1, FOV: 90, Supersample: 1, Workers: 1}, render.ErrInvalidOptions},
		{"fov too wide", Config{Width: 1, Height: 1, FOV: 200, Supersample: 1, Workers: 1}, render.ErrInvalidOptions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.RenderOptions(); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResolve_KeepsNonPositiveValues(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		flags Flags
		want  error
	}{
		{"file supersample -4", Config{Supersample: -4}, Flags{}, render.ErrUnsupportedSupersampling},
		{"flag supersample -16", Config{}, Flags{Supersample: -16}, render.ErrUnsupportedSupersampling},
		{"flag supersample 0 given", Config{Supersample: 4}, Flags{Set: map[string]bool{"supersample": true}}, render.ErrUnsupportedSupersampling},
		{"flag width -5", Config{}, Flags{Width: -5}, render.ErrInvalidOptions},
		{"flag fov -30", Config{}, Flags{FOV: -30}, render.ErrInvalidOptions},
		{"file height -1", Config{Height: -1}, Flags{}, render.ErrInvalidOptions},
		{"flag threads 0 given", Config{}, Flags{Set: map[string]bool{"threads": true}}, render.ErrInvalidOptions},
		{"flag jobs -2", Config{}, Flags{Jobs: -2}, render.ErrInvalidOptions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.Resolve(tt.flags)
			if opts, err := cfg.RenderOptions(); !errors.Is(err, tt.want) {
				t.Errorf("opts = %+v, err = %v, want %v", opts, err, tt.want)
			}
		})
	}
}

func TestResolve_UnsetFlagsKeepFile(t *testing.T) {
	cfg := Config{Supersample: 16, Width: 320}
	cfg.Resolve(Flags{Set: map[string]bool{"scene": true}})

	if cfg.Supersample != 16 || cfg.Width != 320 || cfg.Height != 480 {
		t.Errorf("cfg = %+v", cfg)
	}
}
