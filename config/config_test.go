package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/tornado"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaultMatchesWorldDefaults(t *testing.T) {
	got := Default().WorldConfig()
	want := tornado.DefaultWorldConfig()
	if got.Funnel != want.Funnel {
		t.Errorf("funnel = %+v, want %+v", got.Funnel, want.Funnel)
	}
	if got.House != want.House {
		t.Errorf("house = %+v, want %+v", got.House, want.House)
	}
	if got.Tornado != want.Tornado {
		t.Errorf("tornado = %+v, want %+v", got.Tornado, want.Tornado)
	}
	if got.Camera.Overview != want.Camera.Overview || got.Camera.HouseView != want.Camera.HouseView {
		t.Error("camera waypoints differ from the world defaults")
	}
	if got.Stars != want.Stars {
		t.Errorf("stars = %+v, want %+v", got.Stars, want.Stars)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "scene.toml", `
[simulation]
seed = 7

[tornado]
max_grains = 1000
speed = 4.5

[house]
position = { x = 10, y = 1, z = -5 }
radius = 2

[camera]
pan_speed = 0.01
pan_ease = "in-out-sine"

[logging]
level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Simulation.Seed)
	}
	if cfg.Tornado.MaxGrains != 1000 || cfg.Tornado.Speed != 4.5 {
		t.Errorf("tornado = %+v", cfg.Tornado)
	}
	// Unset keys keep their defaults.
	if cfg.Tornado.Height != 15 {
		t.Errorf("height = %v, want default 15", cfg.Tornado.Height)
	}
	if cfg.House.Position != (tornado.Vec3{X: 10, Y: 1, Z: -5}) {
		t.Errorf("house position = %+v", cfg.House.Position)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}

	wc := cfg.WorldConfig()
	if wc.Seed != 7 || wc.Funnel.MaxGrains != 1000 || wc.Camera.PanSpeed != 0.01 {
		t.Errorf("world config = %+v", wc)
	}
	if wc.Camera.PanEase == nil {
		t.Error("pan ease not resolved")
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "scene.yaml", `
window:
  title: Twister
  width: 800
  height: 600
camera:
  chase_offset: {x: 0, y: 10, z: -20}
stars:
  count: 50
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "Twister" || cfg.Window.Width != 800 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Camera.ChaseOffset != (tornado.Vec3{X: 0, Y: 10, Z: -20}) {
		t.Errorf("chase offset = %+v", cfg.Camera.ChaseOffset)
	}
	if cfg.Stars.Count != 50 {
		t.Errorf("stars = %d, want 50", cfg.Stars.Count)
	}
	vp := cfg.Viewport()
	if vp.Width != 800 || vp.Height != 600 || vp.FOV != 60 {
		t.Errorf("viewport = %+v", vp)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "bad.toml", "[tornado\nmax_grains = ")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeFile(t, "bad.toml", "[camera]\npan_ease = \"wobble\"\n")
	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero grains", func(c *Config) { c.Tornado.MaxGrains = 0 }},
		{"inverted radius", func(c *Config) { c.Tornado.MaxRadius = c.Tornado.MinRadius }},
		{"zero pan speed", func(c *Config) { c.Camera.PanSpeed = 0 }},
		{"negative tick", func(c *Config) { c.Simulation.TickDelta = -1 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.5 }},
		{"loud audio", func(c *Config) { c.Audio.Volume = 2 }},
		{"tiny window", func(c *Config) { c.Window.Width = 0 }},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: err = %v, want ErrInvalid", tc.name, err)
		}
	}
}

func TestNewLogger(t *testing.T) {
	for _, lc := range []LoggingConfig{
		{Level: "debug", Format: "console"},
		{Level: "warn", Format: "json"},
		{Level: "bogus", Format: "console"},
	} {
		log, err := NewLogger(lc)
		if err != nil {
			t.Fatalf("NewLogger(%+v): %v", lc, err)
		}
		_ = log.Sync()
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.log")
	log, err := NewLogger(LoggingConfig{Level: "info", Format: "json", File: path})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Info("hello")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Errorf("log file = %q, want the entry", data)
	}
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "tornado.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Tornado != def.Tornado {
		t.Errorf("tornado = %+v, want %+v", cfg.Tornado, def.Tornado)
	}
	if cfg.House != def.House {
		t.Errorf("house = %+v, want %+v", cfg.House, def.House)
	}
	if cfg.Camera != def.Camera {
		t.Errorf("camera = %+v, want %+v", cfg.Camera, def.Camera)
	}
	if cfg.Stars != def.Stars || cfg.Window != def.Window || cfg.Audio != def.Audio {
		t.Error("sample config drifted from the defaults")
	}
}

func TestSampleScriptLoads(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "demo.json"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tornado.LoadScript(data); err != nil {
		t.Errorf("LoadScript: %v", err)
	}
}
