// Package config loads the scene configuration from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/tornado"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window     WindowConfig            `toml:"window" yaml:"window"`
	Simulation SimulationConfig        `toml:"simulation" yaml:"simulation"`
	Tornado    TornadoConfig           `toml:"tornado" yaml:"tornado"`
	House      tornado.HouseState      `toml:"house" yaml:"house"`
	Camera     CameraConfig            `toml:"camera" yaml:"camera"`
	Stars      tornado.StarFieldConfig `toml:"stars" yaml:"stars"`
	Logging    LoggingConfig           `toml:"logging" yaml:"logging"`
	Audio      AudioConfig             `toml:"audio" yaml:"audio"`
}

type WindowConfig struct {
	Title   string `toml:"title" yaml:"title"`
	Width   int    `toml:"width" yaml:"width"`
	Height  int    `toml:"height" yaml:"height"`
	ShowHUD bool   `toml:"show_hud" yaml:"show_hud"`
}

type SimulationConfig struct {
	TickDelta float64 `toml:"tick_delta" yaml:"tick_delta"` // seconds per tick
	Seed      uint64  `toml:"seed" yaml:"seed"`             // 0 = unseeded
	Debug     bool    `toml:"debug" yaml:"debug"`
}

type TornadoConfig struct {
	MaxGrains  int     `toml:"max_grains" yaml:"max_grains"`
	Height     float64 `toml:"height" yaml:"height"`
	SwayAmount float64 `toml:"sway_amount" yaml:"sway_amount"`
	SwaySpeed  float64 `toml:"sway_speed" yaml:"sway_speed"`
	MinRadius  float64 `toml:"min_radius" yaml:"min_radius"`
	MaxRadius  float64 `toml:"max_radius" yaml:"max_radius"`
	Spin       float64 `toml:"spin" yaml:"spin"`               // radians per tick
	Rise       float64 `toml:"rise" yaml:"rise"`               // height per tick
	RiseJitter float64 `toml:"rise_jitter" yaml:"rise_jitter"` // max random extra rise
	Speed      float64 `toml:"speed" yaml:"speed"`             // homing speed, units per second
	Radius     float64 `toml:"radius" yaml:"radius"`           // collision radius
}

type CameraConfig struct {
	Overview          tornado.Viewpoint `toml:"overview" yaml:"overview"`
	HouseView         tornado.Viewpoint `toml:"house_view" yaml:"house_view"`
	PanSpeed          float64           `toml:"pan_speed" yaml:"pan_speed"`
	PanEase           string            `toml:"pan_ease" yaml:"pan_ease"`
	ChaseOffset       tornado.Vec3      `toml:"chase_offset" yaml:"chase_offset"`
	ChaseTargetHeight float64           `toml:"chase_target_height" yaml:"chase_target_height"`
	FOV               float64           `toml:"fov" yaml:"fov"`
	Near              float64           `toml:"near" yaml:"near"`
	Far               float64           `toml:"far" yaml:"far"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
	File   string `toml:"file" yaml:"file"`     // empty = stderr
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled" yaml:"enabled"`
	SampleRate int     `toml:"sample_rate" yaml:"sample_rate"`
	Volume     float64 `toml:"volume" yaml:"volume"` // 0.0-1.0
}

// easings maps config names to gween easing functions.
var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-out-sine":  ease.InOutSine,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
}

// Load reads a config file over the defaults. Files ending in .yaml or .yml
// are parsed as YAML, everything else as TOML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	funnel := tornado.DefaultFunnelConfig()
	tor := tornado.DefaultTornadoState()
	cam := tornado.DefaultCameraConfig()
	vp := tornado.DefaultViewport
	return &Config{
		Window: WindowConfig{
			Title:   "Tornado",
			Width:   int(vp.Width),
			Height:  int(vp.Height),
			ShowHUD: true,
		},
		Simulation: SimulationConfig{
			TickDelta: tornado.DefaultTickDelta,
		},
		Tornado: TornadoConfig{
			MaxGrains:  funnel.MaxGrains,
			Height:     funnel.Height,
			SwayAmount: funnel.SwayAmount,
			SwaySpeed:  funnel.SwaySpeed,
			MinRadius:  funnel.MinRadius,
			MaxRadius:  funnel.MaxRadius,
			Spin:       funnel.Spin,
			Rise:       funnel.Rise,
			RiseJitter: funnel.RiseJitter,
			Speed:      tor.Speed,
			Radius:     tor.Radius,
		},
		House: tornado.DefaultHouseState(),
		Camera: CameraConfig{
			Overview:          cam.Overview,
			HouseView:         cam.HouseView,
			PanSpeed:          cam.PanSpeed,
			PanEase:           "linear",
			ChaseOffset:       cam.ChaseOffset,
			ChaseTargetHeight: cam.ChaseTargetHeight,
			FOV:               vp.FOV,
			Near:              vp.Near,
			Far:               vp.Far,
		},
		Stars: tornado.DefaultStarFieldConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Audio: AudioConfig{
			SampleRate: 44100,
			Volume:     0.6,
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Simulation.TickDelta <= 0:
		return fmt.Errorf("%w: tick_delta %v must be positive", ErrInvalid, c.Simulation.TickDelta)
	case c.Tornado.MaxGrains <= 0:
		return fmt.Errorf("%w: max_grains %d must be positive", ErrInvalid, c.Tornado.MaxGrains)
	case c.Tornado.Height <= 0:
		return fmt.Errorf("%w: tornado height %v must be positive", ErrInvalid, c.Tornado.Height)
	case c.Tornado.MaxRadius <= c.Tornado.MinRadius:
		return fmt.Errorf("%w: max_radius %v must exceed min_radius %v", ErrInvalid, c.Tornado.MaxRadius, c.Tornado.MinRadius)
	case c.Tornado.Rise <= 0 || c.Tornado.RiseJitter < 0:
		return fmt.Errorf("%w: rise %v / rise_jitter %v", ErrInvalid, c.Tornado.Rise, c.Tornado.RiseJitter)
	case c.Tornado.Speed < 0 || c.Tornado.Radius < 0 || c.House.Radius < 0:
		return fmt.Errorf("%w: speeds and radii must not be negative", ErrInvalid)
	case c.Camera.PanSpeed <= 0:
		return fmt.Errorf("%w: pan_speed %v must be positive", ErrInvalid, c.Camera.PanSpeed)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: fov %v out of range", ErrInvalid, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: near %v / far %v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Stars.Count < 0:
		return fmt.Errorf("%w: star count %d", ErrInvalid, c.Stars.Count)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume %v out of range", ErrInvalid, c.Audio.Volume)
	}
	if _, ok := easings[strings.ToLower(c.Camera.PanEase)]; !ok {
		return fmt.Errorf("%w: unknown pan_ease %q", ErrInvalid, c.Camera.PanEase)
	}
	return nil
}

// WorldConfig maps the file configuration onto the simulation core.
func (c *Config) WorldConfig() tornado.WorldConfig {
	fn, ok := easings[strings.ToLower(c.Camera.PanEase)]
	if !ok {
		fn = ease.Linear
	}
	return tornado.WorldConfig{
		Seed:      c.Simulation.Seed,
		TickDelta: c.Simulation.TickDelta,
		Funnel: tornado.FunnelConfig{
			MaxGrains:  c.Tornado.MaxGrains,
			Height:     c.Tornado.Height,
			SwayAmount: c.Tornado.SwayAmount,
			SwaySpeed:  c.Tornado.SwaySpeed,
			MinRadius:  c.Tornado.MinRadius,
			MaxRadius:  c.Tornado.MaxRadius,
			Spin:       c.Tornado.Spin,
			Rise:       c.Tornado.Rise,
			RiseJitter: c.Tornado.RiseJitter,
		},
		Tornado: tornado.TornadoState{
			Speed:  c.Tornado.Speed,
			Radius: c.Tornado.Radius,
		},
		House: c.House,
		Camera: tornado.CameraConfig{
			Overview:          c.Camera.Overview,
			HouseView:         c.Camera.HouseView,
			PanSpeed:          c.Camera.PanSpeed,
			PanEase:           fn,
			ChaseOffset:       c.Camera.ChaseOffset,
			ChaseTargetHeight: c.Camera.ChaseTargetHeight,
		},
		Stars: c.Stars,
	}
}

// Viewport returns the projection described by the window and camera settings.
func (c *Config) Viewport() tornado.Viewport {
	return tornado.Viewport{
		Width:  float64(c.Window.Width),
		Height: float64(c.Window.Height),
		FOV:    c.Camera.FOV,
		Near:   c.Camera.Near,
		Far:    c.Camera.Far,
	}
}
