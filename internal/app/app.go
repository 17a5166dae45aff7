// Package app wires configuration, logging, audio and the simulation core
// together for the command-line front ends.
package app

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/phanxgames/tornado"
	"github.com/phanxgames/tornado/audio"
	"github.com/phanxgames/tornado/config"
	"github.com/phanxgames/tornado/ecs"
)

// Options are the flags shared by every front end.
type Options struct {
	ConfigPath string
	ScriptPath string
	Audio      bool
	Debug      bool
	Seed       uint64
	// LogFile, when set, overrides the configured log destination.
	LogFile string
}

// RegisterFlags binds Options to fs.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", "", "path to a TOML or YAML config file")
	fs.StringVar(&o.ScriptPath, "script", "", "path to a JSON script of scene advances")
	fs.BoolVar(&o.Audio, "audio", false, "play wind and crash sounds")
	fs.BoolVar(&o.Debug, "debug", false, "log per-tick timing")
	fs.Uint64Var(&o.Seed, "seed", 0, "random seed (0 = config or time based)")
}

// App is a configured world with its collaborators.
type App struct {
	Config *config.Config
	Log    *zap.Logger
	World  *tornado.World
	Audio  *audio.Manager
	ECS    *ecs.Bridge
}

// New loads the configuration and builds the world described by opts.
func New(opts Options) (*App, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigPath); err != nil {
			return nil, err
		}
	}
	if opts.Seed != 0 {
		cfg.Simulation.Seed = opts.Seed
	}
	if opts.Debug {
		cfg.Simulation.Debug = true
		cfg.Logging.Level = "debug"
	}
	if opts.LogFile != "" {
		cfg.Logging.File = opts.LogFile
	}
	if opts.Audio {
		cfg.Audio.Enabled = true
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	w := tornado.NewWorld(cfg.WorldConfig())
	w.SetLogger(log.Named("world"))
	w.SetDebugMode(cfg.Simulation.Debug)

	if opts.ScriptPath != "" {
		data, err := os.ReadFile(opts.ScriptPath)
		if err != nil {
			return nil, fmt.Errorf("read script: %w", err)
		}
		s, err := tornado.LoadScript(data)
		if err != nil {
			return nil, fmt.Errorf("script %s: %w", opts.ScriptPath, err)
		}
		w.SetScript(s)
	}

	a := &App{Config: cfg, Log: log, World: w}

	a.ECS = ecs.NewBridge(log.Named("ecs"))
	w.AddEventSink(a.ECS)

	if cfg.Audio.Enabled {
		a.Audio = audio.NewManager(audio.Config{
			SampleRate: cfg.Audio.SampleRate,
			Volume:     cfg.Audio.Volume,
		}, log.Named("audio"))
		if err := a.Audio.Start(); err != nil {
			// No sound device; continue silently.
			log.Warn("audio unavailable", zap.Error(err))
			a.Audio = nil
		} else {
			w.AddEventSink(a.Audio)
		}
	}

	log.Info("scene ready",
		zap.Uint64("seed", cfg.Simulation.Seed),
		zap.Int("max_grains", cfg.Tornado.MaxGrains),
		zap.Bool("audio", a.Audio != nil),
		zap.Bool("scripted", opts.ScriptPath != ""),
	)
	return a, nil
}

// Close stops audio and flushes the logger.
func (a *App) Close() {
	if a.Audio != nil {
		a.Audio.Stop()
	}
	s := a.ECS.Stats()
	a.Log.Info("scene finished",
		zap.Uint64("ticks", a.World.Clock().Ticks()),
		zap.Stringer("scene", s.Scene),
		zap.Bool("house_destroyed", s.Destroyed),
	)
	_ = a.Log.Sync()
}
