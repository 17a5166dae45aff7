package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/phanxgames/tornado"
)

// Wind intensity per scene.
const (
	calmIntensity    = 0.35
	panIntensity     = 0.55
	releaseIntensity = 1.0
	afterIntensity   = 0.45
)

// Config selects the output format and master volume.
type Config struct {
	SampleRate int
	Volume     float64
}

// Player is the output the Manager plays through. The speaker package
// satisfies it via speakerPlayer.
type Player interface {
	Init(rate beep.SampleRate) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

type speakerPlayer struct{}

func (speakerPlayer) Init(rate beep.SampleRate) error {
	return speaker.Init(rate, rate.N(100*time.Millisecond))
}
func (speakerPlayer) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerPlayer) Lock()                { speaker.Lock() }
func (speakerPlayer) Unlock()              { speaker.Unlock() }

// Manager owns the scene's audio: a continuous wind bed and one-shot crashes.
// It implements tornado.EventSink.
type Manager struct {
	mu          sync.Mutex
	player      Player
	rate        beep.SampleRate
	mixer       *beep.Mixer
	wind        *Wind
	log         *zap.Logger
	initialized bool
	crashes     int
}

// NewManager creates a Manager that plays through the system speaker.
func NewManager(cfg Config, log *zap.Logger) *Manager {
	return NewManagerWithPlayer(cfg, speakerPlayer{}, log)
}

// NewManagerWithPlayer creates a Manager that plays through p.
func NewManagerWithPlayer(cfg Config, p Player, log *zap.Logger) *Manager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}
	if log == nil {
		log = zap.NewNop()
	}
	rate := beep.SampleRate(cfg.SampleRate)
	wind := NewWind(rate, calmIntensity, uint64(time.Now().UnixNano()))
	m := &Manager{
		player: p,
		rate:   rate,
		mixer:  &beep.Mixer{},
		wind:   wind,
		log:    log,
	}
	m.mixer.Add(newVolume(wind, cfg.Volume))
	return m
}

// Start opens the output and begins the wind bed.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := m.player.Init(m.rate); err != nil {
		return err
	}
	m.player.Play(m.mixer)
	m.initialized = true
	m.log.Info("audio started", zap.Int("sample_rate", int(m.rate)))
	return nil
}

// Stop silences every sound.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.player.Lock()
	m.mixer.Clear()
	m.player.Unlock()
	m.initialized = false
}

// Crashes returns the number of crash sounds started.
func (m *Manager) Crashes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.crashes
}

// WindTarget returns the intensity the wind is gliding toward.
func (m *Manager) WindTarget() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.player.Lock()
	defer m.player.Unlock()
	return m.wind.target
}

func (m *Manager) setWind(v float64) {
	m.player.Lock()
	m.wind.SetIntensity(v)
	m.player.Unlock()
}

// EmitEvent reacts to world events: the wind picks up as the scene
// progresses and the house collapse plays a crash.
func (m *Manager) EmitEvent(e tornado.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch e.Type {
	case tornado.EventSceneChanged:
		if e.Scene == tornado.SceneHouse {
			m.setWind(panIntensity)
		}
	case tornado.EventTornadoReleased:
		m.setWind(releaseIntensity)
	case tornado.EventHouseDestroyed:
		m.setWind(afterIntensity)
		m.player.Lock()
		m.mixer.Add(NewCrash(m.rate, e.Tick))
		m.player.Unlock()
		m.crashes++
		m.log.Debug("crash sound", zap.Uint64("tick", e.Tick))
	}
}
