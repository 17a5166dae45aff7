package tornado

import (
	"time"

	"go.uber.org/zap"
)

// EventType identifies a kind of world event.
type EventType uint8

const (
	EventSceneChanged    EventType = iota // fires when the scene advances
	EventTornadoReleased                  // fires when the tornado starts homing
	EventHouseDestroyed                   // fires once when the tornado reaches the house
)

// String returns the event type's name.
func (t EventType) String() string {
	switch t {
	case EventSceneChanged:
		return "scene_changed"
	case EventTornadoReleased:
		return "tornado_released"
	case EventHouseDestroyed:
		return "house_destroyed"
	default:
		return "unknown"
	}
}

// Event carries a world event to registered sinks.
type Event struct {
	Type    EventType
	Scene   SceneID
	Tick    uint64
	Time    float64
	Tornado Vec3
}

// EventSink receives world events. Sinks are called synchronously on the
// tick goroutine.
type EventSink interface {
	EmitEvent(event Event)
}

// WorldConfig aggregates the configuration of every component.
type WorldConfig struct {
	// Seed, when non-zero, makes every random source reproducible.
	Seed uint64
	// TickDelta is the fixed step in seconds.
	TickDelta float64
	Funnel    FunnelConfig
	Tornado   TornadoState
	House     HouseState
	Camera    CameraConfig
	Stars     StarFieldConfig
}

// DefaultWorldConfig returns the complete scene configuration.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		TickDelta: DefaultTickDelta,
		Funnel:    DefaultFunnelConfig(),
		Tornado:   DefaultTornadoState(),
		House:     DefaultHouseState(),
		Camera:    DefaultCameraConfig(),
		Stars:     DefaultStarFieldConfig(),
	}
}

// World is the top-level object that owns the clock, the tornado, the
// collision gate, the scene controller and the star field, and advances them
// in a fixed order each tick.
type World struct {
	clock      *SceneClock
	sim        *TornadoSimulator
	stars      *StarField
	gate       *CollisionGate
	controller *SceneController

	tornado TornadoState
	house   HouseState

	sinks   []EventSink
	log     *zap.Logger
	debug   bool
	script  *Script
	pending int

	poolFullLogged bool
}

// NewWorld creates a world from cfg with the camera at the overview.
func NewWorld(cfg WorldConfig) *World {
	simRng, starRng := NewRandom(), NewRandom()
	if cfg.Seed != 0 {
		simRng = NewSeededRandom(cfg.Seed)
		starRng = NewSeededRandom(cfg.Seed + 1)
	}
	return newWorld(cfg, simRng, starRng)
}

// NewWorldWithRandom creates a world whose simulator and star field draw from
// the given sources.
func NewWorldWithRandom(cfg WorldConfig, simRng, starRng RandomSource) *World {
	return newWorld(cfg, simRng, starRng)
}

func newWorld(cfg WorldConfig, simRng, starRng RandomSource) *World {
	return &World{
		clock:      NewSceneClock(cfg.TickDelta),
		sim:        NewTornadoSimulator(cfg.Funnel, simRng),
		stars:      NewStarField(cfg.Stars, starRng),
		gate:       NewCollisionGate(cfg.House.Radius, cfg.Tornado.Radius),
		controller: NewSceneController(cfg.Camera),
		tornado:    cfg.Tornado,
		house:      cfg.House,
		log:        zap.NewNop(),
	}
}

// SetLogger sets the logger used for scene and collision events. A nil
// logger disables logging.
func (w *World) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	w.log = log
}

// SetDebugMode enables per-tick timing logs at debug level.
func (w *World) SetDebugMode(enabled bool) {
	w.debug = enabled
}

// AddEventSink registers a sink for world events.
func (w *World) AddEventSink(sink EventSink) {
	if sink != nil {
		w.sinks = append(w.sinks, sink)
	}
}

// SetScript attaches a scripted event sequence, stepped once per tick.
func (w *World) SetScript(s *Script) {
	w.script = s
}

// Advance queues a scene advance. Queued advances are applied at the start of
// the next Update.
func (w *World) Advance() {
	w.pending++
}

// AdvanceNow applies a scene advance immediately. Entering the chase scene
// releases the tornado toward the house.
func (w *World) AdvanceNow() {
	scene, err := w.controller.Advance()
	if err != nil {
		w.log.Debug("scene advance ignored", zap.Stringer("scene", scene), zap.Error(err))
		return
	}
	w.log.Info("scene changed", zap.Stringer("scene", scene), zap.Uint64("tick", w.clock.Ticks()))
	w.emit(EventSceneChanged)

	if scene == SceneChase && !w.tornado.Active {
		w.tornado.Active = true
		w.log.Info("tornado released",
			zap.Float64("x", w.tornado.Position.X),
			zap.Float64("z", w.tornado.Position.Z),
			zap.Float64("speed", w.tornado.Speed))
		w.emit(EventTornadoReleased)
	}
}

// Update advances the world by one tick: queued input, clock, particles,
// collision, then camera.
func (w *World) Update() {
	var t0 time.Time
	if w.debug {
		t0 = time.Now()
	}

	if w.script != nil {
		w.script.step(w)
	}
	for ; w.pending > 0; w.pending-- {
		w.AdvanceNow()
	}

	now := w.clock.Advance()
	w.sim.Update(now)
	if !w.poolFullLogged && w.sim.Full() {
		w.poolFullLogged = true
		w.log.Debug("grain pool full", zap.Int("grains", w.sim.Len()), zap.Uint64("tick", w.clock.Ticks()))
	}

	if w.tornado.Active {
		if w.gate.Step(&w.tornado, w.house, w.clock.Delta()) {
			w.log.Info("house destroyed",
				zap.Uint64("tick", w.clock.Ticks()),
				zap.Float64("time", now),
				zap.Float64("distance", PlanarDistance(w.tornado.Position, w.house.Position)))
			w.emit(EventHouseDestroyed)
		}
	}

	w.controller.Update(w.tornado.Position, w.house.Position)

	if w.debug {
		w.log.Debug("tick",
			zap.Uint64("tick", w.clock.Ticks()),
			zap.Duration("elapsed", time.Since(t0)),
			zap.Int("grains", w.sim.Len()))
	}
}

func (w *World) emit(t EventType) {
	if len(w.sinks) == 0 {
		return
	}
	ev := Event{
		Type:    t,
		Scene:   w.controller.Scene(),
		Tick:    w.clock.Ticks(),
		Time:    w.clock.Time(),
		Tornado: w.tornado.Position,
	}
	for _, s := range w.sinks {
		s.EmitEvent(ev)
	}
}

// Scene returns the current scene.
func (w *World) Scene() SceneID { return w.controller.Scene() }

// Camera returns the current camera.
func (w *World) Camera() Camera { return w.controller.Camera() }

// Destroyed reports whether the house has been destroyed.
func (w *World) Destroyed() bool { return w.gate.Destroyed() }

// Tornado returns the tornado's world state.
func (w *World) Tornado() TornadoState { return w.tornado }

// House returns the house placement.
func (w *World) House() HouseState { return w.house }

// Simulator returns the tornado particle simulator.
func (w *World) Simulator() *TornadoSimulator { return w.sim }

// Controller returns the scene controller.
func (w *World) Controller() *SceneController { return w.controller }

// Clock returns the scene clock.
func (w *World) Clock() *SceneClock { return w.clock }

// Stars returns the fixed star positions.
func (w *World) Stars() []Vec3 { return w.stars.Stars() }
