package ecs

import (
	"go.uber.org/zap"

	"github.com/phanxgames/tornado"

	"github.com/yohamta/donburi"
)

// SceneStats tallies the events seen by a Bridge.
type SceneStats struct {
	Scene        tornado.SceneID
	SceneChanges int
	Released     bool
	Destroyed    bool
	LastTick     uint64
}

// SceneStatsComponent holds the Bridge's tally on its single stats entity.
var SceneStatsComponent = donburi.NewComponentType[SceneStats]()

// Bridge owns a Donburi world that mirrors tornado world events. Each event is
// published on SceneEventType and delivered before EmitEvent returns.
type Bridge struct {
	world donburi.World
	sink  tornado.EventSink
	stats donburi.Entity
	log   *zap.Logger
}

// NewBridge creates a Bridge with its own Donburi world.
func NewBridge(log *zap.Logger) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	world := donburi.NewWorld()
	b := &Bridge{
		world: world,
		sink:  NewDonburiSink(world),
		stats: world.Create(SceneStatsComponent),
		log:   log,
	}
	SceneEventType.Subscribe(world, b.record)
	return b
}

// World returns the Donburi world. Systems may subscribe to SceneEventType on it.
func (b *Bridge) World() donburi.World { return b.world }

// EmitEvent implements tornado.EventSink.
func (b *Bridge) EmitEvent(e tornado.Event) {
	b.sink.EmitEvent(e)
	SceneEventType.ProcessEvents(b.world)
}

// Stats returns a copy of the current tally.
func (b *Bridge) Stats() SceneStats {
	return *SceneStatsComponent.Get(b.world.Entry(b.stats))
}

func (b *Bridge) record(w donburi.World, e tornado.Event) {
	s := SceneStatsComponent.Get(w.Entry(b.stats))
	s.LastTick = e.Tick
	switch e.Type {
	case tornado.EventSceneChanged:
		s.Scene = e.Scene
		s.SceneChanges++
	case tornado.EventTornadoReleased:
		s.Released = true
	case tornado.EventHouseDestroyed:
		s.Destroyed = true
	}
	b.log.Debug("ecs event",
		zap.Stringer("type", e.Type),
		zap.Stringer("scene", e.Scene),
		zap.Uint64("tick", e.Tick),
	)
}
