package ecs

import (
	"testing"

	"github.com/phanxgames/tornado"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []tornado.Event
	SceneEventType.Subscribe(world, func(w donburi.World, e tornado.Event) {
		received = append(received, e)
	})

	sink.EmitEvent(tornado.Event{Type: tornado.EventSceneChanged, Scene: tornado.SceneHouse, Tick: 42})
	sink.EmitEvent(tornado.Event{Type: tornado.EventHouseDestroyed, Tornado: tornado.Vec3{X: -20, Z: 16}})

	// Events are queued; process them.
	SceneEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != tornado.EventSceneChanged || e.Scene != tornado.SceneHouse || e.Tick != 42 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != tornado.EventHouseDestroyed || e.Tornado.X != -20 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiSink_FromWorld(t *testing.T) {
	ecsWorld := donburi.NewWorld()
	w := tornado.NewWorld(tornado.DefaultWorldConfig())
	w.AddEventSink(NewDonburiSink(ecsWorld))

	var scenes []tornado.SceneID
	var released bool
	SceneEventType.Subscribe(ecsWorld, func(_ donburi.World, e tornado.Event) {
		switch e.Type {
		case tornado.EventSceneChanged:
			scenes = append(scenes, e.Scene)
		case tornado.EventTornadoReleased:
			released = true
		}
	})

	w.Advance()
	w.Advance()
	w.Update()
	events.ProcessAllEvents(ecsWorld)

	if len(scenes) != 2 || scenes[0] != tornado.SceneHouse || scenes[1] != tornado.SceneChase {
		t.Errorf("scenes = %v, want [house chase]", scenes)
	}
	if !released {
		t.Error("release event not delivered")
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	SceneEventType.Subscribe(world, func(w donburi.World, e tornado.Event) {
		count1++
	})
	SceneEventType.Subscribe(world, func(w donburi.World, e tornado.Event) {
		count2++
	})

	sink.EmitEvent(tornado.Event{Type: tornado.EventTornadoReleased})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
