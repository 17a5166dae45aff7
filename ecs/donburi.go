package ecs

import (
	"github.com/phanxgames/tornado"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for tornado world events.
var SceneEventType = events.NewEventType[tornado.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on SceneEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) tornado.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event tornado.Event) {
	SceneEventType.Publish(s.world, event)
}
