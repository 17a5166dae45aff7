// Package ecs provides ECS adapters for tornado world events.
//
// The primary adapter is [NewDonburiSink], which republishes scene changes,
// the tornado's release and the house's destruction into a [Donburi] world
// as typed events. Subscribe to [SceneEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(ecsWorld)
//	world.AddEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
