// Package tornado is the simulation core of a looping night scene: a
// particle funnel, a star field, a house, and a scripted camera.
//
// The core is independent of how the scene is drawn. A [World] advances a
// fixed-timestep tick and exposes a read-only [Snapshot] for renderers. The
// view and term packages draw snapshots with Ebitengine and tcell.
//
// # Quick start
//
//	world := tornado.NewWorld(tornado.DefaultWorldConfig())
//	for {
//		world.Update()
//		snap := world.Snapshot()
//		// ... draw snap ...
//	}
//
// Call [World.Advance] on the scene-advance input (the space bar in both
// renderers). The first advance pans the camera from the tornado to the
// house, the second releases the tornado and follows it until it reaches
// the house.
//
// # Components
//
// [TornadoSimulator] owns a bounded grain pool that spawns one grain per tick
// and recycles grains that rise past the funnel height. [SceneController] is
// the camera state machine; its pan is shaped by a [gween] easing function.
// [CollisionGate] moves the released tornado toward the house and latches the
// destroyed flag. [SceneClock] supplies the sway phase.
//
// World events (scene changes, release, destruction) are delivered to any
// [EventSink]; the ecs package republishes them into a [Donburi] world and
// the audio package plays them.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package tornado
