package tornado

// GrainSample is a grain's position, local to the tornado offset, with its
// height-derived color.
type GrainSample struct {
	Position Vec3
	Color    Color
}

// Snapshot is a read-only copy of everything a renderer needs after a tick.
type Snapshot struct {
	Tick        uint64
	Time        float64
	Scene       SceneID
	PanProgress float64

	Grains []GrainSample
	// TornadoOffset is added to every grain position to place it in the world.
	TornadoOffset Vec3
	Stars         []Vec3

	Camera    Camera
	House     HouseState
	Destroyed bool

	Ground     Ground
	ClearColor Color
}

// GrainWorld returns the world-space position of grain i.
func (s *Snapshot) GrainWorld(i int) Vec3 {
	return s.Grains[i].Position.Add(s.TornadoOffset)
}

// Snapshot copies the post-tick state. The result shares nothing mutable with
// the world.
func (w *World) Snapshot() Snapshot {
	grains := w.sim.Grains()
	samples := make([]GrainSample, len(grains))
	for i, g := range grains {
		samples[i] = GrainSample{Position: g.Position, Color: w.sim.GrainColor(g.Position.Y)}
	}

	return Snapshot{
		Tick:          w.clock.Ticks(),
		Time:          w.clock.Time(),
		Scene:         w.controller.Scene(),
		PanProgress:   w.controller.PanProgress(),
		Grains:        samples,
		TornadoOffset: Vec3{X: w.tornado.Position.X, Z: w.tornado.Position.Z},
		Stars:         append([]Vec3(nil), w.stars.Stars()...),
		Camera:        w.controller.Camera(),
		House:         w.house,
		Destroyed:     w.gate.Destroyed(),
		Ground:        DefaultGround,
		ClearColor:    ClearColor,
	}
}
