package tornado

import "math"

// Grain is one particle of the funnel. Position is local to the tornado's
// world offset; Angle is the grain's polar angle around the centerline.
type Grain struct {
	Position Vec3
	Angle    float64
}

// FunnelConfig controls the shape and motion of the tornado funnel.
type FunnelConfig struct {
	// MaxGrains is the pool size. Spawning is silently skipped when full.
	MaxGrains int
	// Height is the funnel's maximum height. Grains rising past it are recycled.
	Height float64
	// SwayAmount is how far the centerline sways from its base wave.
	SwayAmount float64
	// SwaySpeed is how fast the sway phase advances with global time.
	SwaySpeed float64
	// MinRadius is the funnel radius at height 0.
	MinRadius float64
	// MaxRadius is the funnel radius at Height.
	MaxRadius float64
	// Spin is the angle in radians each grain advances per tick.
	Spin float64
	// Rise is the base height gained per tick.
	Rise float64
	// RiseJitter bounds the per-grain random rise added on top of Rise.
	RiseJitter float64
}

// DefaultFunnelConfig returns the funnel used by the scene.
func DefaultFunnelConfig() FunnelConfig {
	return FunnelConfig{
		MaxGrains:  4000,
		Height:     15,
		SwayAmount: 1,
		SwaySpeed:  0.5,
		MinRadius:  0.2,
		MaxRadius:  2.2,
		Spin:       1,
		Rise:       0.03,
		RiseJitter: 0.005,
	}
}

// TornadoSimulator owns a bounded grain pool and advances it along a
// swaying funnel each tick.
type TornadoSimulator struct {
	config FunnelConfig
	grains []Grain
	rng    RandomSource
}

// NewTornadoSimulator creates a simulator with a preallocated pool. A nil rng
// selects an independently seeded source.
func NewTornadoSimulator(cfg FunnelConfig, rng RandomSource) *TornadoSimulator {
	def := DefaultFunnelConfig()
	if cfg.MaxGrains <= 0 {
		cfg.MaxGrains = def.MaxGrains
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if rng == nil {
		rng = NewRandom()
	}
	return &TornadoSimulator{
		config: cfg,
		grains: make([]Grain, 0, cfg.MaxGrains),
		rng:    rng,
	}
}

// Config returns the simulator's funnel configuration.
func (s *TornadoSimulator) Config() FunnelConfig {
	return s.config
}

// Len returns the number of grains in the pool.
func (s *TornadoSimulator) Len() int {
	return len(s.grains)
}

// Cap returns the pool capacity.
func (s *TornadoSimulator) Cap() int {
	return s.config.MaxGrains
}

// Full reports whether the pool has reached capacity.
func (s *TornadoSimulator) Full() bool {
	return len(s.grains) >= s.config.MaxGrains
}

// Grains returns the grain pool. The returned slice MUST NOT be mutated.
func (s *TornadoSimulator) Grains() []Grain {
	return s.grains
}

// spawn appends one grain at height 0 if the pool has room.
func (s *TornadoSimulator) spawn() {
	if len(s.grains) >= s.config.MaxGrains {
		return
	}
	s.grains = append(s.grains, Grain{Angle: s.rng.Angle()})
}

// Centerline returns the funnel's center on the ground plane at height h and
// global time t. The z sway runs a quarter turn out of phase with x so the
// motion is not a perfect circle.
func (s *TornadoSimulator) Centerline(h, t float64) (cx, cz float64) {
	baseX := math.Sin(h*0.3) * 0.5
	baseZ := math.Cos(h*0.3) * 0.5

	phase := h*0.2 + t*s.config.SwaySpeed
	cx = baseX + math.Sin(phase)*s.config.SwayAmount
	cz = baseZ + math.Cos(phase+math.Pi/2)*s.config.SwayAmount
	return cx, cz
}

// FunnelRadius returns the funnel radius at height h, widening linearly from
// MinRadius at the ground to MaxRadius at Height.
func (s *TornadoSimulator) FunnelRadius(h float64) float64 {
	return s.config.MinRadius + (h/s.config.Height)*(s.config.MaxRadius-s.config.MinRadius)
}

// Update spawns a grain and advances every grain one tick at global time t.
func (s *TornadoSimulator) Update(t float64) {
	s.spawn()

	cfg := &s.config
	for i := range s.grains {
		g := &s.grains[i]

		cx, cz := s.Centerline(g.Position.Y, t)
		g.Angle += cfg.Spin

		r := s.FunnelRadius(g.Position.Y)
		g.Position.X = cx + math.Cos(g.Angle)*r
		g.Position.Z = cz + math.Sin(g.Angle)*r

		g.Position.Y += cfg.Rise + s.rng.Range(0, cfg.RiseJitter)*cfg.RiseJitter

		if g.Position.Y > cfg.Height {
			g.Position.Y = 0
			g.Angle = s.rng.Angle()
		}
	}
}

// GrainColor returns the color of a grain at height h: sandy at the ground,
// darkening toward the top of the funnel.
func (s *TornadoSimulator) GrainColor(h float64) Color {
	t := h / s.config.Height
	return Color{
		R: 0.8 - 0.3*t,
		G: 0.7 - 0.3*t,
		B: 0.5 - 0.2*t,
	}
}
