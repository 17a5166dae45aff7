package tornado

// StarFieldConfig sizes the box the star field is scattered through.
type StarFieldConfig struct {
	Count  int     `toml:"count" yaml:"count"`
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
	Depth  float64 `toml:"depth" yaml:"depth"`
}

// DefaultStarFieldConfig returns the sky used by the scene.
func DefaultStarFieldConfig() StarFieldConfig {
	return StarFieldConfig{Count: 200, Width: 100, Height: 60, Depth: 100}
}

// groundLift raises stars so none of them sit on the ground plane.
const groundLift = 0.7

// StarField is a static set of points generated once at construction.
type StarField struct {
	stars []Vec3
}

// NewStarField scatters cfg.Count stars. A nil rng selects an independently
// seeded source.
func NewStarField(cfg StarFieldConfig, rng RandomSource) *StarField {
	if rng == nil {
		rng = NewRandom()
	}
	if cfg.Count < 0 {
		cfg.Count = 0
	}
	f := &StarField{stars: make([]Vec3, 0, cfg.Count)}
	for i := 0; i < cfg.Count; i++ {
		x := rng.Range(-0.5, 0.5) * cfg.Width
		y := (groundLift + rng.Range(-0.5, 0.5)) * (cfg.Height - groundLift)
		z := rng.Range(-0.5, 0.5) * cfg.Depth
		f.stars = append(f.stars, Vec3{x, y, z})
	}
	return f
}

// Stars returns the star positions. The returned slice MUST NOT be mutated.
func (f *StarField) Stars() []Vec3 {
	return f.stars
}
