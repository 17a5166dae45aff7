package tornado

import (
	"math"
	"math/rand/v2"
)

// RandomSource produces uniform values for the particle model.
type RandomSource interface {
	// Range returns a value uniformly distributed on [min, max).
	Range(min, max float64) float64
	// Angle returns Range(0, 2π).
	Angle() float64
}

// pcgSource is a RandomSource backed by its own PCG stream.
type pcgSource struct {
	r *rand.Rand
}

// NewRandom returns a RandomSource with its own independently seeded stream.
// Two sources created by NewRandom never share state.
func NewRandom() RandomSource {
	return &pcgSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededRandom returns a reproducible RandomSource.
func NewSeededRandom(seed uint64) RandomSource {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *pcgSource) Range(min, max float64) float64 {
	if min == max {
		return min
	}
	return min + s.r.Float64()*(max-min)
}

func (s *pcgSource) Angle() float64 {
	return s.Range(0, 2*math.Pi)
}

// SequenceSource replays a fixed list of unit values in [0, 1), cycling when
// exhausted. Range maps each value to min + v*(max-min).
type SequenceSource struct {
	values []float64
	next   int
}

// NewSequenceSource returns a SequenceSource over values. With no values
// every draw yields min.
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: append([]float64(nil), values...)}
}

// Range returns the next value of the sequence scaled to [min, max).
func (s *SequenceSource) Range(min, max float64) float64 {
	if len(s.values) == 0 {
		return min
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return min + v*(max-min)
}

// Angle returns Range(0, 2π).
func (s *SequenceSource) Angle() float64 {
	return s.Range(0, 2*math.Pi)
}

// Range is a general-purpose min/max range.
type Range struct {
	Min float64 `toml:"min" yaml:"min"`
	Max float64 `toml:"max" yaml:"max"`
}

// Sample draws a value in [Min, Max) from src.
func (r Range) Sample(src RandomSource) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return src.Range(r.Min, r.Max)
}
