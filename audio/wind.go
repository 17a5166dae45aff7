// Package audio synthesizes the scene's wind and the house's collapse with beep.
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wind is an endless low-passed noise streamer with slow gusts. Its loudness
// follows the intensity set with SetIntensity.
type Wind struct {
	rng       *rand.Rand
	rate      beep.SampleRate
	cutoff    float64 // one-pole low-pass coefficient
	gustFreq  float64
	phase     float64
	last      float64
	intensity float64
	target    float64
}

// NewWind creates a wind streamer at the given sample rate and starting intensity.
func NewWind(rate beep.SampleRate, intensity float64, seed uint64) *Wind {
	intensity = clamp01(intensity)
	return &Wind{
		rng:       rand.New(rand.NewPCG(seed, seed+1)),
		rate:      rate,
		cutoff:    0.02,
		gustFreq:  0.15,
		intensity: intensity,
		target:    intensity,
	}
}

// SetIntensity sets the loudness the wind glides toward, in [0, 1].
func (w *Wind) SetIntensity(v float64) {
	w.target = clamp01(v)
}

// Intensity returns the current loudness.
func (w *Wind) Intensity() float64 {
	return w.intensity
}

func (w *Wind) Stream(samples [][2]float64) (n int, ok bool) {
	// Glide over roughly half a second so intensity changes do not click.
	glide := 1 / (0.5 * float64(w.rate))
	for i := range samples {
		switch {
		case w.intensity < w.target:
			w.intensity = math.Min(w.target, w.intensity+glide)
		case w.intensity > w.target:
			w.intensity = math.Max(w.target, w.intensity-glide)
		}

		white := w.rng.Float64()*2 - 1
		w.last += (white - w.last) * w.cutoff

		gust := 0.7 + 0.3*math.Sin(2*math.Pi*w.phase)
		w.phase += w.gustFreq / float64(w.rate)
		w.phase -= math.Floor(w.phase)

		// The low-pass leaves roughly a fifth of the noise amplitude.
		val := clamp(w.last*4*gust*w.intensity, -1, 1)
		samples[i][0] = val
		samples[i][1] = val
	}
	return len(samples), true
}

func (w *Wind) Err() error { return nil }

// envelope applies attack/release shaping to a stream and ends it after the
// total duration.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}
	n, _ = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, n > 0
}

func (e *envelope) Err() error { return e.streamer.Err() }

// rumble is a decaying low sine for the body of the crash.
type rumble struct {
	freq  float64
	phase float64
	rate  beep.SampleRate
}

func (r *rumble) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := math.Sin(2 * math.Pi * r.phase)
		samples[i][0] = v
		samples[i][1] = v
		r.phase += r.freq / float64(r.rate)
		r.phase -= math.Floor(r.phase)
	}
	return len(samples), true
}

func (r *rumble) Err() error { return nil }

// crashDuration is the length of the collapse sound.
const crashDuration = 1200 * time.Millisecond

// NewCrash returns the finite sound of the house collapsing: a burst of
// bright noise over a low rumble.
func NewCrash(rate beep.SampleRate, seed uint64) beep.Streamer {
	debris := NewWind(rate, 1, seed)
	debris.cutoff = 0.3
	debris.gustFreq = 6

	body := &rumble{freq: 55, rate: rate}

	return newEnvelope(
		beep.Mix(newVolume(debris, 0.7), newVolume(body, 0.5)),
		crashDuration, 5*time.Millisecond, 900*time.Millisecond, rate,
	)
}

// newVolume wraps s in a linear gain. Zero or negative gain is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
