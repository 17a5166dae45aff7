package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/phanxgames/tornado"
)

func TestWindStreamsInRange(t *testing.T) {
	w := NewWind(beep.SampleRate(44100), 1, 1)
	samples := make([][2]float64, 4096)
	n, ok := w.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, len(samples))
	}
	nonZero := false
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Fatalf("sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Fatalf("sample %d not mono", i)
		}
		if samples[i][0] != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Error("wind produced silence at full intensity")
	}
	if w.Err() != nil {
		t.Errorf("Err = %v", w.Err())
	}
}

func TestWindSilentAtZero(t *testing.T) {
	w := NewWind(beep.SampleRate(44100), 0, 1)
	samples := make([][2]float64, 512)
	w.Stream(samples)
	for i, s := range samples {
		if s[0] != 0 {
			t.Fatalf("sample %d = %f, want silence", i, s[0])
		}
	}
}

func TestWindGlidesToTarget(t *testing.T) {
	rate := beep.SampleRate(1000)
	w := NewWind(rate, 0, 1)
	w.SetIntensity(1)

	samples := make([][2]float64, 100)
	w.Stream(samples)
	mid := w.Intensity()
	if mid <= 0 || mid >= 1 {
		t.Errorf("after 0.1s intensity = %v, want between 0 and 1", mid)
	}

	samples = make([][2]float64, 1000)
	w.Stream(samples)
	if w.Intensity() != 1 {
		t.Errorf("after 1.1s intensity = %v, want 1", w.Intensity())
	}
}

func TestWindClampsIntensity(t *testing.T) {
	w := NewWind(beep.SampleRate(1000), 3, 1)
	if w.Intensity() != 1 {
		t.Errorf("intensity = %v, want clamped to 1", w.Intensity())
	}
	w.SetIntensity(-2)
	if w.target != 0 {
		t.Errorf("target = %v, want clamped to 0", w.target)
	}
}

func TestCrashIsFinite(t *testing.T) {
	rate := beep.SampleRate(8000)
	crash := NewCrash(rate, 3)
	total := 0
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := crash.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := rate.N(crashDuration); total != want {
		t.Errorf("crash streamed %d samples, want %d", total, want)
	}
	if n, ok := crash.Stream(buf); n != 0 || ok {
		t.Errorf("drained crash Stream = (%d, %v), want (0, false)", n, ok)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	dc := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	env := newEnvelope(dc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)
	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("n = %d, want 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 at attack start", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain sample = %f, want 1", buf[50][0])
	}
	if buf[99][0] <= 0 || buf[99][0] >= 0.1 {
		t.Errorf("last sample = %f, want near 0", buf[99][0])
	}
}

type fakePlayer struct {
	initErr error
	played  []beep.Streamer
	locks   int
}

func (p *fakePlayer) Init(beep.SampleRate) error { return p.initErr }
func (p *fakePlayer) Play(s beep.Streamer)       { p.played = append(p.played, s) }
func (p *fakePlayer) Lock()                      { p.locks++ }
func (p *fakePlayer) Unlock()                    {}

func TestManagerStart(t *testing.T) {
	p := &fakePlayer{}
	m := NewManagerWithPlayer(Config{SampleRate: 22050, Volume: 0.5}, p, nil)
	if err := m.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := m.Start(); err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if len(p.played) != 1 {
		t.Errorf("played %d streamers, want 1 mixer", len(p.played))
	}
	m.Stop()
}

func TestManagerStartError(t *testing.T) {
	p := &fakePlayer{initErr: errors.New("no device")}
	m := NewManagerWithPlayer(Config{}, p, nil)
	if err := m.Start(); err == nil {
		t.Error("expected init error")
	}
}

func TestManagerReactsToEvents(t *testing.T) {
	p := &fakePlayer{}
	m := NewManagerWithPlayer(Config{Volume: 1}, p, nil)

	if m.WindTarget() != calmIntensity {
		t.Errorf("initial wind = %v, want %v", m.WindTarget(), calmIntensity)
	}
	m.EmitEvent(tornado.Event{Type: tornado.EventSceneChanged, Scene: tornado.SceneHouse})
	if m.WindTarget() != panIntensity {
		t.Errorf("pan wind = %v, want %v", m.WindTarget(), panIntensity)
	}
	m.EmitEvent(tornado.Event{Type: tornado.EventTornadoReleased})
	if m.WindTarget() != releaseIntensity {
		t.Errorf("release wind = %v, want %v", m.WindTarget(), releaseIntensity)
	}
	m.EmitEvent(tornado.Event{Type: tornado.EventHouseDestroyed, Tick: 750})
	if m.Crashes() != 1 {
		t.Errorf("crashes = %d, want 1", m.Crashes())
	}
	if m.mixer.Len() != 2 {
		t.Errorf("mixer holds %d streamers, want wind + crash", m.mixer.Len())
	}
}
