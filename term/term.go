// Package term renders the tornado scene to a terminal with tcell.
package term

import (
	"context"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/tornado"
)

// Canvas is the part of tcell.Screen the renderer draws on.
type Canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Size() (width, height int)
}

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

const (
	grainRune  = '*'
	starRune   = '.'
	houseRune  = '#'
	groundRune = '-'
)

// Renderer draws snapshots onto a character grid. Each cell keeps the nearest
// point projected onto it.
type Renderer struct {
	// FOV, Near and Far set the projection. Zero values use the defaults.
	FOV, Near, Far float64

	depth []float64
	w, h  int
}

// NewRenderer creates a Renderer with the default projection.
func NewRenderer() *Renderer {
	vp := tornado.DefaultViewport
	return &Renderer{FOV: vp.FOV, Near: vp.Near, Far: vp.Far}
}

// Viewport returns the projection for a w x h cell grid. The height is
// stretched by the cell aspect so circles stay round.
func (r *Renderer) Viewport(w, h int) tornado.Viewport {
	vp := tornado.DefaultViewport
	vp.Width = float64(w)
	vp.Height = float64(h) * cellAspect
	if r.FOV > 0 {
		vp.FOV = r.FOV
	}
	if r.Near > 0 {
		vp.Near = r.Near
	}
	if r.Far > 0 {
		vp.Far = r.Far
	}
	return vp
}

// Draw renders snap onto c. Back-to-front order is resolved per cell.
func (r *Renderer) Draw(c Canvas, snap *tornado.Snapshot) {
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return
	}
	r.reset(w, h)
	vp := r.Viewport(w, h)

	bg := tcell.StyleDefault.Background(rgb(snap.ClearColor))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetContent(x, y, ' ', nil, bg)
		}
	}

	groundStyle := bg.Foreground(rgb(snap.Ground.Color))
	for _, seg := range snap.Ground.Outline() {
		r.line(c, snap.Camera, vp, seg, groundRune, groundStyle)
	}

	starStyle := bg.Foreground(tcell.ColorWhite)
	for _, s := range snap.Stars {
		r.plot(c, snap.Camera, vp, s, starRune, starStyle)
	}

	if !snap.Destroyed {
		houseStyle := bg.Foreground(tcell.NewRGBColor(200, 180, 150))
		for _, seg := range snap.House.Wireframe() {
			r.line(c, snap.Camera, vp, seg, houseRune, houseStyle)
		}
	}

	for i := range snap.Grains {
		style := bg.Foreground(rgb(snap.Grains[i].Color))
		r.plot(c, snap.Camera, vp, snap.GrainWorld(i), grainRune, style)
	}
}

func (r *Renderer) reset(w, h int) {
	if r.w != w || r.h != h {
		r.depth = make([]float64, w*h)
		r.w, r.h = w, h
	}
	for i := range r.depth {
		r.depth[i] = math.Inf(1)
	}
}

// plot projects p and writes ch if it is nearer than what the cell holds.
func (r *Renderer) plot(c Canvas, cam tornado.Camera, vp tornado.Viewport, p tornado.Vec3, ch rune, style tcell.Style) {
	sx, sy, depth, ok := cam.Project(p, vp)
	if !ok || !vp.OnScreen(sx, sy) {
		return
	}
	r.set(c, int(sx), int(sy/cellAspect), depth, ch, style)
}

// line samples seg at cell resolution. Segments crossing the near plane are
// drawn only where they are in front of it.
func (r *Renderer) line(c Canvas, cam tornado.Camera, vp tornado.Viewport, seg tornado.Segment, ch rune, style tcell.Style) {
	ax, ay, _, aok := cam.Project(seg.A, vp)
	bx, by, _, bok := cam.Project(seg.B, vp)
	steps := 64
	if aok && bok {
		span := math.Max(math.Abs(bx-ax), math.Abs(by-ay)/cellAspect)
		steps = int(math.Min(512, math.Max(1, math.Ceil(span))))
	}
	for i := 0; i <= steps; i++ {
		p := seg.A.Lerp(seg.B, float64(i)/float64(steps))
		r.plot(c, cam, vp, p, ch, style)
	}
}

func (r *Renderer) set(c Canvas, x, y int, depth float64, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return
	}
	i := y*r.w + x
	if depth >= r.depth[i] {
		return
	}
	r.depth[i] = depth
	c.SetContent(x, y, ch, nil, style)
}

func rgb(c tornado.Color) tcell.Color {
	to := func(v float64) int32 {
		return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return tcell.NewRGBColor(to(c.R), to(c.G), to(c.B))
}

// Screen is the subset of tcell.Screen used by Run.
type Screen interface {
	Canvas
	PollEvent() tcell.Event
	Show()
}

// Run drives w at the given tick interval and draws every tick until ctx is
// cancelled or the user quits. Space advances the scene; q, Esc and Ctrl-C
// quit. The caller owns screen initialization and Fini.
func Run(ctx context.Context, w *tornado.World, screen Screen, tick time.Duration, log *zap.Logger) error {
	if tick <= 0 {
		tick = 16 * time.Millisecond
	}
	if log == nil {
		log = zap.NewNop()
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	r := NewRenderer()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !handleEvent(w, ev) {
				log.Info("quit requested", zap.Uint64("tick", w.Clock().Ticks()))
				return nil
			}

		case <-ticker.C:
			w.Update()
			snap := w.Snapshot()
			r.Draw(screen, &snap)
			screen.Show()
		}
	}
}

// handleEvent applies a key press and reports whether to keep running.
func handleEvent(w *tornado.World, ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q', 'Q':
			return false
		case ' ':
			w.Advance()
		}
	}
	return true
}
