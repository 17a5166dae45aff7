// Package view draws the tornado scene in a window with Ebitengine.
//
// The scene is projected in software with [tornado.Camera.Project] and drawn
// as 2D primitives: grains as small filled squares, stars as single pixels,
// and the ground and house as wireframes.
package view

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/phanxgames/tornado"
)

const grainSize = 3.0

// RunConfig holds window options for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowHUD       bool
	// Viewport overrides the projection. Width and Height always follow
	// the window.
	Viewport tornado.Viewport
}

// Game adapts a tornado.World to ebiten.Game. Each Update advances the world
// one tick.
type Game struct {
	world *tornado.World
	cfg   RunConfig
	vp    tornado.Viewport
	log   *zap.Logger

	snap     tornado.Snapshot
	hudTimer float64
	hudText  string
}

// NewGame creates a Game for w.
func NewGame(w *tornado.World, cfg RunConfig, log *zap.Logger) *Game {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = int(tornado.DefaultViewport.Width), int(tornado.DefaultViewport.Height)
	}
	if log == nil {
		log = zap.NewNop()
	}
	vp := cfg.Viewport
	if vp.FOV <= 0 {
		vp = tornado.DefaultViewport
	}
	vp.Width, vp.Height = float64(cfg.Width), float64(cfg.Height)
	return &Game{world: w, cfg: cfg, vp: vp, log: log, snap: w.Snapshot()}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.Info("quit requested", zap.Uint64("tick", g.world.Clock().Ticks()))
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.world.Advance()
	}
	g.world.Update()
	g.snap = g.world.Snapshot()

	g.hudTimer += g.world.Clock().Delta()
	if g.hudTimer >= 0.5 || g.hudText == "" {
		g.hudTimer = 0
		g.hudText = hudText(&g.snap, ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	s := &g.snap
	screen.Fill(toRGBA(s.ClearColor))

	ground := toRGBA(s.Ground.Color)
	for _, seg := range s.Ground.Outline() {
		g.strokeSegment(screen, s.Camera, seg, ground)
	}

	for _, p := range s.Stars {
		if x, y, ok := g.project(s.Camera, p); ok {
			vector.DrawFilledRect(screen, x, y, 1, 1, color.White, false)
		}
	}

	if !s.Destroyed {
		wall := color.RGBA{200, 180, 150, 255}
		for _, seg := range s.House.Wireframe() {
			g.strokeSegment(screen, s.Camera, seg, wall)
		}
	}

	for i := range s.Grains {
		x, y, ok := g.project(s.Camera, s.GrainWorld(i))
		if !ok {
			continue
		}
		vector.DrawFilledRect(screen, x-grainSize/2, y-grainSize/2, grainSize, grainSize, toRGBA(s.Grains[i].Color), false)
	}

	if g.cfg.ShowHUD {
		ebitenutil.DebugPrint(screen, g.hudText)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func (g *Game) project(cam tornado.Camera, p tornado.Vec3) (x, y float32, ok bool) {
	sx, sy, _, ok := cam.Project(p, g.vp)
	if !ok || !g.vp.OnScreen(sx, sy) {
		return 0, 0, false
	}
	return float32(sx), float32(sy), true
}

func (g *Game) strokeSegment(screen *ebiten.Image, cam tornado.Camera, seg tornado.Segment, clr color.Color) {
	a, b, ok := clipSegment(cam, g.vp, seg)
	if !ok {
		return
	}
	vector.StrokeLine(screen, a[0], a[1], b[0], b[1], 1, clr, true)
}

// clipSegment clips seg against the near plane and returns its projected
// endpoints.
func clipSegment(cam tornado.Camera, vp tornado.Viewport, seg tornado.Segment) (a, b [2]float32, ok bool) {
	forward := cam.Target.Sub(cam.Eye).Normalize()
	da := seg.A.Sub(cam.Eye).Dot(forward)
	db := seg.B.Sub(cam.Eye).Dot(forward)
	near := vp.Near + 1e-6
	if da < near && db < near {
		return a, b, false
	}
	pa, pb := seg.A, seg.B
	if da < near {
		pa = seg.A.Lerp(seg.B, (near-da)/(db-da))
	} else if db < near {
		pb = seg.B.Lerp(seg.A, (near-db)/(da-db))
	}

	// Depth culling beyond Far is left to the renderer's overdraw.
	far := vp
	far.Far = 0
	ax, ay, _, aok := cam.Project(pa, far)
	bx, by, _, bok := cam.Project(pb, far)
	if !aok || !bok {
		return a, b, false
	}
	return [2]float32{float32(ax), float32(ay)}, [2]float32{float32(bx), float32(by)}, true
}

func toRGBA(c tornado.Color) color.RGBA {
	to := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return color.RGBA{to(c.R), to(c.G), to(c.B), 255}
}

func hudText(s *tornado.Snapshot, fps, tps float64) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nScene: %s\nGrains: %d\nSpace: next scene  Esc: quit",
		fps, tps, s.Scene, len(s.Grains))
}

// Run opens a window and runs w until the window is closed or Esc is pressed.
func Run(w *tornado.World, cfg RunConfig, log *zap.Logger) error {
	g := NewGame(w, cfg, log)
	title := cfg.Title
	if title == "" {
		title = "Tornado"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetTPS(int(math.Round(1 / w.Clock().Delta())))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
