//go:build ebiten

package app

import (
	"time"

	"aoc-automata/internal/core"
	"aoc-automata/internal/render"
	"aoc-automata/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	stepper *core.FixedStep

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H, render.PaletteFor(sim.Name())),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		stepper:  core.NewFixedStep(cfg.GPS),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
	g.hud.Update()
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if (!g.paused && g.stepper.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.hud.Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	h := s.H * g.scale
	if hh := g.hud.Height(); hh > h {
		h = hh
	}
	return s.W*g.scale + g.hudWidth, h
}
