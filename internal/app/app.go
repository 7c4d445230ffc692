//go:build ebiten

package app

import (
	"image/color"
	"time"

	"dull-life/internal/render"
	"dull-life/internal/sim"
	"dull-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a simulation runner to the ebiten.Game interface. Generation
// cadence is gated by a fixed-step timer so the display frame rate and the
// automaton step rate stay independent.
type Game struct {
	cfg     *Config
	runner  *sim.Runner
	pacer   *sim.FixedStep
	painter *render.GridPainter
	overlay *ui.Overlay

	liveColor color.Color
	deadColor color.Color

	paused   bool
	tickOnce bool
}

// New constructs a Game around an already-validated runner.
func New(cfg *Config, runner *sim.Runner) *Game {
	rows, cols := runner.Size()
	return &Game{
		cfg:       cfg,
		runner:    runner,
		pacer:     sim.NewFixedStep(cfg.SPS),
		painter:   render.NewGridPainter(cols, rows),
		overlay:   ui.NewOverlay(runner, cfg.Engine),
		liveColor: color.RGBA{R: 0, G: 200, B: 80, A: 255},
		deadColor: color.RGBA{R: 60, G: 0, B: 90, A: 255},
	}
}

// reseed rebuilds the world from the configured source under a new seed.
func (g *Game) reseed(seed int64) error {
	grid, err := g.cfg.ReseededGrid(seed)
	if err != nil {
		return err
	}
	world, err := sim.New(g.cfg.Engine, grid)
	if err != nil {
		return err
	}
	g.runner.Replace(world)
	g.tickOnce = false
	return nil
}

// Update handles per-frame input and advances the simulation on schedule.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reseed(g.cfg.Seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.reseed(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	g.overlay.Update()

	if g.tickOnce {
		g.runner.Step()
		g.tickOnce = false
		return nil
	}
	if !g.paused && g.pacer.ShouldStep() {
		g.runner.Step()
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.runner.Cells(), g.liveColor, g.deadColor, g.cfg.Scale)
	g.overlay.Draw(screen, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	rows, cols := g.runner.Size()
	return cols * g.cfg.Scale, rows * g.cfg.Scale
}
