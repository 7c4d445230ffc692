//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// StatsProvider is the subset of runner state the overlay displays.
type StatsProvider interface {
	Generation() int
	Population() int
}

// Overlay draws a small HUD with generation and population counts.
type Overlay struct {
	stats  StatsProvider
	engine string
	hidden bool
}

// NewOverlay constructs an overlay reading from the provided stats source.
func NewOverlay(stats StatsProvider, engine string) *Overlay {
	return &Overlay{stats: stats, engine: engine}
}

// Update toggles HUD visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// Draw renders the HUD text onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool) {
	if o.hidden {
		return
	}
	msg := fmt.Sprintf("engine %s  gen %d  pop %d", o.engine, o.stats.Generation(), o.stats.Population())
	if paused {
		msg += "  [paused]"
	}
	ebitenutil.DebugPrint(screen, msg)
}
