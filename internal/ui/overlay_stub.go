//go:build !ebiten

package ui

// StatsProvider mirrors the GUI build's interface shape.
type StatsProvider interface {
	Generation() int
	Population() int
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(StatsProvider, string) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, bool) {}
