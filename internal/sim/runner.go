package sim

import "dull-life/pkg/life"

// Runner owns a World and tracks the generation count. It also maintains a
// flat 0/1 cell buffer in row-major order for the renderer, rebuilt on
// demand from the kernel's live-cell enumeration.
type Runner struct {
	world life.World
	rows  int
	cols  int
	gen   int
	cells []uint8
}

// NewRunner wraps a constructed World.
func NewRunner(w life.World) *Runner {
	rows, cols := w.Dimensions()
	return &Runner{world: w, rows: rows, cols: cols, cells: make([]uint8, rows*cols)}
}

// Step advances one generation.
func (r *Runner) Step() {
	r.world.Step()
	r.gen++
}

// Replace swaps in a fresh World and resets the generation counter. The new
// world must have the same dimensions as the old one.
func (r *Runner) Replace(w life.World) {
	r.world = w
	r.gen = 0
}

// World exposes the underlying kernel engine.
func (r *Runner) World() life.World { return r.world }

// Generation returns how many steps have run since construction or Replace.
func (r *Runner) Generation() int { return r.gen }

// Population returns the current number of living cells.
func (r *Runner) Population() int {
	return len(r.world.LivingCells())
}

// Size returns the grid shape.
func (r *Runner) Size() (rows, cols int) { return r.rows, r.cols }

// Cells rebuilds and returns the flat row-major 0/1 buffer of the current
// generation. The slice is reused between calls.
func (r *Runner) Cells() []uint8 {
	for i := range r.cells {
		r.cells[i] = 0
	}
	for _, c := range r.world.LivingCells() {
		r.cells[c.Row*r.cols+c.Col] = 1
	}
	return r.cells
}
