// Package life implements a two-state toroidal cellular automaton with the
// classic birth/survival rules. Two engines share one contract: a dense
// double-buffered grid scan and a sparse live-set that only visits cells
// able to change.
package life

// Grid is a row-major snapshot of cell states, 0 dead and 1 alive. It is the
// construction input for both engines; validation rejects anything else.
type Grid [][]uint8

// Cell identifies one grid position.
type Cell struct {
	Row int
	Col int
}

// World is the contract shared by the dense and sparse engines. A World is
// built once from a validated Grid, advanced only through Step, and read
// through the accessors. Step replaces the whole generation at once; callers
// driving a World from multiple goroutines must serialize access themselves.
type World interface {
	// Step advances the automaton by exactly one generation.
	Step()
	// IsLive reports whether the cell at (row, col) is alive. Coordinates
	// must already be in range.
	IsLive(row, col int) bool
	// LivingCells returns every live coordinate in unspecified order.
	LivingCells() []Cell
	// Dimensions returns the fixed grid shape from construction.
	Dimensions() (rows, cols int)
}
