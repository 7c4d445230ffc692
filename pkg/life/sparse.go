package life

// Sparse tracks only living cells, keyed by their packed linear index. Each
// step visits live cells and their eight neighbors instead of the whole
// grid, so the cost scales with the population rather than rows*cols.
//
// The map stores the full Cell next to its key; nothing ever reconstructs
// coordinates from a key alone.
type Sparse struct {
	rows, cols int
	live       map[int64]Cell
}

// candidate accumulates, for one dead cell bordering the live set, how many
// live neighbors have been seen so far during the current generation pass.
type candidate struct {
	cell  Cell
	count int
}

// NewSparse validates grid and returns a sparse engine holding its live cells.
func NewSparse(grid Grid) (*Sparse, error) {
	rows, cols, err := validate(grid)
	if err != nil {
		return nil, err
	}
	s := &Sparse{rows: rows, cols: cols, live: make(map[int64]Cell)}
	for r, row := range grid {
		for c, v := range row {
			if v == 1 {
				s.live[packIndex(r, c, cols)] = Cell{Row: r, Col: c}
			}
		}
	}
	return s, nil
}

// Step advances the simulation by one generation. Two passes over a snapshot
// of the current live set: survivors keep cells with 2 or 3 live neighbors,
// then births add every accumulated dead candidate that reached exactly 3.
// The rule only ever reads the previous generation; the new set replaces the
// old one in a single swap at the end.
func (s *Sparse) Step() {
	next := make(map[int64]Cell, len(s.live))
	candidates := make(map[int64]candidate)

	for key, cell := range s.live {
		if n := s.tallyNeighbors(cell, candidates); n == 2 || n == 3 {
			next[key] = cell
		}
	}
	for key, cand := range candidates {
		if cand.count == 3 {
			next[key] = cand.cell
		}
	}

	s.live = next
}

// tallyNeighbors counts the live neighbors of one live cell. Each dead
// neighbor it passes over is charged one live neighbor in the shared
// candidate accumulator; after every live cell has been processed once, the
// accumulator holds the exact live-neighbor count of every dead cell that
// borders the population.
func (s *Sparse) tallyNeighbors(cell Cell, candidates map[int64]candidate) int {
	alive := 0
	for _, off := range neighborOffsets {
		r := wrap(cell.Row+off[0], s.rows)
		c := wrap(cell.Col+off[1], s.cols)
		key := packIndex(r, c, s.cols)
		if _, ok := s.live[key]; ok {
			alive++
			continue
		}
		cand := candidates[key]
		cand.cell = Cell{Row: r, Col: c}
		cand.count++
		candidates[key] = cand
	}
	return alive
}

// IsLive reports whether the cell at (row, col) is alive.
func (s *Sparse) IsLive(row, col int) bool {
	_, ok := s.live[packIndex(row, col, s.cols)]
	return ok
}

// LivingCells returns all live coordinates. Map iteration makes the order
// unspecified.
func (s *Sparse) LivingCells() []Cell {
	cells := make([]Cell, 0, len(s.live))
	for _, cell := range s.live {
		cells = append(cells, cell)
	}
	return cells
}

// Dimensions returns the grid shape fixed at construction.
func (s *Sparse) Dimensions() (rows, cols int) { return s.rows, s.cols }

// Population returns the number of living cells without allocating.
func (s *Sparse) Population() int { return len(s.live) }
