package life

// Dense holds the full grid as a flat row-major buffer and rebuilds it every
// generation with a double-buffered scan of all cells. It is the simple
// reference engine; Sparse must agree with it on every input.
type Dense struct {
	rows, cols int
	cur        []uint8
	nxt        []uint8
}

// NewDense validates grid and returns a dense engine mirroring its cells.
func NewDense(grid Grid) (*Dense, error) {
	rows, cols, err := validate(grid)
	if err != nil {
		return nil, err
	}
	d := &Dense{
		rows: rows,
		cols: cols,
		cur:  make([]uint8, rows*cols),
		nxt:  make([]uint8, rows*cols),
	}
	for r, row := range grid {
		copy(d.cur[r*cols:(r+1)*cols], row)
	}
	return d, nil
}

// Step advances the simulation by one generation over every cell.
func (d *Dense) Step() {
	for row := 0; row < d.rows; row++ {
		for col := 0; col < d.cols; col++ {
			neighbors := 0
			for _, off := range neighborOffsets {
				r := wrap(row+off[0], d.rows)
				c := wrap(col+off[1], d.cols)
				neighbors += int(d.cur[r*d.cols+c])
			}
			idx := row*d.cols + col
			alive := d.cur[idx] == 1
			d.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				d.nxt[idx] = 1
			}
		}
	}
	d.cur, d.nxt = d.nxt, d.cur
}

// IsLive reports whether the cell at (row, col) is alive.
func (d *Dense) IsLive(row, col int) bool {
	return d.cur[row*d.cols+col] == 1
}

// LivingCells returns all live coordinates in row-major order.
func (d *Dense) LivingCells() []Cell {
	cells := make([]Cell, 0, len(d.cur)/4)
	for row := 0; row < d.rows; row++ {
		for col := 0; col < d.cols; col++ {
			if d.cur[row*d.cols+col] == 1 {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

// Dimensions returns the grid shape fixed at construction.
func (d *Dense) Dimensions() (rows, cols int) { return d.rows, d.cols }

// Population returns the number of living cells.
func (d *Dense) Population() int {
	n := 0
	for _, v := range d.cur {
		n += int(v)
	}
	return n
}
