package life

import "errors"

const (
	minRows = 2
	minCols = 2
)

// Construction errors. A 1-wide or 1-tall torus would make a cell its own
// neighbor, so both dimensions must be at least 2.
var (
	ErrTooFewRows       = errors.New("grid must have at least 2 rows")
	ErrTooFewColumns    = errors.New("grid rows must have at least 2 columns")
	ErrInconsistentGrid = errors.New("grid rows must all have the same length and contain only 0 or 1")
)

// validate checks a construction grid and returns its shape. Checks run in
// order and stop at the first failure: row count, column count, then row
// consistency and cell values.
func validate(grid Grid) (rows, cols int, err error) {
	rows = len(grid)
	if rows < minRows {
		return 0, 0, ErrTooFewRows
	}
	cols = len(grid[0])
	if cols < minCols {
		return 0, 0, ErrTooFewColumns
	}
	for _, row := range grid {
		if len(row) != cols {
			return 0, 0, ErrInconsistentGrid
		}
		for _, cell := range row {
			if cell > 1 {
				return 0, 0, ErrInconsistentGrid
			}
		}
	}
	return rows, cols, nil
}
