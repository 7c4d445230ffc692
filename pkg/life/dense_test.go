package life

import "testing"

func denseGrid(t *testing.T, grid Grid) *Dense {
	t.Helper()
	w, err := NewDense(grid)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	return w
}

func TestDenseUnderpopulationDies(t *testing.T) {
	w := denseGrid(t, Grid{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	w.Step()
	if got := w.LivingCells(); len(got) != 0 {
		t.Fatalf("lonely cell survived: %v", got)
	}
}

func TestDenseBirthOnExactlyThree(t *testing.T) {
	w := denseGrid(t, Grid{
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
	})
	w.Step()
	assertLiveSet(t, w, []Cell{{2, 1}, {2, 2}, {2, 3}})
}

func TestDenseOverpopulationDies(t *testing.T) {
	w := denseGrid(t, Grid{
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
	})
	w.Step()
	// The center had four live neighbors and dies; each arm survives and
	// the diagonal gaps are born.
	assertLiveSet(t, w, []Cell{
		{1, 1}, {1, 2}, {1, 3},
		{2, 1}, {2, 3},
		{3, 1}, {3, 2}, {3, 3},
	})
}

func TestDenseConstructionMirrorsInput(t *testing.T) {
	grid := Grid{
		{1, 1, 1},
		{1, 1, 1},
	}
	w := denseGrid(t, grid)
	for row := range grid {
		for col := range grid[row] {
			if !w.IsLive(row, col) {
				t.Fatalf("IsLive(%d,%d) = false for all-live input", row, col)
			}
		}
	}
	if w.Population() != 6 {
		t.Fatalf("Population() = %d, want 6", w.Population())
	}
}
