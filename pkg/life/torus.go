package life

// wrap reduces v to [0, n) on the torus. v is never more than one step
// outside the range, so a single correction suffices.
func wrap(v, n int) int {
	if v < 0 {
		return v + n
	}
	if v >= n {
		return v - n
	}
	return v
}

// packIndex maps an in-range (row, col) to its linear index. The mapping is
// a bijection for any grid shape, so two distinct cells never share a key.
func packIndex(row, col, cols int) int64 {
	return int64(row)*int64(cols) + int64(col)
}

// neighborOffsets enumerates the eight surrounding positions relative to a
// center cell.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
