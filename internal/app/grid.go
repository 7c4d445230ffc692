package app

import (
	"dull-life/internal/pattern"
	"dull-life/pkg/life"
)

// Grid materializes the initial grid selected by the config: a pattern file
// when given, then a builtin pattern, then a random soup.
func (c *Config) Grid() (life.Grid, error) {
	switch {
	case c.PatternFile != "":
		return pattern.Load(c.PatternFile)
	case c.Pattern != "":
		return pattern.Builtin(c.Pattern)
	default:
		return pattern.Random(c.Rows, c.Cols, c.Density, c.Seed), nil
	}
}

// ReseededGrid returns the soup the config would produce under a different
// seed. Fixed patterns ignore the seed and reproduce themselves.
func (c *Config) ReseededGrid(seed int64) (life.Grid, error) {
	reseeded := *c
	reseeded.Seed = seed
	return reseeded.Grid()
}
