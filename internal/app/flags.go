package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Engine      string
	Pattern     string
	PatternFile string
	Rows        int
	Cols        int
	Density     float64
	Scale       int
	SPS         int
	Seed        int64
}

// NewConfig returns a Config populated with the classic defaults: a 120x240
// soup at 30% density, stepped five times per second.
func NewConfig() *Config {
	return &Config{
		Engine:  "sparse",
		Rows:    120,
		Cols:    240,
		Density: 0.3,
		Scale:   4,
		SPS:     5,
		Seed:    42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Engine, "engine", c.Engine, "simulation engine (dense or sparse)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "builtin pattern name (empty = random soup)")
	fs.StringVar(&c.PatternFile, "pattern-file", c.PatternFile, "YAML pattern file (overrides -pattern)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "soup grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "soup grid columns")
	fs.Float64Var(&c.Density, "density", c.Density, "soup live-cell density")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.SPS, "sps", c.SPS, "generation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup")
}
