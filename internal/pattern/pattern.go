// Package pattern supplies initial grids for the simulation: built-in
// figures, YAML pattern files, and random soups. The kernel validates
// whatever comes out, so sources only need to produce a row-major grid.
package pattern

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"dull-life/pkg/core"
	"dull-life/pkg/life"
)

// DefaultDensity is the live fraction of a fresh random soup.
const DefaultDensity = 0.3

// File is the on-disk YAML form of a pattern. Cells are drawn with '.' for
// dead and '#' for alive, one string per row.
type File struct {
	Name  string   `yaml:"name"`
	Cells []string `yaml:"cells"`
}

// Load reads a YAML pattern file and converts it to a grid.
func Load(path string) (life.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pattern file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing pattern file: %w", err)
	}
	grid, err := parseCells(f.Cells)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", f.Name, err)
	}
	return grid, nil
}

// parseCells converts the drawn rows into a binary grid. Shape problems are
// left for kernel validation; only unknown runes are rejected here.
func parseCells(rows []string) (life.Grid, error) {
	grid := make(life.Grid, len(rows))
	for r, row := range rows {
		grid[r] = make([]uint8, len(row))
		for c, ch := range row {
			switch ch {
			case '.':
				grid[r][c] = 0
			case '#':
				grid[r][c] = 1
			default:
				return nil, fmt.Errorf("row %d: unknown cell rune %q", r, ch)
			}
		}
	}
	return grid, nil
}

var builtins = map[string][]string{
	"blinker": {
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	},
	"glider": {
		"........",
		"..#.....",
		"...#....",
		".###....",
		"........",
		"........",
		"........",
		"........",
	},
	"toad": {
		"......",
		"......",
		"..###.",
		".###..",
		"......",
		"......",
	},
	"block": {
		"....",
		".##.",
		".##.",
		"....",
	},
}

// Builtin returns a named built-in pattern grid.
func Builtin(name string) (life.Grid, error) {
	rows, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown builtin pattern %q", name)
	}
	return parseCells(rows)
}

// BuiltinNames lists the available built-in patterns.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Random builds a rows x cols soup where each cell is alive with
// probability density. The same seed always produces the same soup.
func Random(rows, cols int, density float64, seed int64) life.Grid {
	rng := core.NewRNG(seed)
	grid := make(life.Grid, rows)
	for r := range grid {
		grid[r] = make([]uint8, cols)
		for c := range grid[r] {
			if rng.Chance(density) {
				grid[r][c] = 1
			}
		}
	}
	return grid
}
