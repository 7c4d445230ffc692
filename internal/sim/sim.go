// Package sim wires the life kernel into the rest of the application: engine
// selection, generation bookkeeping, and step pacing.
package sim

import (
	"fmt"
	"sort"

	"dull-life/pkg/life"
)

// Factory builds a World from an initial grid.
type Factory func(life.Grid) (life.World, error)

var engines = map[string]Factory{
	"dense":  func(g life.Grid) (life.World, error) { return life.NewDense(g) },
	"sparse": func(g life.Grid) (life.World, error) { return life.NewSparse(g) },
}

// New constructs a World using the named engine.
func New(engine string, grid life.Grid) (life.World, error) {
	factory, ok := engines[engine]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q (have %v)", engine, EngineNames())
	}
	return factory(grid)
}

// EngineNames lists the available engines in stable order.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
