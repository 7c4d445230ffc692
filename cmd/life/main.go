//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"dull-life/internal/app"
	"dull-life/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	grid, err := cfg.Grid()
	if err != nil {
		log.Fatalf("building initial grid: %v", err)
	}
	world, err := sim.New(cfg.Engine, grid)
	if err != nil {
		log.Fatalf("constructing world: %v", err)
	}

	runner := sim.NewRunner(world)
	game := app.New(cfg, runner)
	rows, cols := runner.Size()

	ebiten.SetWindowTitle("dull-life — " + cfg.Engine)
	ebiten.SetWindowSize(cols*cfg.Scale, rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
