package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"dull-life/internal/app"
	"dull-life/internal/census"
	"dull-life/internal/sim"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	generations := flag.Int("generations", 200, "number of generations to simulate")
	logEvery := flag.Int("log-every", 20, "log a census record every N generations (0 = final only)")
	csvPath := flag.String("csv", "", "write the per-generation census to this CSV file")
	paced := flag.Bool("paced", false, "advance at the configured -sps rate instead of flat out")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	grid, err := cfg.Grid()
	if err != nil {
		slog.Error("failed to build initial grid", "error", err)
		os.Exit(1)
	}
	world, err := sim.New(cfg.Engine, grid)
	if err != nil {
		slog.Error("failed to construct world", "error", err)
		os.Exit(1)
	}

	runner := sim.NewRunner(world)
	rows, cols := runner.Size()
	collector := census.NewCollector(rows, cols)

	slog.Info("starting run",
		"engine", cfg.Engine,
		"rows", rows,
		"cols", cols,
		"seed", cfg.Seed,
		"generations", *generations,
	)

	var ticker *time.Ticker
	if *paced {
		sps := cfg.SPS
		if sps <= 0 {
			sps = sim.DefaultSPS
		}
		ticker = time.NewTicker(time.Second / time.Duration(sps))
		defer ticker.Stop()
	}

	collector.Observe(0, world.LivingCells())
	for gen := 1; gen <= *generations; gen++ {
		if ticker != nil {
			<-ticker.C
		}
		runner.Step()
		rec := collector.Observe(gen, world.LivingCells())
		if *logEvery > 0 && gen%*logEvery == 0 {
			slog.Info("census",
				"generation", rec.Generation,
				"population", rec.Population,
				"births", rec.Births,
				"deaths", rec.Deaths,
			)
		}
	}

	summary := collector.Summary()
	slog.Info("run complete",
		"generations", summary.Generations,
		"peak_population", summary.PeakPopulation,
		"final_population", summary.FinalPopulation,
		"mean_live_fraction", summary.MeanLiveFraction,
		"std_live_fraction", summary.StdLiveFraction,
	)

	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			slog.Error("failed to create census file", "path", *csvPath, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := collector.WriteCSV(f); err != nil {
			slog.Error("failed to write census", "path", *csvPath, "error", err)
			os.Exit(1)
		}
		slog.Info("census written", "path", *csvPath)
	}
}
