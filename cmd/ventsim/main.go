// Command ventsim runs the ocean-world ecosystem simulation headless and
// reports on it: structured event/stats logging, per-cycle CSV telemetry,
// and a final state snapshot. It is a pure observer of the engine.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/vent/config"
	"github.com/pthm-cable/vent/sim"
	"github.com/pthm-cable/vent/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = config seed, then time-based)")
	cycles := flag.Int("cycles", 0, "Cycles to run (0 = config default)")
	logEvents := flag.Bool("log-events", false, "Log every forage and predation event")
	outputDir := flag.String("output-dir", "", "Output directory for CSV telemetry and config snapshot")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for the final snapshot file")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	runSeed := *seed
	if runSeed == 0 {
		runSeed = cfg.Run.Seed
	}
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}

	runCycles := *cycles
	if runCycles == 0 {
		runCycles = cfg.Run.Cycles
	}

	engine, err := sim.New(cfg, runSeed)
	if err != nil {
		slog.Error("failed to build world", "error", err)
		os.Exit(1)
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer output.Close()

	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	collector := telemetry.NewCollector()
	logEvery := cfg.Telemetry.LogEvery
	if logEvery <= 0 {
		logEvery = 1
	}

	slog.Info("starting simulation",
		"seed", runSeed,
		"cycles", runCycles,
		"width", cfg.World.Width,
		"height", cfg.World.Height,
		"features", len(cfg.Features),
		"cohorts", len(cfg.Population),
	)

	engine.Run(runCycles, func(cycle int, events []telemetry.Event) {
		if *logEvents {
			for _, ev := range events {
				slog.Info("event", "event", ev)
			}
		}

		collector.RecordAll(events)
		stats := collector.Flush(cycle, engine.SpeciesEnergies())

		if err := output.WriteCycle(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
			os.Exit(1)
		}
		if cycle%logEvery == 0 {
			slog.Info("stats", "stats", stats)
		}
	})

	if *snapshotDir != "" {
		path, err := telemetry.SaveSnapshot(engine.Snapshot(), *snapshotDir)
		if err != nil {
			slog.Error("failed to save snapshot", "error", err)
			os.Exit(1)
		}
		slog.Info("snapshot saved", "path", path)
	}

	slog.Info("run complete", "cycles", engine.Cycle())
}
