package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shape-arcade/internal/core"
	"github.com/vovakirdan/shape-arcade/internal/games/strike"
	"github.com/vovakirdan/shape-arcade/internal/games/strike/engine"
	"github.com/vovakirdan/shape-arcade/internal/shapes"
	"github.com/vovakirdan/shape-arcade/internal/storage"
)

var (
	flagSimTicks int
	flagSimIdle  bool
	flagSimSave  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run Shape Strike headless and print its events",
	Long: `Play Shape Strike without a terminal UI. An autopilot chases and
shoots the prompted shape, and every game event is logged to stderr.
The same seed and flags always produce the same event stream.

Examples:
  shapes sim --seed 42
  shapes sim --seed 42 --ticks 10000 --preset mixed
  shapes sim --idle --ticks 500
  shapes sim --seed 7 --save`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3000, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagSimIdle, "idle", false, "Send no input, only let shapes fall")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the scores database")
}

func runSim(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(strike.ID); err != nil {
		return err
	}

	cfg, err := strike.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	eng, err := engine.New(cfg, shapes.NewSource(seed))
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sim"})
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	delta := rt.TickMillis()

	logger.Info("simulation started", "seed", seed, "ticks", flagSimTicks, "tick_ms", delta)

	for tick := 1; tick <= flagSimTicks && !eng.Over(); tick++ {
		var inputs []engine.Input
		if !flagSimIdle {
			inputs = engine.Autopilot(eng.Snapshot())
		}
		for _, ev := range eng.Step(delta, inputs) {
			logEvent(logger, tick, ev)
		}
	}
	if !eng.Over() {
		for _, ev := range eng.End(shapes.EndQuit) {
			logEvent(logger, flagSimTicks, ev)
		}
	}

	stats := eng.Stats()
	logger.Info("simulation finished",
		"score", stats.Score, "level", stats.Level,
		"hits", stats.Hits, "misses", stats.Misses, "elapsed_ms", stats.ElapsedMs)

	if flagSimSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		id, err := store.SaveRun(strike.ID, seed, stats)
		if err != nil {
			return err
		}
		logger.Info("run saved", "id", id)
	}
	return nil
}

func logEvent(logger *log.Logger, tick int, ev shapes.Event) {
	switch e := ev.(type) {
	case shapes.CorrectEvent:
		logger.Info("correct", "tick", tick, "shape", e.Shape, "award", e.Award, "score", e.Score, "by_key", e.ByKey)
	case shapes.IncorrectEvent:
		logger.Warn("incorrect", "tick", tick, "shape", e.Shape, "target", e.Target, "lives", e.LivesLeft)
	case shapes.LevelUpEvent:
		logger.Info("level up", "tick", tick, "level", e.Level)
	case shapes.NewPromptEvent:
		logger.Info("new prompt", "tick", tick, "target", e.Target, "index", e.Index)
	case shapes.GameOverEvent:
		logger.Info("game over", "tick", tick, "reason", e.Reason, "score", e.Score)
	default:
		logger.Debug("event", "tick", tick, "value", fmt.Sprintf("%+v", ev))
	}
}
