package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shape-arcade/internal/core"
	"github.com/vovakirdan/shape-arcade/internal/platform/tui"
	"github.com/vovakirdan/shape-arcade/internal/registry"
	"github.com/vovakirdan/shape-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Move (Shape Strike)
  Space            - Fire (Shape Strike)
  R C T Y P H      - Name the shape: Rectangle, Circle, Triangle,
                     Trapezoid, Pentagon, Hexagon
  Esc              - Pause
  Enter            - Play again (after game over)
  B                - Back (when paused or over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower shapes, longer prompts, more lives
  normal - The game's own settings
  hard   - Faster shapes, shorter prompts, fewer lives

Presets (Shape Strike):
  classic - Each level brings its own shapes, spawns are rare
  mixed   - All six shapes at every level, spawns are frequent

Examples:
  shapes play strike
  shapes play strike --preset mixed --difficulty hard
  shapes play quiz --difficulty easy
  shapes play strike --config ./my-strike.yaml --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'shapes list' to see available games.")
		os.Exit(1)
	}

	if err := applyGameFlags(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := tui.NewLogger(flagLog, "shapes")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	_, runErr := tui.Run(game, store, runtimeConfig(), tui.WithLogger(logger))

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig sizes the game to the terminal and applies --fps and --seed.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
