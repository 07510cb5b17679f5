// shapes is a terminal arcade of shape-recognition games.
//
// Usage:
//
//	shapes list              - List available games
//	shapes play <game>       - Play a game
//	shapes menu              - Start menu to pick games interactively
//	shapes serve             - Start SSH server for remote play
//	shapes scores <game>     - Show high scores and run history for a game
//	shapes sim               - Run Shape Strike headless and print its events
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 50)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.shapes/shapes.db)
//	--config <path>       - Load game settings from a YAML file
//	--preset <name>       - Shape Strike rule set: classic, mixed
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log <path>          - Write a debug log to this file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shape-arcade/internal/config"
	"github.com/vovakirdan/shape-arcade/internal/games/quiz"
	"github.com/vovakirdan/shape-arcade/internal/games/strike"
	"github.com/vovakirdan/shape-arcade/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagPreset     string
	flagDifficulty string
	flagLog        string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Shape games for your terminal",
	Long: `Shapes is a terminal arcade about telling shapes apart.

Shape Strike drops shapes down the screen and names one of them: slide
under the match and shoot it. Shape Quiz shows a single shape and a
clock: name it before time runs out.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and run history
  sim      - Run a seeded headless game of Shape Strike

Examples:
  shapes list
  shapes play strike --preset mixed
  shapes play quiz --difficulty hard
  shapes menu
  shapes serve --ssh :2222
  shapes sim --seed 42 --ticks 3000`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 50, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Shape Strike rule set: classic, mixed")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write a debug log to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// applyGameFlags hands the settings flags to the game that is about to be
// created. A custom config file only fits one game, so it goes to gameID
// alone; the difficulty and preset apply wherever they mean something.
func applyGameFlags(gameID string) error {
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}
	if _, err := config.ParseVariant(flagPreset); err != nil {
		return err
	}

	strike.SetDifficultyPreset(flagDifficulty)
	strike.SetVariant(flagPreset)
	quiz.SetDifficultyPreset(flagDifficulty)

	strike.SetConfigPath("")
	quiz.SetConfigPath("")
	if flagConfig == "" {
		return nil
	}

	// Games fall back to defaults when their config is bad, so an explicit
	// file is checked here where the error can still reach the user.
	var err error
	switch gameID {
	case strike.ID:
		strike.SetConfigPath(flagConfig)
		_, err = strike.LoadConfig()
	case quiz.ID:
		quiz.SetConfigPath(flagConfig)
		_, err = quiz.LoadConfig()
	}
	return err
}
