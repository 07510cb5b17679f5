package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shape-arcade/internal/registry"
	"github.com/vovakirdan/shape-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresRuns  bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top scores and a summary of every recorded run of the
specified game.

Examples:
  shapes scores strike
  shapes scores quiz --limit 20
  shapes scores strike --runs
  shapes scores strike --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresRuns, "runs", false, "List the most recent runs instead of the best scores")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score and run of the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'shapes list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.Clear(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all records of %s.\n", title)
		return
	}

	if flagScoresRuns {
		printRuns(store, gameID, title)
	} else {
		printTopScores(store, gameID, title)
	}
}

func printTopScores(store *storage.Store, gameID, title string) {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'shapes play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	printSummary(store, gameID)
}

func printRuns(store *storage.Store, gameID, title string) {
	runs, err := store.RecentRuns(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Recent Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-10s  %-5s  %-5s  %-6s  %-5s  %-14s  %-20s  %s\n",
		"Score", "Level", "Hits", "Misses", "Acc", "Ended", "Seed", "Date")
	for _, r := range runs {
		fmt.Printf("  %-10d  %-5d  %-5d  %-6d  %4.0f%%  %-14s  %-20d  %s\n",
			r.Stats.Score, r.Stats.Level, r.Stats.Hits, r.Stats.Misses, r.Accuracy()*100,
			r.Stats.Reason, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	printSummary(store, gameID)
}

func printSummary(store *storage.Store, gameID string) {
	stats, err := store.Stats(gameID)
	if err != nil || stats.GamesCount == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Average: %.1f  Best level: %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestLevel)
	if total := stats.Hits + stats.Misses; total > 0 {
		fmt.Printf("Hits: %d  Misses: %d  Accuracy: %.0f%%\n",
			stats.Hits, stats.Misses, float64(stats.Hits)/float64(total)*100)
	}
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
