package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shape-arcade/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created in nested directory")
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.shapes/test.db")
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(home, ".shapes", "test.db"))
	assert.NoError(t, err, "database not created under home")
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200, 300, 10} {
		_, err := store.SaveScore("strike", score)
		require.NoError(t, err)
	}
	store.SaveScore("quiz", 7)

	scores, err := store.TopScores("strike", 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, []int{300, 200, 100}, []int{scores[0].Score, scores[1].Score, scores[2].Score})
	assert.Equal(t, "strike", scores[0].GameID)
	assert.False(t, scores[0].CreatedAt.IsZero(), "created_at should be parsed")

	quiz, _ := store.TopScores("quiz", 0)
	assert.Len(t, quiz, 1)
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("strike")
	require.NoError(t, err)
	assert.Zero(t, high, "empty game")

	store.SaveScore("strike", 100)
	store.SaveScore("strike", 300)
	store.SaveScore("strike", 200)

	high, _ = store.HighScore("strike")
	assert.Equal(t, 300, high)
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	first := core.RunStats{Score: 120, Level: 2, Hits: 12, Misses: 3, ElapsedMs: 61000, Reason: "No lives left"}
	second := core.RunStats{Score: 30, Level: 1, Hits: 3, Misses: 1, ElapsedMs: 9000, Reason: "Game ended"}

	_, err := store.SaveRun("strike", 42, first)
	require.NoError(t, err)
	_, err = store.SaveRun("strike", 43, second)
	require.NoError(t, err)

	runs, err := store.RecentRuns("strike", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, int64(43), runs[0].Seed, "newest run first")
	assert.Equal(t, second, runs[0].Stats)
	assert.Equal(t, first, runs[1].Stats)
	assert.Equal(t, 0.8, runs[1].Accuracy())

	// Each run also counts as a score.
	high, _ := store.HighScore("strike")
	assert.Equal(t, 120, high)
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("quiz")
	require.NoError(t, err)
	assert.Zero(t, empty.GamesCount)
	assert.True(t, empty.LastPlayed.IsZero())

	store.SaveRun("quiz", 1, core.RunStats{Score: 4, Level: 1, Hits: 4, Misses: 2})
	store.SaveRun("quiz", 2, core.RunStats{Score: 8, Level: 1, Hits: 8, Misses: 1})

	stats, err := store.Stats("quiz")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 8, stats.HighScore)
	assert.Equal(t, 6.0, stats.AvgScore)
	assert.Equal(t, 12, stats.Hits)
	assert.Equal(t, 3, stats.Misses)
	assert.Equal(t, 1, stats.BestLevel)
	assert.False(t, stats.LastPlayed.IsZero(), "last played time")
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("strike", 1, core.RunStats{Score: 100})
	store.SaveScore("strike", 200)
	store.SaveScore("quiz", 3)

	require.NoError(t, store.Clear("strike"))

	scores, _ := store.TopScores("strike", 10)
	assert.Empty(t, scores)
	runs, _ := store.RecentRuns("strike", 10)
	assert.Empty(t, runs)
	quiz, _ := store.TopScores("quiz", 10)
	assert.Len(t, quiz, 1, "quiz scores are not affected by clearing strike")
}
