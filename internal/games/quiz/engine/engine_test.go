package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shape-arcade/internal/config"
	"github.com/vovakirdan/shape-arcade/internal/shapes"
)

// picks returns the given choice indexes in order, then 0 forever.
type picks []int

func (p *picks) Float64() float64 { return 0 }

func (p *picks) Intn(n int) int {
	if len(*p) == 0 {
		return 0
	}
	v := (*p)[0]
	*p = (*p)[1:]
	return v % n
}

func newQuiz(t *testing.T, preset config.DifficultyPreset, order ...int) *Engine {
	t.Helper()
	cfg := config.DefaultQuizConfig()
	config.ApplyQuizDifficulty(&cfg, preset)
	p := picks(order)
	e, err := New(cfg, &p)
	require.NoError(t, err)
	return e
}

func TestQuizStartsWithShapeAndFullClock(t *testing.T) {
	e := newQuiz(t, config.DifficultyNormal, 1)

	assert.Equal(t, shapes.Circle, e.Target())
	assert.Equal(t, 3, e.Lives())
	assert.Equal(t, 5000.0, e.RemainingMs())
	assert.False(t, e.Over())
}

func TestQuizCorrectAnswer(t *testing.T) {
	e := newQuiz(t, config.DifficultyEasy, 1, 3)
	e.Tick(4000)

	events := e.Answer(shapes.Circle)

	require.Len(t, events, 2)
	assert.Equal(t, shapes.CorrectEvent{Shape: shapes.Circle, Award: 1, Score: 1}, events[0])
	assert.Equal(t, shapes.NewPromptEvent{Target: shapes.Trapezoid, Index: 1}, events[1])
	assert.Equal(t, 1, e.Score())
	assert.Equal(t, 10000.0, e.RemainingMs())
	assert.Equal(t, 5, e.Lives())
}

func TestQuizWrongAnswerCostsLife(t *testing.T) {
	e := newQuiz(t, config.DifficultyNormal, 0)

	events := e.Answer(shapes.Triangle)

	require.Len(t, events, 1)
	assert.Equal(t, shapes.IncorrectEvent{Shape: shapes.Triangle, Target: shapes.Rectangle, LivesLeft: 2}, events[0])
	assert.Equal(t, shapes.Rectangle, e.Target())
	assert.Zero(t, e.Score())
}

func TestQuizRunsOutOfLives(t *testing.T) {
	e := newQuiz(t, config.DifficultyHard, 0)

	events := e.Answer(shapes.Circle)

	require.Len(t, events, 2)
	assert.Equal(t, shapes.GameOverEvent{Reason: shapes.EndNoLives}, events[1])
	assert.True(t, e.Over())
	assert.Nil(t, e.Answer(shapes.Rectangle))
	assert.Nil(t, e.Tick(10000))
}

func TestQuizTimesOut(t *testing.T) {
	tests := []struct {
		preset config.DifficultyPreset
		limit  float64
	}{
		{config.DifficultyEasy, 10000},
		{config.DifficultyNormal, 5000},
		{config.DifficultyHard, 3000},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			e := newQuiz(t, tc.preset)

			assert.Nil(t, e.Tick(tc.limit-1))
			events := e.Tick(1)

			require.Len(t, events, 1)
			assert.Equal(t, shapes.GameOverEvent{Reason: shapes.EndTimeUp}, events[0])
			assert.Zero(t, e.RemainingMs())
			assert.Equal(t, "Time's up", e.Stats().Reason)
		})
	}
}

func TestQuizIgnoresInvalidShape(t *testing.T) {
	e := newQuiz(t, config.DifficultyNormal)

	assert.Nil(t, e.Answer(shapes.Kind(-1)))
	assert.Equal(t, 3, e.Lives())
}

func TestQuizEndAndReset(t *testing.T) {
	e := newQuiz(t, config.DifficultyNormal, 2, 2)
	e.Answer(shapes.Triangle)

	events := e.End(shapes.EndQuit)
	require.Len(t, events, 1)
	assert.Equal(t, shapes.GameOverEvent{Reason: shapes.EndQuit, Score: 1}, events[0])
	assert.Nil(t, e.End(shapes.EndQuit))

	stats := e.Stats()
	assert.Equal(t, 1, stats.Hits)
	assert.Equal(t, "Game ended", stats.Reason)

	e.Reset()
	s := e.Snapshot()
	assert.False(t, s.GameOver)
	assert.Zero(t, s.Score)
	assert.Equal(t, 3, s.Lives)
	assert.Equal(t, int64(5000), s.LimitMs)
	assert.Len(t, s.Choices, 4)
}

func TestQuizSameSeedSameShapes(t *testing.T) {
	cfg := config.DefaultQuizConfig()
	a, err := New(cfg, shapes.NewSource(9))
	require.NoError(t, err)
	b, err := New(cfg, shapes.NewSource(9))
	require.NoError(t, err)

	for n := 0; n < 50; n++ {
		require.Equal(t, a.Target(), b.Target())
		assert.Equal(t, a.Answer(a.Target()), b.Answer(b.Target()))
	}
}
