package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shape-arcade/internal/core"
)

func TestContainsCenterAndCorner(t *testing.T) {
	for _, k := range All() {
		t.Run(k.String(), func(t *testing.T) {
			assert.True(t, Contains(k, 0, 0.1), "center should be inside")
			assert.False(t, Contains(k, 0.99, -0.99), "top-right corner should be outside")
		})
	}
	assert.False(t, Contains(Kind(9), 0, 0))
}

func TestContainsDistinguishesOutlines(t *testing.T) {
	// The top corners separate the rectangle from the trapezoid and triangle.
	assert.True(t, Contains(Rectangle, -0.85, -0.55))
	assert.False(t, Contains(Trapezoid, -0.85, -0.55))
	assert.False(t, Contains(Triangle, -0.85, -0.55))

	// A circle is round where a rectangle is square.
	assert.True(t, Contains(Rectangle, 0.8, 0.55))
	assert.False(t, Contains(Circle, 0.8, 0.55))
}

func TestNotices(t *testing.T) {
	got := Notices([]Event{
		CorrectEvent{Shape: Circle, Award: 10, Score: 10},
		CorrectEvent{Shape: Circle, ByKey: true},
		IncorrectEvent{Shape: Triangle, Target: Circle, LivesLeft: 2},
		IncorrectEvent{Shape: Triangle, Target: Circle, LivesLeft: -1},
		LevelUpEvent{Level: 2},
		NewPromptEvent{Target: Hexagon},
		GameOverEvent{Reason: EndTimeUp, Score: 4},
	})

	require.Len(t, got, 7)
	assert.Equal(t, core.Notice{Kind: core.NoticeGood, Text: "Hit the Circle! +10"}, got[0])
	assert.Equal(t, "Correct! It's a Circle", got[1].Text)
	assert.Equal(t, "That's a Triangle, not a Circle (2 lives left)", got[2].Text)
	assert.Equal(t, "That's a Triangle, not a Circle", got[3].Text)
	assert.Equal(t, core.NoticeLevel, got[4].Kind)
	assert.Equal(t, "Find the Hexagon", got[5].Text)
	assert.Equal(t, core.Notice{Kind: core.NoticeOver, Text: "Time's up! Final score: 4"}, got[6])

	assert.Nil(t, Notices(nil))
}
