package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shape-arcade/internal/config"
	"github.com/vovakirdan/shape-arcade/internal/shapes"
)

// scripted replays fixed random draws. Once a queue runs dry Float64 returns
// 0.99, which never spawns under the default probability, and Intn returns 0.
type scripted struct {
	floats []float64
	ints   []int
}

func (s *scripted) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scripted) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

const step = 20.0

func newEngine(t *testing.T, mutate func(*config.StrikeConfig), src shapes.Source) *Engine {
	t.Helper()
	cfg := config.DefaultStrikeConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	if src == nil {
		src = &scripted{}
	}
	e, err := New(cfg, src)
	require.NoError(t, err)
	return e
}

// started returns an engine that has issued its first prompt.
func started(t *testing.T, mutate func(*config.StrikeConfig)) *Engine {
	t.Helper()
	e := newEngine(t, mutate, nil)
	e.Tick(step)
	_, ok := e.CurrentPrompt()
	require.True(t, ok)
	return e
}

func eventsOf[T shapes.Event](events []shapes.Event) []T {
	var out []T
	for _, ev := range events {
		if v, ok := ev.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultStrikeConfig()
	cfg.Levels = nil
	_, err := New(cfg, &scripted{})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = New(config.DefaultStrikeConfig(), nil)
	assert.Error(t, err)
}

func TestInitialState(t *testing.T) {
	e := newEngine(t, nil, nil)
	s := e.Snapshot()

	assert.Equal(t, 225.0, s.Player.X)
	assert.Equal(t, 430.0, s.Player.Y)
	assert.Equal(t, 1, s.Level)
	assert.Zero(t, s.Score)
	assert.False(t, s.HasTarget)
	assert.False(t, s.Projectile.Visible)
	assert.Empty(t, s.Obstacles)
	assert.Equal(t, -1, s.Lives)
}

func TestFirstTickIssuesFirstPrompt(t *testing.T) {
	e := newEngine(t, nil, nil)

	events := e.Tick(step)
	prompts := eventsOf[shapes.NewPromptEvent](events)
	require.Len(t, prompts, 1)
	assert.Equal(t, shapes.NewPromptEvent{Target: shapes.Rectangle, Index: 0}, prompts[0])

	target, ok := e.CurrentPrompt()
	assert.True(t, ok)
	assert.Equal(t, shapes.Rectangle, target)

	assert.Empty(t, eventsOf[shapes.NewPromptEvent](e.Tick(step)))
}

func TestNoPromptRejectsFireAndGuesses(t *testing.T) {
	e := newEngine(t, nil, nil)

	assert.False(t, e.Fire())
	assert.Nil(t, e.AnswerByKey(shapes.Rectangle))
	assert.False(t, e.Snapshot().Projectile.Visible)
	assert.Zero(t, e.Stats().Misses)
}

func TestPlayerMovementClamps(t *testing.T) {
	e := newEngine(t, nil, nil)

	for n := 0; n < 20; n++ {
		e.MoveLeft()
	}
	assert.Equal(t, 0.0, e.Snapshot().Player.X)

	for n := 0; n < 40; n++ {
		e.MoveRight()
	}
	assert.Equal(t, 450.0, e.Snapshot().Player.X)

	e.MoveLeft()
	assert.Equal(t, 425.0, e.Snapshot().Player.X)
}

func TestFireLaunchesFromPlayer(t *testing.T) {
	e := started(t, nil)
	e.MoveLeft()

	require.True(t, e.Fire())
	p := e.Snapshot().Projectile
	assert.True(t, p.Visible)
	assert.Equal(t, 200.0, p.X)
	assert.Equal(t, 430.0, p.Y)

	// A second shot replaces the one in flight
	e.Tick(step)
	e.MoveRight()
	require.True(t, e.Fire())
	p = e.Snapshot().Projectile
	assert.Equal(t, 225.0, p.X)
	assert.Equal(t, 430.0, p.Y)
}

func TestStepFiresOnRelease(t *testing.T) {
	e := started(t, nil)

	e.Step(0, []Input{{Type: InputFireReleased}})
	assert.False(t, e.Snapshot().Projectile.Visible)

	e.Step(0, []Input{{Type: InputFirePressed}})
	assert.False(t, e.Snapshot().Projectile.Visible)

	e.Step(0, []Input{{Type: InputFireReleased}})
	assert.True(t, e.Snapshot().Projectile.Visible)
}

func TestProjectileHidesAboveField(t *testing.T) {
	e := started(t, nil)
	require.True(t, e.Fire())

	for n := 0; n < 28; n++ {
		e.Tick(step)
	}
	p := e.Snapshot().Projectile
	assert.True(t, p.Visible)
	assert.Equal(t, 10.0, p.Y)

	e.Tick(step)
	assert.False(t, e.Snapshot().Projectile.Visible)
}

func TestObstacleRemovedOnlyBelowField(t *testing.T) {
	e := newEngine(t, func(c *config.StrikeConfig) { c.Levels[0].FallSpeed = 10 }, nil)
	e.obstacles = []Obstacle{{X: 0, Y: 480, W: 20, H: 20, Kind: shapes.Circle}}

	e.Tick(step)
	require.Len(t, e.obstacles, 1)
	assert.Equal(t, 490.0, e.obstacles[0].Y)

	e.Tick(step)
	require.Len(t, e.obstacles, 1)
	assert.Equal(t, 500.0, e.obstacles[0].Y)

	e.Tick(step)
	assert.Empty(t, e.obstacles)
}

func TestMovementScalesWithDelta(t *testing.T) {
	e := newEngine(t, nil, nil)
	e.obstacles = []Obstacle{{X: 0, Y: 0, W: 20, H: 20, Kind: shapes.Circle}}

	e.Tick(step / 2)
	assert.Equal(t, 1.5, e.obstacles[0].Y)

	e.Tick(-step)
	assert.Equal(t, 1.5, e.obstacles[0].Y)
}

func TestCorrectHit(t *testing.T) {
	e := started(t, nil)
	e.obstacles = []Obstacle{{X: 225, Y: 400, W: 20, H: 20, Kind: shapes.Rectangle}}
	require.True(t, e.Fire())

	events := e.Tick(step)

	hits := eventsOf[shapes.CorrectEvent](events)
	require.Len(t, hits, 1)
	assert.Equal(t, shapes.CorrectEvent{Shape: shapes.Rectangle, Award: 10, Score: 10}, hits[0])
	assert.Equal(t, 10, e.Score())
	assert.Empty(t, e.obstacles)
	assert.False(t, e.Snapshot().Projectile.Visible)
	assert.Equal(t, 1, e.Stats().Hits)
}

func TestIncorrectHit(t *testing.T) {
	e := started(t, nil)
	e.obstacles = []Obstacle{{X: 225, Y: 400, W: 20, H: 20, Kind: shapes.Circle}}
	require.True(t, e.Fire())

	events := e.Tick(step)

	misses := eventsOf[shapes.IncorrectEvent](events)
	require.Len(t, misses, 1)
	assert.Equal(t, shapes.IncorrectEvent{Shape: shapes.Circle, Target: shapes.Rectangle, LivesLeft: -1}, misses[0])
	assert.Zero(t, e.Score())
	assert.Len(t, e.obstacles, 1)
	assert.False(t, e.Snapshot().Projectile.Visible)
	assert.False(t, e.Over())
}

func TestOnlyFirstOverlapIsJudged(t *testing.T) {
	e := started(t, nil)
	e.obstacles = []Obstacle{
		{X: 225, Y: 400, W: 20, H: 20, Kind: shapes.Circle},
		{X: 250, Y: 400, W: 20, H: 20, Kind: shapes.Rectangle},
	}
	require.True(t, e.Fire())

	events := e.Tick(step)

	assert.Len(t, eventsOf[shapes.IncorrectEvent](events), 1)
	assert.Empty(t, eventsOf[shapes.CorrectEvent](events))
	assert.Len(t, e.obstacles, 2)
	assert.Zero(t, e.Score())
}

func TestKeyGuess(t *testing.T) {
	e := started(t, nil)
	e.obstacles = []Obstacle{{X: 0, Y: 0, W: 20, H: 20, Kind: shapes.Rectangle}}

	events := e.AnswerByKey(shapes.Rectangle)
	require.Len(t, events, 1)
	assert.Equal(t, shapes.CorrectEvent{Shape: shapes.Rectangle, ByKey: true}, events[0])

	events = e.AnswerByKey(shapes.Hexagon)
	require.Len(t, events, 1)
	assert.Equal(t, shapes.IncorrectEvent{Shape: shapes.Hexagon, Target: shapes.Rectangle, ByKey: true, LivesLeft: -1}, events[0])

	assert.Zero(t, e.Score())
	assert.Len(t, e.obstacles, 1)
	assert.Equal(t, 1, e.Stats().Hits)
	assert.Equal(t, 1, e.Stats().Misses)
}

func TestLevelUpRestartsPromptSequence(t *testing.T) {
	e := started(t, nil)
	e.score = 90
	e.obstacles = []Obstacle{{X: 225, Y: 400, W: 20, H: 20, Kind: shapes.Rectangle}}
	require.True(t, e.Fire())

	events := e.Tick(step)

	require.Len(t, events, 3)
	assert.IsType(t, shapes.CorrectEvent{}, events[0])
	assert.Equal(t, shapes.LevelUpEvent{Level: 2}, events[1])
	assert.Equal(t, shapes.NewPromptEvent{Target: shapes.Trapezoid, Index: 0}, events[2])
	assert.Equal(t, 2, e.Level())
	assert.Equal(t, 100, e.Score())

	// Level 2 runs on its own clock and fall speed.
	assert.Equal(t, 15000.0, e.Snapshot().PromptRemainingMs)
	e.obstacles = []Obstacle{{X: 0, Y: 0, W: 20, H: 20, Kind: shapes.Circle}}
	e.Tick(step)
	assert.Equal(t, 7.0, e.obstacles[0].Y)
	assert.Equal(t, 15000.0-step, e.Snapshot().PromptRemainingMs)
}

func TestFinalLevelNeverAdvances(t *testing.T) {
	e := started(t, nil)
	e.level = 1
	e.score = 10_000

	events := e.Tick(step)
	assert.Empty(t, eventsOf[shapes.LevelUpEvent](events))
	assert.Equal(t, 2, e.Level())
}

func TestPromptRotatesOnTimeout(t *testing.T) {
	e := started(t, func(c *config.StrikeConfig) { c.Levels[0].PromptTimeoutMs = 100 })

	// First prompt at 20ms; the next is due at 120ms.
	for n := 0; n < 4; n++ {
		assert.Empty(t, eventsOf[shapes.NewPromptEvent](e.Tick(step)))
	}
	prompts := eventsOf[shapes.NewPromptEvent](e.Tick(step))
	require.Len(t, prompts, 1)
	assert.Equal(t, shapes.NewPromptEvent{Target: shapes.Circle, Index: 1}, prompts[0])

	var seen []shapes.Kind
	for n := 0; n < 10; n++ {
		for _, p := range eventsOf[shapes.NewPromptEvent](e.Tick(step)) {
			seen = append(seen, p.Target)
		}
	}
	assert.Equal(t, []shapes.Kind{shapes.Triangle, shapes.Rectangle}, seen)
}

func TestSnapshotReportsPromptRemaining(t *testing.T) {
	e := started(t, func(c *config.StrikeConfig) { c.Levels[0].PromptTimeoutMs = 100 })
	e.Tick(step)

	s := e.Snapshot()
	assert.Equal(t, 80.0, s.PromptRemainingMs)
	assert.Equal(t, shapes.Rectangle, s.Target)
}

func TestSpawnPlacesObstacleAtTop(t *testing.T) {
	src := &scripted{floats: []float64{0.0}, ints: []int{100, 1}}
	e := newEngine(t, nil, src)

	e.Tick(step)

	require.Len(t, e.obstacles, 1)
	assert.Equal(t, Obstacle{X: 100, Y: 0, W: 20, H: 20, Kind: shapes.Circle}, e.obstacles[0])
}

func TestSpawnRedrawsOverlappingPlacement(t *testing.T) {
	src := &scripted{floats: []float64{0.0}, ints: []int{100, 0, 300, 2}}
	e := newEngine(t, nil, src)
	e.obstacles = []Obstacle{{X: 100, Y: 0, W: 20, H: 20, Kind: shapes.Circle}}

	e.Tick(step)

	require.Len(t, e.obstacles, 2)
	assert.Equal(t, 300, e.obstacles[1].X)
	assert.Equal(t, shapes.Triangle, e.obstacles[1].Kind)
	assert.False(t, e.obstacles[0].Bounds().Intersects(e.obstacles[1].Bounds()))
}

func TestSpawnGivesUpAfterMaxAttempts(t *testing.T) {
	src := &scripted{floats: []float64{0.0}, ints: []int{100, 0, 100, 0}}
	e := newEngine(t, func(c *config.StrikeConfig) { c.Obstacles.MaxSpawnAttempts = 2 }, src)
	e.obstacles = []Obstacle{{X: 100, Y: 0, W: 20, H: 20, Kind: shapes.Circle}}

	e.Tick(step)

	assert.Len(t, e.obstacles, 1)
}

func TestUnboundedSpawnSkipsFullRow(t *testing.T) {
	src := &scripted{floats: []float64{0.0}}
	e := newEngine(t, func(c *config.StrikeConfig) {
		c.Obstacles.Width = c.Field.Width
		c.Obstacles.MaxSpawnAttempts = 0
	}, src)
	e.obstacles = []Obstacle{{X: 0, Y: 0, W: 500, H: 20, Kind: shapes.Circle}}

	e.Tick(step)

	require.Len(t, e.obstacles, 1)
	assert.Equal(t, 3.0, e.obstacles[0].Y)
}

func TestObstaclesNeverOverlap(t *testing.T) {
	e := newEngine(t, func(c *config.StrikeConfig) {
		config.ApplyStrikeVariant(c, config.VariantMixed)
		c.Obstacles.SpawnProbability = 1
	}, shapes.NewSource(3))

	for n := 0; n < 500; n++ {
		e.Tick(step)
		for i := range e.obstacles {
			for j := i + 1; j < len(e.obstacles); j++ {
				require.False(t, e.obstacles[i].Bounds().Intersects(e.obstacles[j].Bounds()),
					"obstacles %d and %d overlap", i, j)
			}
		}
	}
}

func TestLivesEndTheRound(t *testing.T) {
	e := started(t, func(c *config.StrikeConfig) { c.Scoring.Lives = 2 })

	events := e.AnswerByKey(shapes.Circle)
	require.Len(t, events, 1)
	assert.Equal(t, 1, events[0].(shapes.IncorrectEvent).LivesLeft)
	assert.False(t, e.Over())

	events = e.AnswerByKey(shapes.Circle)
	require.Len(t, events, 2)
	assert.Equal(t, 0, events[0].(shapes.IncorrectEvent).LivesLeft)
	assert.Equal(t, shapes.GameOverEvent{Reason: shapes.EndNoLives}, events[1])
	assert.True(t, e.Over())
	assert.Equal(t, "No lives left", e.Stats().Reason)
}

func TestNothingChangesAfterGameOver(t *testing.T) {
	e := started(t, nil)
	e.obstacles = []Obstacle{{X: 0, Y: 0, W: 20, H: 20, Kind: shapes.Circle}}

	events := e.End(shapes.EndQuit)
	require.Len(t, events, 1)
	assert.Equal(t, shapes.GameOverEvent{Reason: shapes.EndQuit}, events[0])

	before := e.Snapshot()
	assert.Nil(t, e.Tick(step))
	assert.Nil(t, e.End(shapes.EndQuit))
	assert.Nil(t, e.AnswerByKey(shapes.Rectangle))
	assert.False(t, e.Fire())
	e.MoveLeft()
	assert.Empty(t, e.Step(step, []Input{{Type: InputRightPressed}, {Type: InputFirePressed}, {Type: InputFireReleased}}))
	assert.Equal(t, before, e.Snapshot())
}

func TestSnapshotIsACopy(t *testing.T) {
	e := newEngine(t, nil, nil)
	e.obstacles = []Obstacle{{X: 10, Y: 0, W: 20, H: 20, Kind: shapes.Circle}}

	s := e.Snapshot()
	s.Obstacles[0].X = 400

	assert.Equal(t, 10, e.obstacles[0].X)
}

func TestResetStartsOver(t *testing.T) {
	e := started(t, func(c *config.StrikeConfig) { c.Scoring.Lives = 1 })
	e.score = 50
	e.AnswerByKey(shapes.Circle)
	require.True(t, e.Over())

	e.Reset()

	assert.False(t, e.Over())
	assert.Zero(t, e.Score())
	assert.Equal(t, 1, e.Level())
	_, ok := e.CurrentPrompt()
	assert.False(t, ok)
	assert.Equal(t, 1, e.Snapshot().Lives)
}

func TestSameSeedSameGame(t *testing.T) {
	mixed := func(c *config.StrikeConfig) {
		config.ApplyStrikeVariant(c, config.VariantMixed)
		c.Obstacles.SpawnProbability = 0.3
	}
	a := newEngine(t, mixed, shapes.NewSource(42))
	b := newEngine(t, mixed, shapes.NewSource(42))

	script := func(i int) []Input {
		switch i % 7 {
		case 0:
			return []Input{{Type: InputLeftPressed}}
		case 3:
			return []Input{{Type: InputFirePressed}, {Type: InputFireReleased}}
		case 5:
			return []Input{{Type: InputRightPressed}, Guess(shapes.Kind(i % 6))}
		default:
			return nil
		}
	}

	lastScore := 0
	for i := 0; i < 3000; i++ {
		evA := a.Step(step, script(i))
		evB := b.Step(step, script(i))
		require.Equal(t, evA, evB, "tick %d", i)
		require.GreaterOrEqual(t, a.Score(), lastScore)
		require.Zero(t, a.Score()%a.Config().Scoring.HitAward, "tick %d", i)
		lastScore = a.Score()
	}
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}
