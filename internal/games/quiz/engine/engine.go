// Package engine is the Shape Quiz engine: a random shape is shown and the
// player names it before the countdown runs out.
package engine

import (
	"fmt"

	"github.com/vovakirdan/shape-arcade/internal/config"
	"github.com/vovakirdan/shape-arcade/internal/core"
	"github.com/vovakirdan/shape-arcade/internal/shapes"
)

// Engine owns all Shape Quiz state. Like the strike engine it is not safe
// for concurrent use.
type Engine struct {
	cfg config.QuizConfig
	rng shapes.Source

	target    shapes.Kind
	round     int // Number of shapes shown so far, minus one
	score     int
	lives     int
	correct   int
	wrong     int
	remaining float64 // ms left on the countdown
	elapsed   float64
	over      bool
	reason    shapes.EndReason
}

// Snapshot is a copy of the quiz state for rendering.
type Snapshot struct {
	Target      shapes.Kind
	Choices     []shapes.Kind
	Round       int
	Score       int
	Lives       int
	RemainingMs float64
	LimitMs     int64
	GameOver    bool
	Reason      shapes.EndReason
}

// New creates a quiz for cfg drawing shapes from src. The first shape is
// drawn immediately and the countdown starts full.
func New(cfg config.QuizConfig, src shapes.Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("quiz: %w", err)
	}
	if src == nil {
		return nil, fmt.Errorf("quiz: nil random source")
	}
	e := &Engine{cfg: cfg, rng: src}
	e.Reset()
	return e, nil
}

// Reset starts a new quiz.
func (e *Engine) Reset() {
	e.score = 0
	e.correct = 0
	e.wrong = 0
	e.lives = e.cfg.Lives
	e.round = 0
	e.elapsed = 0
	e.over = false
	e.reason = shapes.EndQuit
	e.remaining = float64(e.cfg.TimeLimitMs)
	e.target = shapes.Pick(e.rng, e.cfg.Choices)
}

// Choices returns the shapes the player can answer with.
func (e *Engine) Choices() []shapes.Kind {
	return append([]shapes.Kind(nil), e.cfg.Choices...)
}

// Tick runs the countdown down by deltaMs. When it reaches zero the quiz ends.
func (e *Engine) Tick(deltaMs float64) []shapes.Event {
	if e.over || deltaMs <= 0 {
		return nil
	}
	e.elapsed += deltaMs
	e.remaining -= deltaMs
	if e.remaining > 0 {
		return nil
	}
	e.remaining = 0
	return e.finish(nil, shapes.EndTimeUp)
}

// Answer judges the player's pick. A right answer scores, refills the
// countdown and shows a new shape; a wrong one costs a life and keeps the
// same shape on screen.
func (e *Engine) Answer(k shapes.Kind) []shapes.Event {
	if e.over || !k.Valid() {
		return nil
	}

	if k == e.target {
		e.score += e.cfg.Award
		e.correct++
		events := []shapes.Event{shapes.CorrectEvent{Shape: k, Award: e.cfg.Award, Score: e.score}}

		e.remaining = float64(e.cfg.TimeLimitMs)
		e.target = shapes.Pick(e.rng, e.cfg.Choices)
		e.round++
		return append(events, shapes.NewPromptEvent{Target: e.target, Index: e.round})
	}

	e.wrong++
	e.lives--
	events := []shapes.Event{shapes.IncorrectEvent{Shape: k, Target: e.target, LivesLeft: e.lives}}
	if e.lives <= 0 {
		events = e.finish(events, shapes.EndNoLives)
	}
	return events
}

// End stops the quiz early. The terminal event is emitted once.
func (e *Engine) End(reason shapes.EndReason) []shapes.Event {
	if e.over {
		return nil
	}
	return e.finish(nil, reason)
}

func (e *Engine) finish(events []shapes.Event, reason shapes.EndReason) []shapes.Event {
	e.over = true
	e.reason = reason
	return append(events, shapes.GameOverEvent{Reason: reason, Score: e.score})
}

func (e *Engine) Target() shapes.Kind { return e.target }
func (e *Engine) Score() int          { return e.score }
func (e *Engine) Lives() int          { return e.lives }
func (e *Engine) Over() bool          { return e.over }

// RemainingMs returns the time left to answer the current shape.
func (e *Engine) RemainingMs() float64 { return e.remaining }

// Stats summarizes the quiz for persistence. Level is always 1.
func (e *Engine) Stats() core.RunStats {
	reason := ""
	if e.over {
		reason = e.reason.String()
	}
	return core.RunStats{
		Score:     e.score,
		Level:     1,
		Hits:      e.correct,
		Misses:    e.wrong,
		ElapsedMs: int64(e.elapsed),
		Reason:    reason,
	}
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Target:      e.target,
		Choices:     e.Choices(),
		Round:       e.round,
		Score:       e.score,
		Lives:       e.lives,
		RemainingMs: e.remaining,
		LimitMs:     e.cfg.TimeLimitMs,
		GameOver:    e.over,
		Reason:      e.reason,
	}
}
