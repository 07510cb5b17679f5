// Package engine is the Shape Strike game-state engine: falling shapes,
// one projectile, prompts, scoring and levels, advanced one tick at a time.
//
// The engine does no I/O, never blocks and performs no synchronization.
// Callers that deliver input and ticks from different goroutines must
// serialize every call.
package engine

import (
	"fmt"

	"github.com/vovakirdan/shape-arcade/internal/config"
	"github.com/vovakirdan/shape-arcade/internal/core"
	"github.com/vovakirdan/shape-arcade/internal/shapes"
)

// Obstacle is a falling shape.
type Obstacle struct {
	X    int
	Y    float64
	W, H int
	Kind shapes.Kind
}

// Bounds returns the obstacle's bounding box.
func (o Obstacle) Bounds() core.RectF {
	return core.NewRectF(float64(o.X), o.Y, float64(o.W), float64(o.H))
}

// Projectile is the player's single shot.
type Projectile struct {
	X, Y    float64
	W, H    int
	Visible bool
}

// Bounds returns the projectile's bounding box.
func (p Projectile) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, float64(p.W), float64(p.H))
}

// InputType enumerates the discrete input events the engine understands.
type InputType int

const (
	InputLeftPressed InputType = iota
	InputRightPressed
	InputFirePressed
	InputFireReleased
	InputKeyGuess
)

// Input is one input event. Shape is only read for InputKeyGuess.
type Input struct {
	Type  InputType
	Shape shapes.Kind
}

// Guess builds a key-guess input.
func Guess(k shapes.Kind) Input {
	return Input{Type: InputKeyGuess, Shape: k}
}

// Engine owns all Shape Strike state.
type Engine struct {
	cfg config.StrikeConfig
	rng shapes.Source

	playerX    int
	playerY    int
	firing     bool
	projectile Projectile
	obstacles  []Obstacle

	score  int
	hits   int
	misses int
	lives  int // Remaining; meaningless when cfg.Scoring.Lives == 0
	level  int // Index into cfg.Levels

	hasPrompt    bool
	promptIndex  int
	lastPromptAt float64 // Elapsed ms when the current prompt was issued

	elapsed float64 // Total simulated ms
	over    bool
	reason  shapes.EndReason
}

// New creates an engine for cfg drawing randomness from src.
func New(cfg config.StrikeConfig, src shapes.Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if src == nil {
		return nil, fmt.Errorf("engine: nil random source")
	}
	e := &Engine{cfg: cfg, rng: src}
	e.Reset()
	return e, nil
}

// Reset starts a new round at level 1 with no prompt issued yet.
// The random source is kept; callers wanting a replay pass a fresh one to New.
func (e *Engine) Reset() {
	e.playerX = e.cfg.Field.Width/2 - e.cfg.Player.Width/2
	e.playerY = e.cfg.Field.Height - e.cfg.Player.Height - e.cfg.Player.Margin
	e.firing = false
	e.projectile = Projectile{
		W: e.cfg.Projectile.Width,
		H: e.cfg.Projectile.Height,
	}
	e.obstacles = e.obstacles[:0]
	e.score = 0
	e.hits = 0
	e.misses = 0
	e.lives = e.cfg.Scoring.Lives
	e.level = 0
	e.hasPrompt = false
	e.promptIndex = 0
	e.lastPromptAt = 0
	e.elapsed = 0
	e.over = false
	e.reason = shapes.EndQuit
}

// Config returns the configuration the engine runs with.
func (e *Engine) Config() config.StrikeConfig {
	return e.cfg
}

// MoveLeft moves the player one step left, stopping at the field edge.
func (e *Engine) MoveLeft() {
	e.move(-e.cfg.Player.Speed)
}

// MoveRight moves the player one step right, stopping at the field edge.
func (e *Engine) MoveRight() {
	e.move(e.cfg.Player.Speed)
}

func (e *Engine) move(dx int) {
	if e.over {
		return
	}
	e.playerX = core.Clamp(e.playerX+dx, 0, e.cfg.Field.Width-e.cfg.Player.Width)
}

// Fire launches the projectile from the player's current position, replacing
// any projectile still in flight. It reports whether a shot was launched;
// nothing happens after game over or before the first prompt.
func (e *Engine) Fire() bool {
	if e.over || !e.hasPrompt {
		return false
	}
	e.projectile.X = float64(e.playerX + e.cfg.Player.Width/2 - e.cfg.Projectile.Width/2)
	e.projectile.Y = float64(e.playerY)
	e.projectile.Visible = true
	return true
}

// AnswerByKey judges a key guess against the current prompt. Nothing is
// removed and no points are awarded, but the guess counts as a hit or a
// miss. Guesses before the first prompt or after game over are ignored.
func (e *Engine) AnswerByKey(k shapes.Kind) []shapes.Event {
	if e.over || !e.hasPrompt || !k.Valid() {
		return nil
	}
	target := e.Target()
	if k.Matches(target.String()) {
		e.hits++
		return []shapes.Event{shapes.CorrectEvent{Shape: k, Score: e.score, ByKey: true}}
	}
	return e.wrong(nil, k, true)
}

// End finishes the round, e.g. when the player quits. It emits the terminal
// event once; later calls return nothing.
func (e *Engine) End(reason shapes.EndReason) []shapes.Event {
	if e.over {
		return nil
	}
	return e.finish(nil, reason)
}

// Step applies inputs in order and then advances the simulation by deltaMs.
// Events from inputs precede events from the tick.
func (e *Engine) Step(deltaMs float64, inputs []Input) []shapes.Event {
	var events []shapes.Event
	for _, in := range inputs {
		switch in.Type {
		case InputLeftPressed:
			e.MoveLeft()
		case InputRightPressed:
			e.MoveRight()
		case InputFirePressed:
			e.firing = !e.over
		case InputFireReleased:
			// Shots leave on release, matching a held-then-released trigger.
			if e.firing {
				e.Fire()
			}
			e.firing = false
		case InputKeyGuess:
			events = append(events, e.AnswerByKey(in.Shape)...)
		}
	}
	return append(events, e.Tick(deltaMs)...)
}

// Over reports whether the round has ended.
func (e *Engine) Over() bool {
	return e.over
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Level returns the current level, 1-based.
func (e *Engine) Level() int {
	return e.level + 1
}

// Target returns the current prompt's shape. Check CurrentPrompt when it
// matters whether a prompt has been issued.
func (e *Engine) Target() shapes.Kind {
	k, _ := e.CurrentPrompt()
	return k
}

// CurrentPrompt returns the current target shape and whether one is active.
func (e *Engine) CurrentPrompt() (shapes.Kind, bool) {
	if !e.hasPrompt {
		return 0, false
	}
	return e.currentLevel().Prompts[e.promptIndex], true
}

// Stats summarizes the round for persistence.
func (e *Engine) Stats() core.RunStats {
	reason := ""
	if e.over {
		reason = e.reason.String()
	}
	return core.RunStats{
		Score:     e.score,
		Level:     e.Level(),
		Hits:      e.hits,
		Misses:    e.misses,
		ElapsedMs: int64(e.elapsed),
		Reason:    reason,
	}
}

func (e *Engine) currentLevel() config.LevelConfig {
	return e.cfg.Levels[e.level]
}

// livesTracked reports whether wrong answers cost lives.
func (e *Engine) livesTracked() bool {
	return e.cfg.Scoring.Lives > 0
}

// wrong records an incorrect judgment and ends the round when the last life is lost.
func (e *Engine) wrong(events []shapes.Event, struck shapes.Kind, byKey bool) []shapes.Event {
	e.misses++
	left := -1
	if e.livesTracked() {
		e.lives--
		left = e.lives
	}
	events = append(events, shapes.IncorrectEvent{
		Shape:     struck,
		Target:    e.Target(),
		ByKey:     byKey,
		LivesLeft: left,
	})
	if e.livesTracked() && e.lives <= 0 {
		events = e.finish(events, shapes.EndNoLives)
	}
	return events
}

func (e *Engine) finish(events []shapes.Event, reason shapes.EndReason) []shapes.Event {
	e.over = true
	e.reason = reason
	e.firing = false
	e.projectile.Visible = false
	return append(events, shapes.GameOverEvent{Reason: reason, Score: e.score})
}
