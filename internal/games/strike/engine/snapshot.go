package engine

import (
	"github.com/vovakirdan/shape-arcade/internal/core"
	"github.com/vovakirdan/shape-arcade/internal/shapes"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	FieldW, FieldH int
	Player         core.RectF
	Projectile     Projectile
	Obstacles      []Obstacle

	Score     int
	Level     int // 1-based
	Hits      int
	Misses    int
	Lives     int // -1 when wrong answers are free
	ElapsedMs float64

	HasTarget         bool
	Target            shapes.Kind
	PromptIndex       int
	PromptRemainingMs float64

	GameOver bool
	Reason   shapes.EndReason
}

// Snapshot copies the current state. Mutating the result never affects the engine.
func (e *Engine) Snapshot() Snapshot {
	lives := -1
	if e.livesTracked() {
		lives = e.lives
	}

	s := Snapshot{
		FieldW: e.cfg.Field.Width,
		FieldH: e.cfg.Field.Height,
		Player: core.NewRectF(
			float64(e.playerX), float64(e.playerY),
			float64(e.cfg.Player.Width), float64(e.cfg.Player.Height),
		),
		Projectile: e.projectile,
		Obstacles:  append([]Obstacle(nil), e.obstacles...),
		Score:      e.score,
		Level:      e.Level(),
		Hits:       e.hits,
		Misses:     e.misses,
		Lives:      lives,
		ElapsedMs:  e.elapsed,
		GameOver:   e.over,
		Reason:     e.reason,
	}

	if target, ok := e.CurrentPrompt(); ok {
		s.HasTarget = true
		s.Target = target
		s.PromptIndex = e.promptIndex
		remaining := float64(e.currentLevel().PromptTimeoutMs) - (e.elapsed - e.lastPromptAt)
		s.PromptRemainingMs = max(remaining, 0)
	}
	return s
}
