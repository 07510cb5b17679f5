package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/shape-arcade/internal/shapes"
)

// ErrInvalidConfig is returned (wrapped) when a config cannot drive a game.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks that every size, speed, pool and threshold is usable.
func (c StrikeConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return invalid("field must have positive size, got %dx%d", c.Field.Width, c.Field.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Width > c.Field.Width:
		return invalid("player size %dx%d does not fit the field", c.Player.Width, c.Player.Height)
	case c.Player.Speed <= 0:
		return invalid("player speed must be positive")
	case c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 || c.Obstacles.Width > c.Field.Width:
		return invalid("obstacle size %dx%d does not fit the field", c.Obstacles.Width, c.Obstacles.Height)
	case c.Obstacles.SpawnProbability < 0 || c.Obstacles.SpawnProbability > 1:
		return invalid("spawn probability %v outside [0, 1]", c.Obstacles.SpawnProbability)
	case c.Obstacles.MaxSpawnAttempts < 0:
		return invalid("max spawn attempts must not be negative")
	case c.Obstacles.MaxSpawnAttempts == 0 && c.Obstacles.SpawnProbability >= 1:
		return invalid("unbounded spawn attempts need a spawn probability below 1")
	case c.Projectile.Width <= 0 || c.Projectile.Height <= 0 || c.Projectile.Speed <= 0:
		return invalid("projectile needs positive size and speed")
	case c.Scoring.HitAward <= 0:
		return invalid("hit award must be positive")
	case c.Scoring.Lives < 0:
		return invalid("lives must not be negative")
	case c.StepMs <= 0:
		return invalid("step_ms must be positive")
	case len(c.Levels) == 0:
		return invalid("at least one level is required")
	}

	prev := 0
	for i, lvl := range c.Levels {
		n := i + 1
		switch {
		case lvl.FallSpeed <= 0:
			return invalid("level %d: fall speed must be positive", n)
		case lvl.PromptTimeoutMs <= 0:
			return invalid("level %d: prompt timeout must be positive", n)
		case len(lvl.Shapes) == 0:
			return invalid("level %d: shape pool is empty", n)
		case len(lvl.Prompts) == 0:
			return invalid("level %d: prompt sequence is empty", n)
		}
		for _, pool := range [][]shapes.Kind{lvl.Shapes, lvl.Prompts} {
			for _, k := range pool {
				if !k.Valid() {
					return invalid("level %d: unknown shape %s", n, k)
				}
			}
		}
		if i < len(c.Levels)-1 {
			if lvl.AdvanceScore <= prev {
				return invalid("level %d: advance score %d must exceed %d", n, lvl.AdvanceScore, prev)
			}
			prev = lvl.AdvanceScore
		}
	}
	return nil
}

// Validate checks that the quiz can be played.
func (c QuizConfig) Validate() error {
	switch {
	case len(c.Choices) < 2:
		return invalid("quiz needs at least two choices, got %d", len(c.Choices))
	case c.TimeLimitMs <= 0:
		return invalid("time limit must be positive")
	case c.Lives <= 0:
		return invalid("lives must be positive")
	case c.Award <= 0:
		return invalid("award must be positive")
	}
	seen := map[shapes.Kind]bool{}
	for _, k := range c.Choices {
		if !k.Valid() {
			return invalid("unknown shape %s", k)
		}
		if seen[k] {
			return invalid("duplicate choice %s", k)
		}
		seen[k] = true
	}
	return nil
}
