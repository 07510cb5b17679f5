package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/shape-arcade/internal/shapes"
)

// ErrUnknownPreset is returned when a difficulty or variant name is not recognized.
var ErrUnknownPreset = errors.New("unknown preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty resolves a difficulty name. An empty name keeps the config as loaded.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: difficulty %q (want easy, normal or hard)", ErrUnknownPreset, name)
	}
}

// Scaling is how a difficulty bends a Shape Strike config.
type Scaling struct {
	FallSpeed     float64 // Multiplier on every level's fall speed
	PromptTimeout float64 // Multiplier on every level's prompt timeout
	Lives         int     // Replaces the life budget; 0 plays forever
}

// StrikeScaling returns the scaling applied for a difficulty.
func StrikeScaling(p DifficultyPreset) Scaling {
	switch p {
	case DifficultyEasy:
		return Scaling{FallSpeed: 0.75, PromptTimeout: 1.25, Lives: 0}
	case DifficultyHard:
		return Scaling{FallSpeed: 1.5, PromptTimeout: 0.75, Lives: 3}
	default:
		return Scaling{FallSpeed: 1, PromptTimeout: 1, Lives: 0}
	}
}

// ApplyStrikeDifficulty modifies the config based on a difficulty preset.
// Normal and empty presets leave the config untouched.
func ApplyStrikeDifficulty(cfg *StrikeConfig, preset DifficultyPreset) {
	if preset == "" || preset == DifficultyNormal {
		return
	}
	s := StrikeScaling(preset)
	levels := make([]LevelConfig, len(cfg.Levels))
	for i, lvl := range cfg.Levels {
		lvl.FallSpeed *= s.FallSpeed
		lvl.PromptTimeoutMs = int64(float64(lvl.PromptTimeoutMs) * s.PromptTimeout)
		levels[i] = lvl
	}
	cfg.Levels = levels
	cfg.Scoring.Lives = s.Lives
}

// ApplyQuizDifficulty sets the countdown and lives for a difficulty preset.
func ApplyQuizDifficulty(cfg *QuizConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.TimeLimitMs = 10000
		cfg.Lives = 5
	case DifficultyNormal:
		cfg.TimeLimitMs = 5000
		cfg.Lives = 3
	case DifficultyHard:
		cfg.TimeLimitMs = 3000
		cfg.Lives = 1
	}
}

// StrikeVariant names one of the Shape Strike rule sets.
type StrikeVariant string

const (
	// VariantClassic splits the shapes between levels and spawns rarely.
	VariantClassic StrikeVariant = "classic"
	// VariantMixed spawns and prompts all six shapes at every level, more often.
	VariantMixed StrikeVariant = "mixed"
)

// ParseVariant resolves a variant name. An empty name keeps the config as loaded.
func ParseVariant(name string) (StrikeVariant, error) {
	switch v := StrikeVariant(strings.ToLower(strings.TrimSpace(name))); v {
	case "", VariantClassic, VariantMixed:
		return v, nil
	default:
		return "", fmt.Errorf("%w: variant %q (want classic or mixed)", ErrUnknownPreset, name)
	}
}

// ApplyStrikeVariant rewrites the spawn rate and shape pools for a variant.
func ApplyStrikeVariant(cfg *StrikeConfig, v StrikeVariant) {
	switch v {
	case VariantClassic:
		def := DefaultStrikeConfig()
		cfg.Obstacles.SpawnProbability = def.Obstacles.SpawnProbability
		for i := range cfg.Levels {
			src := def.Levels[min(i, len(def.Levels)-1)]
			cfg.Levels[i].Shapes = src.Shapes
			cfg.Levels[i].Prompts = src.Prompts
		}
	case VariantMixed:
		cfg.Obstacles.SpawnProbability = 0.03
		for i := range cfg.Levels {
			cfg.Levels[i].Shapes = shapes.All()
			cfg.Levels[i].Prompts = shapes.All()
		}
	}
}
