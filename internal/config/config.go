// Package config provides YAML-based game configuration loading, presets and
// difficulty scaling for the shape games.
package config

import "github.com/vovakirdan/shape-arcade/internal/shapes"

// StrikeConfig contains all configuration for Shape Strike.
// Distances are play-field units; speeds are units per reference step.
type StrikeConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	StepMs     float64          `yaml:"step_ms"` // Reference step; a tick of StepMs moves things by exactly their speed
	Levels     []LevelConfig    `yaml:"levels"`
}

// FieldConfig defines the play-field size.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`  // Horizontal step per move
	Margin int `yaml:"margin"` // Gap between the sprite and the bottom edge
}

// ObstacleConfig defines falling shapes and how they spawn.
type ObstacleConfig struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	SpawnProbability float64 `yaml:"spawn_probability"`  // Chance of a spawn attempt per tick
	MaxSpawnAttempts int     `yaml:"max_spawn_attempts"` // Placement retries before skipping a spawn
}

// ProjectileConfig defines the projectile.
type ProjectileConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// ScoringConfig defines awards and the optional life budget.
type ScoringConfig struct {
	HitAward int `yaml:"hit_award"`
	Lives    int `yaml:"lives"` // Wrong answers allowed; 0 plays forever
}

// LevelConfig defines one difficulty tier.
type LevelConfig struct {
	FallSpeed       float64       `yaml:"fall_speed"`
	PromptTimeoutMs int64         `yaml:"prompt_timeout_ms"`
	AdvanceScore    int           `yaml:"advance_score"` // Score that moves play to the next level; ignored on the last
	Shapes          []shapes.Kind `yaml:"shapes"`        // Kinds eligible for spawn
	Prompts         []shapes.Kind `yaml:"prompts"`       // Target sequence, repeated endlessly
}

// QuizConfig contains all configuration for Shape Quiz.
type QuizConfig struct {
	Choices     []shapes.Kind `yaml:"choices"`
	TimeLimitMs int64         `yaml:"time_limit_ms"`
	Lives       int           `yaml:"lives"`
	Award       int           `yaml:"award"`
}
