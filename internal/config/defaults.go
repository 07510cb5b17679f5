package config

import (
	_ "embed"

	"github.com/vovakirdan/shape-arcade/internal/shapes"
)

//go:embed defaults/strike.yaml
var defaultStrikeYAML []byte

//go:embed defaults/quiz.yaml
var defaultQuizYAML []byte

// DefaultStrikeConfig returns the classic Shape Strike configuration:
// level 1 spawns and prompts the basic shapes, level 2 the polygons.
func DefaultStrikeConfig() StrikeConfig {
	basic := []shapes.Kind{shapes.Rectangle, shapes.Circle, shapes.Triangle}
	polygons := []shapes.Kind{shapes.Trapezoid, shapes.Pentagon, shapes.Hexagon}

	return StrikeConfig{
		Field: FieldConfig{
			Width:  500,
			Height: 500,
		},
		Player: PlayerConfig{
			Width:  50,
			Height: 50,
			Speed:  25,
			Margin: 20,
		},
		Obstacles: ObstacleConfig{
			Width:            20,
			Height:           20,
			SpawnProbability: 0.02,
			MaxSpawnAttempts: 100,
		},
		Projectile: ProjectileConfig{
			Width:  50,
			Height: 50,
			Speed:  15,
		},
		Scoring: ScoringConfig{
			HitAward: 10,
			Lives:    0,
		},
		StepMs: 20,
		Levels: []LevelConfig{
			{
				FallSpeed:       3,
				PromptTimeoutMs: 20000,
				AdvanceScore:    100,
				Shapes:          basic,
				Prompts:         basic,
			},
			{
				FallSpeed:       7,
				PromptTimeoutMs: 15000,
				Shapes:          polygons,
				Prompts:         polygons,
			},
		},
	}
}

// DefaultQuizConfig returns the normal-difficulty Shape Quiz configuration.
func DefaultQuizConfig() QuizConfig {
	return QuizConfig{
		Choices:     []shapes.Kind{shapes.Rectangle, shapes.Circle, shapes.Triangle, shapes.Trapezoid},
		TimeLimitMs: 5000,
		Lives:       3,
		Award:       1,
	}
}

// DefaultYAML returns the embedded default YAML for a game.
func DefaultYAML(gameID string) []byte {
	switch gameID {
	case "strike":
		return defaultStrikeYAML
	case "quiz":
		return defaultQuizYAML
	default:
		return nil
	}
}
