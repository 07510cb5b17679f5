package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadStrike loads Shape Strike configuration.
// Search order: customPath -> ~/.shapes/configs/strike.yaml -> ./configs/strike.yaml -> embedded default
func LoadStrike(customPath string) (StrikeConfig, error) {
	cfg, err := load("strike", customPath, defaultStrikeYAML, DefaultStrikeConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadQuiz loads Shape Quiz configuration.
// Search order: customPath -> ~/.shapes/configs/quiz.yaml -> ./configs/quiz.yaml -> embedded default
func LoadQuiz(customPath string) (QuizConfig, error) {
	cfg, err := load("quiz", customPath, defaultQuizYAML, DefaultQuizConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load resolves one game's config. An explicit path must load; the implicit
// locations are skipped silently when missing or malformed.
func load[T any](gameID, customPath string, embedded []byte, fallback func() T) (T, error) {
	if customPath != "" {
		var cfg T
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg T
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	var cfg T
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shapes", "configs", filename)
}
