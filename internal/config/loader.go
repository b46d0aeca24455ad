package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.snaketui/configs/snake.yaml ->
// ./configs/snake.yaml -> embedded default.
func LoadSnake(customPath string) (SnakeConfig, error) {
	var cfg SnakeConfig

	// An explicit path must exist and parse; everything else is best effort.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile("configs/snake.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snaketui", "configs", filename)
}

// normalize fills omitted board dimensions from the defaults so a partial
// YAML file cannot produce a degenerate board.
func normalize(cfg SnakeConfig) SnakeConfig {
	def := DefaultSnakeConfig()
	if cfg.Board.Width <= 0 {
		cfg.Board.Width = def.Board.Width
	}
	if cfg.Board.Height <= 0 {
		cfg.Board.Height = def.Board.Height
	}
	return cfg
}
