// Package config provides YAML-based game configuration loading for the
// snake game.
package config

// SnakeConfig contains all tunable parameters for the snake game.
type SnakeConfig struct {
	Board BoardConfig `yaml:"board"`
	Rules RulesConfig `yaml:"rules"`
}

// BoardConfig defines the playing field dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RulesConfig defines optional deviations from the classic rules.
type RulesConfig struct {
	// ExcludeOccupiedCells restricts apple placement to cells not covered
	// by the snake. The classic behavior (false) draws the position over
	// the whole board and accepts the occasional apple under the snake.
	ExcludeOccupiedCells bool `yaml:"exclude_occupied_cells"`
}
