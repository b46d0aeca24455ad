package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration: a 32x24
// board (the classic 640x480 window on a 20px grid) with classic apple
// placement.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  32,
			Height: 24,
		},
		Rules: RulesConfig{
			ExcludeOccupiedCells: false,
		},
	}
}
