package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration: a 30x20 grid
// stepped ten times per second with food starting at (5, 5).
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Cols:      30,
			Rows:      20,
			CellWidth: 2,
		},
		Timing: TimingConfig{
			TicksPerSecond:  10,
			FramesPerSecond: 30,
		},
		Start: StartConfig{
			Heading: "right",
			FoodX:   5,
			FoodY:   5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
