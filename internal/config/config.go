// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors. Returned wrapped with the offending values.
var (
	ErrInvalidGrid   = errors.New("config: invalid grid")
	ErrInvalidTiming = errors.New("config: invalid timing")
	ErrInvalidStart  = errors.New("config: invalid start")
)

// SnakeConfig contains all configuration for a Snake session.
// It is immutable for the lifetime of a session.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Start  StartConfig  `yaml:"start"`
}

// GridConfig defines the playfield geometry.
type GridConfig struct {
	Cols      int `yaml:"cols"`
	Rows      int `yaml:"rows"`
	CellWidth int `yaml:"cell_width"` // Terminal columns per grid cell
}

// TimingConfig defines the two independent clocks of the driver.
type TimingConfig struct {
	TicksPerSecond  int `yaml:"ticks_per_second"`
	FramesPerSecond int `yaml:"frames_per_second"`
}

// StartConfig defines the initial heading and food position.
type StartConfig struct {
	Heading string `yaml:"heading"`
	FoodX   int    `yaml:"food_x"`
	FoodY   int    `yaml:"food_y"`
}

// Headings accepted by StartConfig.Heading.
var Headings = []string{"up", "down", "left", "right"}

// SpawnX returns the column of the snake's initial segment.
func (c SnakeConfig) SpawnX() int {
	return c.Grid.Cols / 2
}

// SpawnY returns the row of the snake's initial segment.
func (c SnakeConfig) SpawnY() int {
	return c.Grid.Rows / 2
}

// GridKey identifies the grid geometry, e.g. "30x20".
// Scores are only comparable between runs on the same grid.
func (c SnakeConfig) GridKey() string {
	return fmt.Sprintf("%dx%d", c.Grid.Cols, c.Grid.Rows)
}

// Validate checks the configuration for values a session cannot run with.
func (c SnakeConfig) Validate() error {
	if c.Grid.Cols < 2 || c.Grid.Rows < 2 {
		return fmt.Errorf("%w: %dx%d, need at least 2x2", ErrInvalidGrid, c.Grid.Cols, c.Grid.Rows)
	}
	if c.Grid.CellWidth < 1 {
		return fmt.Errorf("%w: cell_width %d", ErrInvalidGrid, c.Grid.CellWidth)
	}
	if c.Timing.TicksPerSecond < 1 || c.Timing.FramesPerSecond < 1 {
		return fmt.Errorf("%w: ticks_per_second %d, frames_per_second %d",
			ErrInvalidTiming, c.Timing.TicksPerSecond, c.Timing.FramesPerSecond)
	}

	heading := strings.ToLower(c.Start.Heading)
	known := false
	for _, h := range Headings {
		if h == heading {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: unknown heading %q", ErrInvalidStart, c.Start.Heading)
	}

	fx, fy := c.Start.FoodX, c.Start.FoodY
	if fx < 0 || fx >= c.Grid.Cols || fy < 0 || fy >= c.Grid.Rows {
		return fmt.Errorf("%w: food (%d, %d) outside %s grid", ErrInvalidStart, fx, fy, c.GridKey())
	}
	if fx == c.SpawnX() && fy == c.SpawnY() {
		return fmt.Errorf("%w: food (%d, %d) on spawn cell", ErrInvalidStart, fx, fy)
	}
	return nil
}
