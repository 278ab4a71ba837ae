package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultSnakeConfig() %+v", cfg, DefaultSnakeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("grid:\n  cols: 12\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Grid.Cols != 12 {
		t.Errorf("Cols = %d, expected 12", cfg.Grid.Cols)
	}
	if cfg.Grid.Rows != 20 {
		t.Errorf("Rows = %d, expected default 20", cfg.Grid.Rows)
	}
	if cfg.Timing.TicksPerSecond != 10 {
		t.Errorf("TicksPerSecond = %d, expected default 10", cfg.Timing.TicksPerSecond)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("grid:\n  cols: 8\n  rows: 6\nstart:\n  food_x: 1\n  food_y: 1\n  heading: up\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.GridKey() != "8x6" {
		t.Errorf("GridKey() = %q, expected 8x6", cfg.GridKey())
	}
	if cfg.Start.Heading != "up" {
		t.Errorf("Heading = %q, expected up", cfg.Start.Heading)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  cols: 1\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("Load() error = %v, expected ErrInvalidGrid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		want   error
	}{
		{"defaults", func(*SnakeConfig) {}, nil},
		{"too few cols", func(c *SnakeConfig) { c.Grid.Cols = 1 }, ErrInvalidGrid},
		{"too few rows", func(c *SnakeConfig) { c.Grid.Rows = 0 }, ErrInvalidGrid},
		{"zero cell width", func(c *SnakeConfig) { c.Grid.CellWidth = 0 }, ErrInvalidGrid},
		{"zero tick rate", func(c *SnakeConfig) { c.Timing.TicksPerSecond = 0 }, ErrInvalidTiming},
		{"zero frame rate", func(c *SnakeConfig) { c.Timing.FramesPerSecond = 0 }, ErrInvalidTiming},
		{"unknown heading", func(c *SnakeConfig) { c.Start.Heading = "north" }, ErrInvalidStart},
		{"uppercase heading", func(c *SnakeConfig) { c.Start.Heading = "LEFT" }, nil},
		{"food outside grid", func(c *SnakeConfig) { c.Start.FoodX = 30 }, ErrInvalidStart},
		{"negative food", func(c *SnakeConfig) { c.Start.FoodY = -1 }, ErrInvalidStart},
		{"food on spawn", func(c *SnakeConfig) { c.Start.FoodX, c.Start.FoodY = 15, 10 }, ErrInvalidStart},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestSpawnCell(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if cfg.SpawnX() != 15 || cfg.SpawnY() != 10 {
		t.Errorf("spawn = (%d, %d), expected (15, 10)", cfg.SpawnX(), cfg.SpawnY())
	}
}

func TestMarshalRoundTripKeepsKeys(t *testing.T) {
	data, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}
