package core

// RuntimeConfig contains configuration passed from the platform to a game session.
// Logical ticks and render frames run on independent clocks.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second
	FrameRate int   // Render frames per second
	Seed      int64 // RNG seed, 0 means derive from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  10,
		FrameRate: 30,
		Seed:      0,
	}
}
