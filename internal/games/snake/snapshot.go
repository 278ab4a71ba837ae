package snake

// State is the coarse session state.
type State string

const (
	StatePlaying  State = "playing"
	StateGameOver State = "game_over"
)

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Heading  Direction
	FoodX    int
	FoodY    int
	Phase    Phase
	State    State
	Cause    Cause
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.over {
		state = StateGameOver
	}

	head := g.snake.Head()
	return Snapshot{
		Tick:     g.ticks,
		Score:    g.score,
		SnakeLen: g.snake.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Heading:  g.snake.Heading(),
		FoodX:    g.food.Position.X,
		FoodY:    g.food.Position.Y,
		Phase:    g.phase,
		State:    state,
		Cause:    g.cause,
	}
}
