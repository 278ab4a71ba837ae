// Package snake implements the snake game session: the entity, the food it
// seeks and the per-tick state update. It has no terminal dependencies; the
// platform drives it with Tick, SetHeading and Render.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// ID is the identifier under which scores are stored.
const ID = "snake"

// Phase is the growth state carried from one tick to the next.
type Phase int

const (
	// PhaseNormal: the next move vacates the tail.
	PhaseNormal Phase = iota
	// PhaseGrowthPending: food was eaten on the previous tick; the next
	// move keeps the tail and scores the point.
	PhaseGrowthPending
)

func (p Phase) String() string {
	switch p {
	case PhaseNormal:
		return "normal"
	case PhaseGrowthPending:
		return "growth_pending"
	default:
		return "unknown"
	}
}

// Game is a single snake session.
type Game struct {
	cfg     config.SnakeConfig
	heading Direction
	rng     Rand
	logger  *log.Logger

	snake *Snake
	food  Food
	score int
	phase Phase
	ticks uint64
	over  bool
	cause Cause
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source for food placement.
func WithRand(rng Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithSeed seeds a math/rand source for food placement.
// A zero seed uses the current time.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger for game events.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// NewGame creates a session for the given configuration.
// The configuration must be valid; see config.SnakeConfig.Validate.
func NewGame(cfg config.SnakeConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	heading, err := ParseDirection(cfg.Start.Heading)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		heading: heading,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		WithSeed(0)(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.Reset()
	return g, nil
}

// Reset restarts the session: one segment at the grid center, food at the
// configured start cell, score zero. The random source keeps its state.
func (g *Game) Reset() {
	g.snake = NewSnake(Point{X: g.cfg.SpawnX(), Y: g.cfg.SpawnY()}, g.heading)
	g.food = Food{Position: Point{X: g.cfg.Start.FoodX, Y: g.cfg.Start.FoodY}}
	g.score = 0
	g.phase = PhaseNormal
	g.ticks = 0
	g.over = false
	g.cause = CauseNone
}

// Tick advances the session by one step and reports whether it continues.
//
// Food eaten on one tick is paid out on the next: that tick's move keeps the
// tail and the score goes up by one. After a failed move the session is over
// and every later Tick returns false without changing anything.
func (g *Game) Tick() bool {
	if g.over {
		return false
	}

	growing := g.phase == PhaseGrowthPending
	if cause := g.snake.Move(growing, g.Cols(), g.Rows()); cause != CauseNone {
		g.over = true
		g.cause = cause
		head := g.snake.Head()
		g.logger.Debug("collision", "cause", cause, "x", head.X, "y", head.Y, "heading", g.snake.Heading())
		g.logger.Info("game over", "score", g.score, "length", g.snake.Len(), "ticks", g.ticks)
		return false
	}
	g.ticks++

	if growing {
		g.score++
		g.phase = PhaseNormal
	}

	if g.food.IsConsumed(g.snake) {
		g.phase = PhaseGrowthPending
		g.logger.Debug("yummy", "x", g.food.Position.X, "y", g.food.Position.Y, "tick", g.ticks)
		if !g.food.Respawn(g.snake, g.Cols(), g.Rows(), g.rng) {
			g.logger.Warn("no free cell for food", "length", g.snake.Len())
		}
	}

	return true
}

// SetHeading requests a new heading. Reversals are rejected; requests
// after game over are ignored. Returns whether the heading was accepted.
func (g *Game) SetHeading(d Direction) bool {
	if g.over {
		return false
	}
	return g.snake.SetHeading(d)
}

// Score returns the number of food items paid out so far.
func (g *Game) Score() int {
	return g.score
}

// Over reports whether the session has ended.
func (g *Game) Over() bool {
	return g.over
}

// Cause returns what ended the session, or CauseNone while it runs.
func (g *Game) Cause() Cause {
	return g.cause
}

// Ticks returns the number of successful ticks.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Phase returns the growth state carried into the next tick.
func (g *Game) Phase() Phase {
	return g.phase
}

// JustConsumed reports whether food was eaten on the last tick.
func (g *Game) JustConsumed() bool {
	return g.phase == PhaseGrowthPending
}

// Snake returns the entity. Callers must not mutate it.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the current food position.
func (g *Game) Food() Point {
	return g.food.Position
}

// Cols returns the grid width in cells.
func (g *Game) Cols() int {
	return g.cfg.Grid.Cols
}

// Rows returns the grid height in cells.
func (g *Game) Rows() int {
	return g.cfg.Grid.Rows
}

// Config returns the session configuration.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	head := g.snake.Head()
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Phase: %s\n", g.ticks, g.score, g.phase)
	fmt.Fprintf(&b, "Snake len: %d, Heading: %s\n", g.snake.Len(), g.snake.Heading())
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", head.X, head.Y, g.food.Position.X, g.food.Position.Y)
	fmt.Fprintf(&b, "Over: %v, Cause: %s\n", g.over, g.cause)
	return b.String()
}
