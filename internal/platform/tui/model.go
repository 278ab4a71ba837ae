package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// causeQuit marks runs that ended because the player left mid-game.
const causeQuit = "quit"

// Result summarizes a session when the program exits.
type Result struct {
	Score  int
	Length int
	Ticks  uint64
	Over   bool
	Cause  snake.Cause
}

// Model is the Bubble Tea model driving one snake session.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	tickGen    int // Current tick loop; stale TickMsgs are dropped
	paused     bool
	quitting   bool
	scoreSaved bool // Whether the current run has been recorded
}

// NewModel creates a Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game *snake.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger,
		keys:   NewKeyMapper(),
		config: cfg,
	}
}

// Init starts the tick and frame loops.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.config.TickRate, m.tickGen),
		frameCmd(m.config.FrameRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case FrameMsg:
		if m.quitting {
			return m, nil
		}
		return m, frameCmd(m.config.FrameRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
// Direction changes apply immediately, between ticks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.recordQuit()
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if m.game.Over() {
			return m, nil
		}
		m.paused = !m.paused
		m.tickGen++
		if m.paused {
			m.logger.Debug("paused", "tick", m.game.Ticks())
			return m, nil
		}
		m.logger.Debug("resumed", "tick", m.game.Ticks())
		return m, tickCmd(m.config.TickRate, m.tickGen)

	case core.ActionRestart:
		if !m.game.Over() {
			return m, nil
		}
		m.game.Reset()
		m.scoreSaved = false
		m.paused = false
		m.tickGen++
		m.logger.Info("restart")
		return m, tickCmd(m.config.TickRate, m.tickGen)
	}

	if dir, ok := DirectionFor(action); ok && !m.paused {
		m.game.SetHeading(dir)
	}
	return m, nil
}

// handleResize processes window resize events.
// The grid has a fixed size, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the session by one step.
// The loop stops on game over and restarts with a new generation.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen || m.paused || m.game.Over() {
		return m, nil
	}

	if !m.game.Tick() {
		m.recordGameOver()
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// recordGameOver saves the finished run once.
func (m *Model) recordGameOver() {
	m.save(m.game.Cause().String())
}

// recordQuit saves a run abandoned with a non-zero score.
func (m *Model) recordQuit() {
	if m.game.Over() {
		return
	}
	m.save(causeQuit)
}

func (m *Model) save(cause string) {
	if m.scoreSaved || m.game.Score() == 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	entry := storage.ScoreEntry{
		GameID: snake.ID,
		Grid:   m.game.Config().GridKey(),
		Score:  m.game.Score(),
		Length: m.game.Snake().Len(),
		Ticks:  int64(m.game.Ticks()),
		Cause:  cause,
	}
	// Best-effort save, the session continues regardless.
	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Error("save score", "err", err)
		return
	}
	m.logger.Debug("score saved", "score", entry.Score, "grid", entry.Grid, "cause", cause)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused {
		snake.DrawOverlay(m.screen, "Paused", "P: resume  Q: quit")
	}
	return RenderScreen(m.screen)
}

// Paused reports whether the tick loop is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Result returns the session summary.
func (m Model) Result() Result {
	return Result{
		Score:  m.game.Score(),
		Length: m.game.Snake().Len(),
		Ticks:  m.game.Ticks(),
		Over:   m.game.Over(),
		Cause:  m.game.Cause(),
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *snake.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (Result, error) {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	if m, ok := finalModel.(Model); ok {
		return m.Result(), nil
	}
	return model.Result(), nil
}

// RuntimeConfig builds the platform settings for a snake config.
func RuntimeConfig(cfg config.SnakeConfig, screenW, screenH int, seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if screenW > 0 && screenH > 0 {
		rc.ScreenW = screenW
		rc.ScreenH = screenH
	}
	rc.TickRate = cfg.Timing.TicksPerSecond
	rc.FrameRate = cfg.Timing.FramesPerSecond
	rc.Seed = seed
	return rc
}
