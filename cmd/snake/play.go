package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagCols int
	flagRows int
	flagTPS  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a snake session.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  R            - Restart (after game over)
  Q/Esc/Ctrl+C - Quit

Examples:
  snake play
  snake play --cols 40 --rows 25
  snake play --tps 15 --seed 7
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Grid columns (overrides config)")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Grid rows (overrides config)")
	playCmd.Flags().IntVar(&flagTPS, "tps", 0, "Ticks per second (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	exitOnError("config", err)

	// Flags override the file
	if cmd.Flags().Changed("cols") {
		cfg.Grid.Cols = flagCols
	}
	if cmd.Flags().Changed("rows") {
		cfg.Grid.Rows = flagRows
	}
	if cmd.Flags().Changed("tps") {
		cfg.Timing.TicksPerSecond = flagTPS
	}

	// The alt screen owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	exitOnError("logger", err)
	defer closeLog()

	game, err := snake.NewGame(cfg, snake.WithSeed(flagSeed), snake.WithLogger(logger))
	exitOnError("config", err)

	// Check the terminal can hold the playfield
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if needW, needH := game.RequiredSize(); width < needW || height < needH {
		fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, the %s grid needs at least %dx%d\n",
			width, height, cfg.GridKey(), needW, needH)
		fmt.Fprintln(os.Stderr, "Resize the terminal or pass smaller --cols/--rows.")
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("session start", "grid", cfg.GridKey(), "tps", cfg.Timing.TicksPerSecond, "seed", flagSeed)
	result, runErr := tui.Run(game, store, tui.RuntimeConfig(cfg, width, height, flagSeed), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	logger.Info("session end", "score", result.Score, "length", result.Length, "ticks", result.Ticks, "cause", result.Cause)
	fmt.Printf("Congratulations, your score was: %d\n", result.Score)
}
