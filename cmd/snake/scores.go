package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for the configured grid size.
Scores from different grid sizes are kept apart.

Examples:
  snake scores
  snake scores --config ./big-grid.yaml
  snake scores --interactive
  snake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores for every grid size")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the scores of the configured grid")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	exitOnError("config", err)
	grid := cfg.GridKey()

	logger, closeLog, err := newLogger(os.Stderr)
	exitOnError("logger", err)
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(snake.ID, grid); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		logger.Info("scores cleared", "grid", grid)
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, grid, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		}
		return
	}

	// Get top scores
	scores, err := store.TopScores(snake.ID, grid, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	// Display scores
	fmt.Printf("High Scores - Snake %s\n", grid)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-5s  %s\n", "Rank", "Score", "Length", "Ticks", "Cause", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-5s  %s\n", "----", "-----", "------", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %-6d  %-5s  %s\n",
			i+1, entry.Score, entry.Length, entry.Ticks, entry.Cause, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(snake.ID, grid)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
