// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal loop, input mapping, rendering and scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one logical game step.
// Gen identifies the tick loop that scheduled it; messages from a stopped
// loop (after pause or restart) are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// FrameMsg triggers a redraw. Frames run on their own clock, independent of ticks.
type FrameMsg time.Time

// tickCmd schedules the next TickMsg at the given rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	return tea.Tick(interval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// frameCmd schedules the next FrameMsg at the given rate.
func frameCmd(frameRate int) tea.Cmd {
	return tea.Tick(interval(frameRate), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func interval(rate int) time.Duration {
	if rate <= 0 {
		rate = 1
	}
	return time.Second / time.Duration(rate)
}
