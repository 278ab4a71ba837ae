package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:         lipgloss.Color("0"),
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorGray:          lipgloss.Color("245"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorDarkGreen:     lipgloss.Color("22"),
}

type colorPair struct {
	fg, bg core.Color
}

// styles caches one lipgloss style per foreground/background pair.
// Only touched from the Bubble Tea goroutine.
var styles = map[colorPair]lipgloss.Style{}

func styleFor(p colorPair) lipgloss.Style {
	if s, ok := styles[p]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c, ok := palette[p.fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := palette[p.bg]; ok {
		s = s.Background(c)
	}
	styles[p] = s
	return s
}

// run is a horizontal span of cells sharing colors.
type run struct {
	colors colorPair
	text   string
}

// rowRuns splits row y into runs of identically colored cells.
func rowRuns(s *core.Screen, y int) []run {
	var runs []run
	x := 0
	for x < s.Width() {
		cell := s.GetCell(x, y)
		colors := colorPair{fg: cell.Color, bg: cell.Background}

		var text strings.Builder
		for x < s.Width() {
			cell = s.GetCell(x, y)
			if cell.Color != colors.fg || cell.Background != colors.bg {
				break
			}
			text.WriteRune(cell.Rune)
			x++
		}
		runs = append(runs, run{colors: colors, text: text.String()})
	}
	return runs
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors share one styled run to keep the
// number of ANSI escape sequences down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, r := range rowRuns(s, y) {
			if r.colors == (colorPair{}) {
				sb.WriteString(r.text)
				continue
			}
			sb.WriteString(styleFor(r.colors).Render(r.text))
		}
	}
	return sb.String()
}

// centerText pads text with spaces to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
