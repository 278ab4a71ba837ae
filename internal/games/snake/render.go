package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const hudHeight = 1

// Cell styles for the playfield.
var (
	fieldCell = core.Cell{Rune: ' ', Background: core.ColorDarkGreen}
	bodyCell  = core.Cell{Rune: '█', Color: core.ColorYellow, Background: core.ColorDarkGreen}
	headCell  = core.Cell{Rune: '█', Color: core.ColorBrightYellow, Background: core.ColorDarkGreen}
	foodCell  = core.Cell{Rune: '█', Color: core.ColorBrightMagenta, Background: core.ColorDarkGreen}
)

// RequiredSize returns the smallest screen that fits the HUD and the
// bordered playfield for cfg-sized grids.
func (g *Game) RequiredSize() (w, h int) {
	return g.Cols()*g.cfg.Grid.CellWidth + 2, g.Rows() + 2 + hudHeight
}

// Playfield returns the screen rectangle of the grid interior, or false if
// the screen is too small to hold it.
func (g *Game) Playfield(screenW, screenH int) (core.Rect, bool) {
	w, h := g.RequiredSize()
	if screenW < w || screenH < h {
		return core.Rect{}, false
	}
	frame := core.NewRect((screenW-w)/2, hudHeight, w, h-hudHeight)
	return frame.Inset(1), true
}

// Render draws the HUD, the playfield, the snake and the food into dst.
// It only reads game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	field, ok := g.Playfield(dst.Width(), dst.Height())
	if !ok {
		w, h := g.RequiredSize()
		DrawOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	dst.DrawBox(field.Inset(-1), core.ColorGray)
	dst.DrawRect(field, fieldCell)

	g.drawCell(dst, field, g.food.Position, foodCell)
	g.snake.Body().Each(func(i int, p Point) {
		if i == 0 {
			g.drawCell(dst, field, p, headCell)
			return
		}
		g.drawCell(dst, field, p, bodyCell)
	})

	if g.over {
		DrawOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  R: restart  Q: quit", g.score))
	}
}

// drawCell fills the CellWidth screen columns of one grid cell.
func (g *Game) drawCell(dst *core.Screen, field core.Rect, p Point, c core.Cell) {
	cw := g.cfg.Grid.CellWidth
	for i := 0; i < cw; i++ {
		dst.SetCell(field.X+p.X*cw+i, field.Y+p.Y, c)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake | Score: %d  Length: %d", g.score, g.snake.Len())
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)
}

// DrawOverlay draws a centered two-line message box.
func DrawOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	box := dst.Bounds().Centered(maxLen+4, 5)

	dst.DrawRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
