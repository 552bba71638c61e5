package terminal

import (
	"fmt"

	"snake-wrap/game"
	"snake-wrap/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth = 2 // Terminal glyphs are about half as wide as tall
	fieldTop  = 1 // Row 0 holds the status line
	blockRune = '█'
	foodRune  = '●'
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHint   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

type Renderer struct {
	screen tcell.Screen
	grid   types.Grid
}

func NewRenderer(screen tcell.Screen, grid types.Grid) *Renderer {
	return &Renderer{screen: screen, grid: grid}
}

// cellOrigin maps a field cell to its top-left terminal column and row,
// inside the border.
func (r *Renderer) cellOrigin(p types.Point) (int, int) {
	col := p.X / r.grid.CellSize
	row := p.Y / r.grid.CellSize
	return 1 + col*cellWidth, fieldTop + 1 + row
}

func (r *Renderer) Draw(snap game.Snapshot) {
	r.screen.Clear()

	r.drawBorder()
	if snap.Running {
		r.drawField(snap)
		r.drawText(0, 0, fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best), styleText)
	} else {
		r.drawGameOver(snap)
	}
	r.drawText(0, fieldTop+r.grid.Rows()+2, "arrows/wasd move  r restart  q quit", styleHint)

	r.screen.Show()
}

func (r *Renderer) drawBorder() {
	right := r.grid.Columns()*cellWidth + 1
	bottom := fieldTop + r.grid.Rows() + 1

	for x := 1; x < right; x++ {
		r.screen.SetContent(x, fieldTop, '─', nil, styleBorder)
		r.screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := fieldTop + 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, styleBorder)
		r.screen.SetContent(right, y, '│', nil, styleBorder)
	}
	r.screen.SetContent(0, fieldTop, '┌', nil, styleBorder)
	r.screen.SetContent(right, fieldTop, '┐', nil, styleBorder)
	r.screen.SetContent(0, bottom, '└', nil, styleBorder)
	r.screen.SetContent(right, bottom, '┘', nil, styleBorder)
}

func (r *Renderer) drawField(snap game.Snapshot) {
	snakeStyle := tcell.StyleDefault.Foreground(
		tcell.NewRGBColor(int32(snap.Color.R), int32(snap.Color.G), int32(snap.Color.B)))

	x, y := r.cellOrigin(snap.Food)
	r.screen.SetContent(x, y, foodRune, nil, styleFood)

	for _, p := range snap.Body {
		x, y := r.cellOrigin(p)
		for i := 0; i < cellWidth; i++ {
			r.screen.SetContent(x+i, y, blockRune, nil, snakeStyle)
		}
	}
}

func (r *Renderer) drawGameOver(snap game.Snapshot) {
	lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", snap.Score)}

	width := r.grid.Columns()*cellWidth + 2
	y := fieldTop + 1 + r.grid.Rows()/2 - len(lines)/2
	for _, line := range lines {
		x := (width - len([]rune(line))) / 2
		r.drawText(x, y, line, styleText)
		y++
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
