package window

import (
	"fmt"

	"snake-wrap/game"
	"snake-wrap/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	buttonBarHeight = 40 // Strip under the field holding the restart button
	buttonWidth     = 140
	buttonHeight    = 28
	scoreFontSize   = 20
	gameOverSize    = 30
)

type Renderer struct {
	grid         types.Grid
	screenWidth  int32
	screenHeight int32
	button       rl.Rectangle
}

func NewRenderer(grid types.Grid) *Renderer {
	r := &Renderer{grid: grid}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions lays out the field at the top of the window with the
// button bar below it.
func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(r.grid.Width)
	r.screenHeight = int32(r.grid.Height) + buttonBarHeight

	r.button = rl.NewRectangle(
		float32(r.screenWidth-buttonWidth)/2,
		float32(r.grid.Height)+float32(buttonBarHeight-buttonHeight)/2,
		buttonWidth,
		buttonHeight,
	)
}

func (r *Renderer) ScreenSize() (int32, int32) {
	return r.screenWidth, r.screenHeight
}

// ButtonHit reports whether the restart button was clicked this frame.
func (r *Renderer) ButtonHit() bool {
	return rl.IsMouseButtonPressed(rl.MouseButtonLeft) &&
		rl.CheckCollisionPointRec(rl.GetMousePosition(), r.button)
}

func (r *Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.LightGray)

	// Field
	rl.DrawRectangle(0, 0, int32(r.grid.Width), int32(r.grid.Height), rl.Black)

	if snap.Running {
		r.drawField(snap)
	} else {
		r.drawGameOver(snap)
	}

	r.drawButton()
	rl.EndDrawing()
}

func (r *Renderer) drawField(snap game.Snapshot) {
	cell := int32(r.grid.CellSize)
	snakeColor := rl.Color{R: snap.Color.R, G: snap.Color.G, B: snap.Color.B, A: 255}

	for _, p := range snap.Body {
		rl.DrawRectangle(int32(p.X), int32(p.Y), cell, cell, snakeColor)
		rl.DrawRectangleLines(int32(p.X), int32(p.Y), cell, cell, rl.Black)
	}

	rl.DrawRectangle(int32(snap.Food.X), int32(snap.Food.Y), cell, cell, rl.Red)
	rl.DrawRectangleLines(int32(snap.Food.X), int32(snap.Food.Y), cell, cell, rl.Black)

	label := fmt.Sprintf("Score: %d", snap.Score)
	rl.DrawText(label, 10, 5, scoreFontSize, rl.White)

	best := fmt.Sprintf("Best: %d", snap.Best)
	bestWidth := rl.MeasureText(best, scoreFontSize)
	rl.DrawText(best, r.screenWidth-bestWidth-10, 5, scoreFontSize, rl.Gray)
}

func (r *Renderer) drawGameOver(snap game.Snapshot) {
	lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", snap.Score)}

	centerY := int32(r.grid.Height) / 2
	y := centerY - int32(len(lines))*gameOverSize/2
	for _, line := range lines {
		width := rl.MeasureText(line, gameOverSize)
		rl.DrawText(line, (int32(r.grid.Width)-width)/2, y, gameOverSize, rl.White)
		y += gameOverSize
	}
}

func (r *Renderer) drawButton() {
	color := rl.RayWhite
	if rl.CheckCollisionPointRec(rl.GetMousePosition(), r.button) {
		color = rl.White
	}
	rl.DrawRectangleRec(r.button, color)
	rl.DrawRectangleLinesEx(r.button, 1, rl.DarkGray)

	const label = "Restart Game"
	const fontSize = 16
	width := rl.MeasureText(label, fontSize)
	rl.DrawText(label,
		int32(r.button.X)+(int32(r.button.Width)-width)/2,
		int32(r.button.Y)+(int32(r.button.Height)-fontSize)/2,
		fontSize, rl.Black)
}
