package window

import (
	"context"
	"log/slog"

	"snake-wrap/game"
	"snake-wrap/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyDirections = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyRight: types.Right,
	rl.KeyW:     types.Up,
	rl.KeyS:     types.Down,
	rl.KeyA:     types.Left,
	rl.KeyD:     types.Right,
}

type Options struct {
	Title  string
	FPS    int32
	Logger *slog.Logger
}

// Run opens the window and drives g from the frame loop until the window is
// closed or ctx is cancelled. Input, ticks and drawing all happen on the
// calling goroutine, which must be the main thread.
func Run(ctx context.Context, g *game.Game, opts Options) error {
	if opts.Title == "" {
		opts.Title = "Snake Game"
	}
	if opts.FPS == 0 {
		opts.FPS = 60
	}
	log := slog.Default()
	if opts.Logger != nil {
		log = opts.Logger
	}
	log = log.With("component", "window")

	renderer := NewRenderer(g.Grid)
	width, height := renderer.ScreenSize()

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(width, height, opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(opts.FPS)

	log.Info("window opened", "width", width, "height", height)

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			log.Info("context cancelled, closing window")
			return nil
		}

		if quit := handleInput(g, renderer); quit {
			break
		}

		g.Update()
		renderer.Draw(g.Snapshot())
	}

	log.Info("window closed")
	return nil
}

// handleInput drains the key queue in press order, so of several direction
// keys hit within one frame the last one is what the next tick uses.
func handleInput(g *game.Game, renderer *Renderer) (quit bool) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if dir, ok := keyDirections[key]; ok {
			g.RequestDirection(dir)
			continue
		}
		switch key {
		case rl.KeyR:
			g.Restart()
		case rl.KeyQ:
			return true
		}
	}

	if renderer.ButtonHit() {
		g.Restart()
	}
	return false
}
