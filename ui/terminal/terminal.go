package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"snake-wrap/game"
	"snake-wrap/game/types"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var keyDirections = map[tcell.Key]types.Direction{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
	tcell.KeyRight: types.Right,
}

var runeDirections = map[rune]types.Direction{
	'w': types.Up,
	's': types.Down,
	'a': types.Left,
	'd': types.Right,
}

type Options struct {
	// Screen overrides the terminal screen; nil opens the real terminal.
	Screen tcell.Screen
	Logger *slog.Logger
}

// Run takes over the terminal and drives g until q/Esc/Ctrl-C or ctx is
// cancelled. Events are read on a helper goroutine and handed over a channel,
// so the game itself is only touched from the loop below.
func Run(ctx context.Context, g *game.Game, opts Options) error {
	log := slog.Default()
	if opts.Logger != nil {
		log = opts.Logger
	}
	log = log.With("component", "terminal")

	screen := opts.Screen
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	renderer := NewRenderer(screen, g.Grid)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Info("terminal ready")

	for {
		select {
		case <-ctx.Done():
			log.Info("context cancelled, leaving terminal")
			return nil

		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quit := HandleKey(g, ev); quit {
					log.Info("quit requested")
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			g.Update()
			renderer.Draw(g.Snapshot())
		}
	}
}

// HandleKey applies one key press to g and reports whether the player asked
// to quit.
func HandleKey(g *game.Game, ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ch := ev.Rune(); ch {
		case 'q', 'Q':
			return true
		case 'r', 'R':
			g.Restart()
		default:
			if dir, ok := runeDirections[ch]; ok {
				g.RequestDirection(dir)
			}
		}
	default:
		if dir, ok := keyDirections[ev.Key()]; ok {
			g.RequestDirection(dir)
		}
	}
	return false
}
