package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"snake-wrap/audio"
	"snake-wrap/config"
	"snake-wrap/game"
	"snake-wrap/ui/terminal"
	"snake-wrap/ui/window"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "config.yml", "Path to a YAML config file (optional)")
	speed := flag.Int("speed", 0, "Game speed in milliseconds per tick (overrides config)")
	frontend := flag.String("frontend", "", "Frontend to use: window or terminal (overrides config)")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	if *speed > 0 {
		conf.Speed = time.Duration(*speed) * time.Millisecond
	}
	if *frontend != "" {
		conf.Frontend = *frontend
	}
	if err := conf.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger, closeLog := initLogger(conf)
	defer closeLog()

	if err := run(logger, conf); err != nil {
		logger.Error("snake exited with error", "error", err)
		closeLog()
		os.Exit(1)
	}
}

func run(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	notifier := initAudio(logger, conf)
	if sm, ok := notifier.(*audio.SoundManager); ok {
		defer sm.Cleanup()
	}

	g := game.NewGame(conf.Grid(),
		game.WithSpeed(conf.Speed),
		game.WithSeed(conf.Seed),
		game.WithNotifier(notifier),
		game.WithLogger(logger),
		game.WithFoodAvoidingSnake(conf.AvoidSnake),
	)

	logger.Info("starting",
		"frontend", conf.Frontend,
		"grid", fmt.Sprintf("%dx%d/%d", conf.Width, conf.Height, conf.CellSize),
		"speed", conf.Speed)

	switch conf.Frontend {
	case config.FrontendTerminal:
		return terminal.Run(ctx, g, terminal.Options{Logger: logger})
	default:
		return window.Run(ctx, g, window.Options{Logger: logger})
	}
}

// initAudio opens the speaker, falling back to silence when it cannot.
func initAudio(logger *slog.Logger, conf *config.Config) game.Notifier {
	cfg := &audio.AudioConfig{
		Enabled:      !conf.Audio.Mute,
		MasterVolume: conf.Audio.Volume,
		SampleRate:   conf.Audio.SampleRate,
	}

	sm := audio.NewSoundManager(cfg, logger)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return audio.Silent{}
	}
	return sm
}

// initLogger builds the slog logger. The terminal frontend owns the screen,
// so it logs nowhere unless a log file is configured.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var level slog.Level
	switch strings.ToLower(conf.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case conf.LogFile != "":
		f, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Errorf("open log file: %w", err))
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case conf.Frontend == config.FrontendTerminal:
		out = io.Discard
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(conf.LogFormat) == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, closeFn
}
