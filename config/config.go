package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"snake-wrap/game/types"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

var (
	ErrInvalidGrid     = errors.New("invalid grid")
	ErrInvalidSpeed    = errors.New("speed must be positive")
	ErrInvalidFrontend = errors.New("unknown frontend")
	ErrInvalidVolume   = errors.New("audio volume must be within [0, 1]")
)

type Config struct {
	Width      int           `yaml:"width" env:"SNAKE_WIDTH" env-default:"400"`
	Height     int           `yaml:"height" env:"SNAKE_HEIGHT" env-default:"400"`
	CellSize   int           `yaml:"cell-size" env:"SNAKE_CELL_SIZE" env-default:"20"`
	Speed      time.Duration `yaml:"speed" env:"SNAKE_SPEED" env-default:"120ms"`
	Seed       uint64        `yaml:"seed" env:"SNAKE_SEED" env-default:"0"`
	AvoidSnake bool          `yaml:"food-avoid-snake" env:"SNAKE_FOOD_AVOID_SNAKE" env-default:"false"`
	Frontend   string        `yaml:"frontend" env:"SNAKE_FRONTEND" env-default:"window"`
	Audio      Audio         `yaml:"audio"`
	LogLevel   string        `yaml:"log-level" env:"SNAKE_LOG_LEVEL" env-default:"info"`
	LogFormat  string        `yaml:"log-format" env:"SNAKE_LOG_FORMAT" env-default:"text"`
	LogFile    string        `yaml:"log-file" env:"SNAKE_LOG_FILE" env-default:""`
}

type Audio struct {
	Mute       bool    `yaml:"mute" env:"SNAKE_AUDIO_MUTE" env-default:"false"`
	Volume     float64 `yaml:"volume" env:"SNAKE_AUDIO_VOLUME" env-default:"0.5"`
	SampleRate int     `yaml:"sample-rate" env:"SNAKE_AUDIO_SAMPLE_RATE" env-default:"44100"`
}

// Load reads path when it names an existing file and the environment otherwise.
// Environment variables override file values either way.
func Load(path string) (*Config, error) {
	conf := &Config{}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, conf); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
			return conf, conf.Validate()
		}
	}

	if err := cleanenv.ReadEnv(conf); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	return conf, conf.Validate()
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	conf, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}
	return conf
}

func (c *Config) Validate() error {
	switch {
	case c.CellSize <= 0 || c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: extents and cell size must be positive", ErrInvalidGrid)
	case c.Width%c.CellSize != 0 || c.Height%c.CellSize != 0:
		return fmt.Errorf("%w: %dx%d is not a multiple of cell size %d", ErrInvalidGrid, c.Width, c.Height, c.CellSize)
	case c.Width/c.CellSize < types.InitialLength:
		return fmt.Errorf("%w: need at least %d columns", ErrInvalidGrid, types.InitialLength)
	case c.Speed <= 0:
		return ErrInvalidSpeed
	case c.Frontend != FrontendWindow && c.Frontend != FrontendTerminal:
		return fmt.Errorf("%w: %q", ErrInvalidFrontend, c.Frontend)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return ErrInvalidVolume
	}
	return nil
}

func (c *Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height, CellSize: c.CellSize}
}
