package audio

import (
	"errors"
	"time"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat      SoundType = iota // Food eaten
	SoundGameOver                  // Snake hit itself
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Tone parameters
const (
	EatFrequency = 800.0
	EatDuration  = 100 * time.Millisecond
	EatAttack    = 5 * time.Millisecond
	EatRelease   = 30 * time.Millisecond

	GameOverFrequency = 300.0
	GameOverDuration  = 400 * time.Millisecond
	GameOverAttack    = 10 * time.Millisecond
	GameOverRelease   = 150 * time.Millisecond
)

// ErrAudioDisabled is returned by Initialize when audio is switched off.
var ErrAudioDisabled = errors.New("audio disabled")

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int
}

func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
	}
}
