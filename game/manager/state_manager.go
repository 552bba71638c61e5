package manager

import (
	"time"
)

// maxHistory caps the number of finished games kept in memory.
const maxHistory = 50

// GameRecord describes one finished game.
type GameRecord struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Length    int
}

// Duration returns how long the game ran.
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps session statistics for the lifetime of the process.
// Nothing is written to disk.
type StateManager struct {
	highScore    int
	scoreHistory []GameRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]GameRecord, 0),
	}
}

// AddToHistory records a finished game and updates the session best.
func (sm *StateManager) AddToHistory(record GameRecord) {
	if len(sm.scoreHistory) >= maxHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, record)
	sm.UpdateScore(record.Score)
}

func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []GameRecord {
	history := make([]GameRecord, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return history
}

// GamesPlayed returns the number of games recorded, capped at the history size.
func (sm *StateManager) GamesPlayed() int {
	return len(sm.scoreHistory)
}
