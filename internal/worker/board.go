package worker

import (
	"sync"
	"time"

	"github.com/spec-kit/sportstats/internal/domain"
)

// LiveScores is the latest live score refresh.
type LiveScores struct {
	Scores    []domain.LiveScore `json:"scores"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// LiveBoard holds the latest clock reading and live scores.
type LiveBoard struct {
	mu     sync.RWMutex
	clock  domain.ClockReading
	scores LiveScores
}

// NewLiveBoard returns an empty board.
func NewLiveBoard() *LiveBoard {
	return &LiveBoard{scores: LiveScores{Scores: []domain.LiveScore{}}}
}

// SetClock stores reading.
func (b *LiveBoard) SetClock(reading domain.ClockReading) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clock = reading
}

// Clock returns the last reading and whether the clock has ticked yet.
func (b *LiveBoard) Clock() (domain.ClockReading, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.clock, !b.clock.At.IsZero()
}

// SetScores replaces the live scores.
func (b *LiveBoard) SetScores(scores []domain.LiveScore, at time.Time) {
	cp := append([]domain.LiveScore{}, scores...)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scores = LiveScores{Scores: cp, UpdatedAt: at}
}

// Scores returns a copy of the latest live scores.
func (b *LiveBoard) Scores() LiveScores {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return LiveScores{
		Scores:    append([]domain.LiveScore{}, b.scores.Scores...),
		UpdatedAt: b.scores.UpdatedAt,
	}
}
