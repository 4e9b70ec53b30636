package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/sportstats/internal/domain"
)

// ScoreFeed supplies live scores.
type ScoreFeed interface {
	Fetch(ctx context.Context) ([]domain.LiveScore, error)
}

// MockScoreFeed returns a fixed pair of fixtures.
type MockScoreFeed struct{}

func (MockScoreFeed) Fetch(context.Context) ([]domain.LiveScore, error) {
	return []domain.LiveScore{
		{Teams: "Titans vs Warriors", Score: "156/4 (18.2 overs)", Status: "Live"},
		{Teams: "Falcons vs Eagles", Score: "203/7 (20 overs)", Status: "Complete"},
	}, nil
}

// RunLiveScores refreshes the board at once and then every interval until ctx
// is done. A failed fetch keeps the previous scores.
func RunLiveScores(ctx context.Context, feed ScoreFeed, board *LiveBoard, interval time.Duration, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	refresh := func() {
		scores, err := feed.Fetch(ctx)
		if err != nil {
			logger.Warn("live score refresh failed", zap.Error(err))
			return
		}
		board.SetScores(scores, time.Now().UTC())
	}

	refresh()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh()
		}
	}
}
