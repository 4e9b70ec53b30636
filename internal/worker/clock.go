package worker

import (
	"context"
	"time"

	"github.com/spec-kit/sportstats/internal/domain"
)

// untilNextSecond returns the wait from now to the next wall-clock second.
func untilNextSecond(now time.Time) time.Duration {
	return time.Second - time.Duration(now.Nanosecond())
}

// RunClock renders the clock at once, aligns to the next second boundary and
// then ticks every second until ctx is done.
func RunClock(ctx context.Context, board *LiveBoard, now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	board.SetClock(domain.NewClockReading(now()))

	align := time.NewTimer(untilNextSecond(now()))
	defer align.Stop()
	select {
	case <-ctx.Done():
		return
	case <-align.C:
		board.SetClock(domain.NewClockReading(now()))
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			board.SetClock(domain.NewClockReading(now()))
		}
	}
}
