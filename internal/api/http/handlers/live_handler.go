package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sportstats/internal/domain"
	"github.com/spec-kit/sportstats/internal/worker"
)

// LiveHandler serves the clock and live score widgets.
type LiveHandler struct {
	board *worker.LiveBoard
	now   func() time.Time
}

// NewLiveHandler constructs handler.
func NewLiveHandler(board *worker.LiveBoard) *LiveHandler {
	return &LiveHandler{board: board, now: time.Now}
}

// Clock GET /api/live/clock. Falls back to the current time while the clock
// loop is disabled or has not ticked yet.
func (h *LiveHandler) Clock(c *fiber.Ctx) error {
	reading, ok := h.board.Clock()
	if !ok {
		reading = domain.NewClockReading(h.now())
	}
	return c.JSON(fiber.Map{"data": reading})
}

// Scores GET /api/live/scores.
func (h *LiveHandler) Scores(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.board.Scores()})
}
