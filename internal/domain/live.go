package domain

import "time"

// Layouts used by the live clock widget.
const (
	ClockTimeLayout = "15:04:05"
	ClockDateLayout = "Mon, Jan 02, 2006"
)

// LiveScore is one row of the live scores widget.
type LiveScore struct {
	Teams  string `json:"teams"`
	Score  string `json:"score"`
	Status string `json:"status"`
}

// ClockReading is the rendered clock at one instant.
type ClockReading struct {
	Time string    `json:"time"`
	Date string    `json:"date"`
	At   time.Time `json:"at"`
}

// NewClockReading renders t for the clock widget.
func NewClockReading(t time.Time) ClockReading {
	return ClockReading{
		Time: t.Format(ClockTimeLayout),
		Date: t.Format(ClockDateLayout),
		At:   t,
	}
}
