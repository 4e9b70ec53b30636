package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTeamAdded     EventType = "team_added"
	EventTeamUpdated   EventType = "team_updated"
	EventPlayerAdded   EventType = "player_added"
	EventPlayerUpdated EventType = "player_updated"
	EventDataImported  EventType = "data_imported"
	EventSampleAdded   EventType = "sample_added"
	EventThemeChanged  EventType = "theme_changed"
)

// DataEvents are the events that change the team or player collections.
var DataEvents = []EventType{
	EventTeamAdded,
	EventTeamUpdated,
	EventPlayerAdded,
	EventPlayerUpdated,
	EventDataImported,
	EventSampleAdded,
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Subject   string      `json:"subject,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// New stamps an event with a fresh id and the current time.
func New(eventType EventType, subject string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Subject:   subject,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// ImportedPayload payload.
type ImportedPayload struct {
	TeamsAdded     int `json:"teams_added"`
	TeamsUpdated   int `json:"teams_updated"`
	PlayersAdded   int `json:"players_added"`
	PlayersUpdated int `json:"players_updated"`
	Skipped        int `json:"skipped"`
}

// SampleAddedPayload payload.
type SampleAddedPayload struct {
	Added []string `json:"added"`
}

// ThemeChangedPayload payload.
type ThemeChangedPayload struct {
	OldTheme string `json:"old_theme"`
	NewTheme string `json:"new_theme"`
}
