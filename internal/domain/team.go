package domain

import (
	"encoding/json"
	"strings"

	apperrors "github.com/spec-kit/sportstats/pkg/util/errorutil"
)

// Location places a team's home city on the map.
type Location struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	City string  `json:"city"`
}

// Team represents one club and its season totals.
type Team struct {
	Name         string    `json:"name"`
	Players      int       `json:"players"`
	Matches      int       `json:"matches"`
	Wins         int       `json:"wins"`
	Losses       int       `json:"losses"`
	TotalRuns    int       `json:"totalRuns"`
	TotalWickets int       `json:"totalWickets"`
	Founded      int       `json:"founded"`
	Captain      string    `json:"captain"`
	Location     *Location `json:"location,omitempty"`
	HomeGround   string    `json:"homeGround,omitempty"`

	// Extra keeps JSON members this service does not model so they survive
	// import, persistence and export.
	Extra map[string]json.RawMessage `json:"-"`
}

var teamFields = keySet("name", "players", "matches", "wins", "losses", "totalRuns",
	"totalWickets", "founded", "captain", "location", "homeGround")

type teamJSON Team

// MarshalJSON encodes the modeled fields plus any preserved extras.
func (t Team) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(teamJSON(t))
	if err != nil {
		return nil, err
	}
	return withExtra(base, t.Extra)
}

// UnmarshalJSON decodes a team and keeps unknown members in Extra.
func (t *Team) UnmarshalJSON(data []byte) error {
	extra, err := splitExtra(data, teamFields)
	if err != nil {
		return err
	}
	var decoded teamJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*t = Team(decoded)
	t.Extra = extra
	return nil
}

// Validate checks the invariants a stored team must hold.
func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return apperrors.NewInvalidRecord("team name is required", nil)
	}
	counts := map[string]int{
		"players":      t.Players,
		"matches":      t.Matches,
		"wins":         t.Wins,
		"losses":       t.Losses,
		"totalRuns":    t.TotalRuns,
		"totalWickets": t.TotalWickets,
	}
	for field, value := range counts {
		if value < 0 {
			return apperrors.NewInvalidRecord(field+" cannot be negative", map[string]any{"field": field})
		}
	}
	if t.Wins+t.Losses > t.Matches {
		return apperrors.NewInvalidRecord("wins + losses cannot exceed total matches", map[string]any{
			"wins":    t.Wins,
			"losses":  t.Losses,
			"matches": t.Matches,
		})
	}
	return nil
}

// HasLocation reports whether the team can be placed on a map.
func (t Team) HasLocation() bool {
	return t.Location != nil && t.Location.Lat != 0 && t.Location.Lng != 0
}

// Clone returns a deep copy.
func (t Team) Clone() Team {
	out := t
	if t.Location != nil {
		loc := *t.Location
		out.Location = &loc
	}
	out.Extra = cloneExtra(t.Extra)
	return out
}

// PartialTeam is a team record where every field is optional.
// Absent fields (and explicit nulls) leave the target untouched on overlay.
type PartialTeam struct {
	Name         *string   `json:"name,omitempty"`
	Players      *int      `json:"players,omitempty"`
	Matches      *int      `json:"matches,omitempty"`
	Wins         *int      `json:"wins,omitempty"`
	Losses       *int      `json:"losses,omitempty"`
	TotalRuns    *int      `json:"totalRuns,omitempty"`
	TotalWickets *int      `json:"totalWickets,omitempty"`
	Founded      *int      `json:"founded,omitempty"`
	Captain      *string   `json:"captain,omitempty"`
	Location     *Location `json:"location,omitempty"`
	HomeGround   *string   `json:"homeGround,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type partialTeamJSON PartialTeam

// UnmarshalJSON decodes a partial team field by field and keeps unknown
// members in Extra. Numbers given as strings or integral floats are coerced;
// a value that cannot be coerced leaves its field absent.
func (p *PartialTeam) UnmarshalJSON(data []byte) error {
	members, err := objectMembers(data)
	if err != nil {
		return err
	}
	extra, err := splitExtra(data, teamFields)
	if err != nil {
		return err
	}
	*p = PartialTeam{
		Name:         looseString(members["name"]),
		Players:      looseInt(members["players"]),
		Matches:      looseInt(members["matches"]),
		Wins:         looseInt(members["wins"]),
		Losses:       looseInt(members["losses"]),
		TotalRuns:    looseInt(members["totalRuns"]),
		TotalWickets: looseInt(members["totalWickets"]),
		Founded:      looseInt(members["founded"]),
		Captain:      looseString(members["captain"]),
		Location:     looseLocation(members["location"]),
		HomeGround:   looseString(members["homeGround"]),
		Extra:        extra,
	}
	return nil
}

// MarshalJSON encodes the present fields plus extras.
func (p PartialTeam) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(partialTeamJSON(p))
	if err != nil {
		return nil, err
	}
	return withExtra(base, p.Extra)
}

// KeyName returns the record name, or "" when it is absent.
func (p PartialTeam) KeyName() string {
	if p.Name == nil {
		return ""
	}
	return *p.Name
}

// ApplyTo overlays the present fields onto base and returns the result.
func (p PartialTeam) ApplyTo(base Team) Team {
	out := base.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Players != nil {
		out.Players = *p.Players
	}
	if p.Matches != nil {
		out.Matches = *p.Matches
	}
	if p.Wins != nil {
		out.Wins = *p.Wins
	}
	if p.Losses != nil {
		out.Losses = *p.Losses
	}
	if p.TotalRuns != nil {
		out.TotalRuns = *p.TotalRuns
	}
	if p.TotalWickets != nil {
		out.TotalWickets = *p.TotalWickets
	}
	if p.Founded != nil {
		out.Founded = *p.Founded
	}
	if p.Captain != nil {
		out.Captain = *p.Captain
	}
	if p.Location != nil {
		loc := *p.Location
		out.Location = &loc
	}
	if p.HomeGround != nil {
		out.HomeGround = *p.HomeGround
	}
	out.Extra = overlayExtra(out.Extra, p.Extra)
	return out
}

// Team materializes the partial record as a new team.
func (p PartialTeam) Team() Team {
	return p.ApplyTo(Team{})
}
