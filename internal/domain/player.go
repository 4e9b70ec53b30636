package domain

import (
	"encoding/json"
	"strings"

	apperrors "github.com/spec-kit/sportstats/pkg/util/errorutil"
)

// Player represents one athlete. Team names a Team but is not enforced.
type Player struct {
	Name    string  `json:"name"`
	Team    string  `json:"team"`
	Matches int     `json:"matches"`
	Runs    int     `json:"runs"`
	Average float64 `json:"average"`

	Extra map[string]json.RawMessage `json:"-"`
}

var playerFields = keySet("name", "team", "matches", "runs", "average")

type playerJSON Player

// MarshalJSON encodes the modeled fields plus any preserved extras.
func (p Player) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(playerJSON(p))
	if err != nil {
		return nil, err
	}
	return withExtra(base, p.Extra)
}

// UnmarshalJSON decodes a player and keeps unknown members in Extra.
func (p *Player) UnmarshalJSON(data []byte) error {
	extra, err := splitExtra(data, playerFields)
	if err != nil {
		return err
	}
	var decoded playerJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*p = Player(decoded)
	p.Extra = extra
	return nil
}

// Validate checks the invariants a stored player must hold.
func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return apperrors.NewInvalidRecord("player name is required", nil)
	}
	if p.Matches < 0 || p.Runs < 0 || p.Average < 0 {
		return apperrors.NewInvalidRecord("player statistics cannot be negative", map[string]any{
			"matches": p.Matches,
			"runs":    p.Runs,
			"average": p.Average,
		})
	}
	return nil
}

// Clone returns a deep copy.
func (p Player) Clone() Player {
	out := p
	out.Extra = cloneExtra(p.Extra)
	return out
}

// PartialPlayer is a player record where every field is optional.
type PartialPlayer struct {
	Name    *string  `json:"name,omitempty"`
	Team    *string  `json:"team,omitempty"`
	Matches *int     `json:"matches,omitempty"`
	Runs    *int     `json:"runs,omitempty"`
	Average *float64 `json:"average,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type partialPlayerJSON PartialPlayer

// UnmarshalJSON decodes a partial player with the same coercion rules as
// PartialTeam and keeps unknown members in Extra.
func (p *PartialPlayer) UnmarshalJSON(data []byte) error {
	members, err := objectMembers(data)
	if err != nil {
		return err
	}
	extra, err := splitExtra(data, playerFields)
	if err != nil {
		return err
	}
	*p = PartialPlayer{
		Name:    looseString(members["name"]),
		Team:    looseString(members["team"]),
		Matches: looseInt(members["matches"]),
		Runs:    looseInt(members["runs"]),
		Average: looseFloat(members["average"]),
		Extra:   extra,
	}
	return nil
}

// MarshalJSON encodes the present fields plus extras.
func (p PartialPlayer) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(partialPlayerJSON(p))
	if err != nil {
		return nil, err
	}
	return withExtra(base, p.Extra)
}

// KeyName returns the record name, or "" when it is absent.
func (p PartialPlayer) KeyName() string {
	if p.Name == nil {
		return ""
	}
	return *p.Name
}

// ApplyTo overlays the present fields onto base and returns the result.
func (p PartialPlayer) ApplyTo(base Player) Player {
	out := base.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Team != nil {
		out.Team = *p.Team
	}
	if p.Matches != nil {
		out.Matches = *p.Matches
	}
	if p.Runs != nil {
		out.Runs = *p.Runs
	}
	if p.Average != nil {
		out.Average = *p.Average
	}
	out.Extra = overlayExtra(out.Extra, p.Extra)
	return out
}

// Player materializes the partial record as a new player.
func (p PartialPlayer) Player() Player {
	return p.ApplyTo(Player{})
}
