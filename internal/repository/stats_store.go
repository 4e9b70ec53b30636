package repository

import (
	"strings"
	"sync"

	"github.com/spec-kit/sportstats/internal/domain"
	apperrors "github.com/spec-kit/sportstats/pkg/util/errorutil"
)

// MergeStats counts what a merge did with the incoming records.
type MergeStats struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// Add accumulates other into s.
func (s *MergeStats) Add(other MergeStats) {
	s.Added += other.Added
	s.Updated += other.Updated
	s.Skipped += other.Skipped
}

// StatsStore owns the canonical team and player collections.
type StatsStore interface {
	Reset(snapshot domain.Snapshot)
	AddTeam(candidate domain.Team) (domain.Team, error)
	AddPlayer(candidate domain.Player) (domain.Player, error)
	UpdateTeam(name string, patch domain.PartialTeam) (domain.Team, error)
	UpdatePlayer(name string, patch domain.PartialPlayer) (domain.Player, error)
	MergeTeams(incoming []domain.PartialTeam) MergeStats
	MergePlayers(incoming []domain.PartialPlayer) MergeStats
	Merge(teams []domain.PartialTeam, players []domain.PartialPlayer) (MergeStats, MergeStats)
	FindTeam(name string) (domain.Team, bool)
	FindPlayer(name string) (domain.Player, bool)
	Snapshot() domain.Snapshot
}

type statsStore struct {
	mu      sync.RWMutex
	teams   []domain.Team
	players []domain.Player
}

// NewStatsStore constructs a store holding a copy of initial.
func NewStatsStore(initial domain.Snapshot) StatsStore {
	s := &statsStore{}
	s.Reset(initial)
	return s
}

// Reset replaces both collections with a copy of snapshot.
func (s *statsStore) Reset(snapshot domain.Snapshot) {
	cp := snapshot.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = cp.Teams
	s.players = cp.Players
}

func (s *statsStore) AddTeam(candidate domain.Team) (domain.Team, error) {
	if err := candidate.Validate(); err != nil {
		return domain.Team{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if teamIndex(s.teams, candidate.Name) >= 0 {
		return domain.Team{}, apperrors.NewDuplicateName("team", candidate.Name)
	}
	stored := candidate.Clone()
	s.teams = append(s.teams, stored)
	return stored.Clone(), nil
}

func (s *statsStore) AddPlayer(candidate domain.Player) (domain.Player, error) {
	if err := candidate.Validate(); err != nil {
		return domain.Player{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if playerIndex(s.players, candidate.Name) >= 0 {
		return domain.Player{}, apperrors.NewDuplicateName("player", candidate.Name)
	}
	stored := candidate.Clone()
	s.players = append(s.players, stored)
	return stored.Clone(), nil
}

func (s *statsStore) UpdateTeam(name string, patch domain.PartialTeam) (domain.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := teamIndex(s.teams, name)
	if idx < 0 {
		return domain.Team{}, apperrors.NewNotFound("team", map[string]any{"name": name})
	}
	updated := patch.ApplyTo(s.teams[idx])
	if err := updated.Validate(); err != nil {
		return domain.Team{}, err
	}
	if other := teamIndex(s.teams, updated.Name); other >= 0 && other != idx {
		return domain.Team{}, apperrors.NewDuplicateName("team", updated.Name)
	}
	s.teams[idx] = updated
	return updated.Clone(), nil
}

func (s *statsStore) UpdatePlayer(name string, patch domain.PartialPlayer) (domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := playerIndex(s.players, name)
	if idx < 0 {
		return domain.Player{}, apperrors.NewNotFound("player", map[string]any{"name": name})
	}
	updated := patch.ApplyTo(s.players[idx])
	if err := updated.Validate(); err != nil {
		return domain.Player{}, err
	}
	if other := playerIndex(s.players, updated.Name); other >= 0 && other != idx {
		return domain.Player{}, apperrors.NewDuplicateName("player", updated.Name)
	}
	s.players[idx] = updated
	return updated.Clone(), nil
}

// MergeTeams overlays each named record onto its case-insensitive match or
// appends it. Records without a name are skipped.
func (s *statsStore) MergeTeams(incoming []domain.PartialTeam) MergeStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mergeTeamsLocked(incoming)
}

// MergePlayers applies the MergeTeams algorithm keyed on player name.
func (s *statsStore) MergePlayers(incoming []domain.PartialPlayer) MergeStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mergePlayersLocked(incoming)
}

// Merge applies teams then players under one lock, so no snapshot observes
// one half of the import.
func (s *statsStore) Merge(teams []domain.PartialTeam, players []domain.PartialPlayer) (MergeStats, MergeStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mergeTeamsLocked(teams), s.mergePlayersLocked(players)
}

func (s *statsStore) mergeTeamsLocked(incoming []domain.PartialTeam) MergeStats {
	var stats MergeStats
	for _, patch := range incoming {
		name := patch.KeyName()
		if name == "" {
			stats.Skipped++
			continue
		}
		if idx := teamIndex(s.teams, name); idx >= 0 {
			s.teams[idx] = patch.ApplyTo(s.teams[idx])
			stats.Updated++
			continue
		}
		s.teams = append(s.teams, patch.Team())
		stats.Added++
	}
	return stats
}

func (s *statsStore) mergePlayersLocked(incoming []domain.PartialPlayer) MergeStats {
	var stats MergeStats
	for _, patch := range incoming {
		name := patch.KeyName()
		if name == "" {
			stats.Skipped++
			continue
		}
		if idx := playerIndex(s.players, name); idx >= 0 {
			s.players[idx] = patch.ApplyTo(s.players[idx])
			stats.Updated++
			continue
		}
		s.players = append(s.players, patch.Player())
		stats.Added++
	}
	return stats
}

func (s *statsStore) FindTeam(name string) (domain.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := teamIndex(s.teams, name)
	if idx < 0 {
		return domain.Team{}, false
	}
	return s.teams[idx].Clone(), true
}

func (s *statsStore) FindPlayer(name string) (domain.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := playerIndex(s.players, name)
	if idx < 0 {
		return domain.Player{}, false
	}
	return s.players[idx].Clone(), true
}

func (s *statsStore) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.Snapshot{Teams: s.teams, Players: s.players}.Clone()
}

func teamIndex(teams []domain.Team, name string) int {
	for i, t := range teams {
		if strings.EqualFold(t.Name, name) {
			return i
		}
	}
	return -1
}

func playerIndex(players []domain.Player, name string) int {
	for i, p := range players {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}
