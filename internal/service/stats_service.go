package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/sportstats/internal/analytics"
	"github.com/spec-kit/sportstats/internal/domain"
	"github.com/spec-kit/sportstats/internal/events"
	"github.com/spec-kit/sportstats/internal/repository"
	"github.com/spec-kit/sportstats/internal/transfer"
	apperrors "github.com/spec-kit/sportstats/pkg/util/errorutil"
)

// Defaults applied to teams created through the form.
const (
	DefaultSquadSize = 11
	DefaultCaptain   = "TBD"
)

// StatsService coordinates team and player workflows.
type StatsService struct {
	store      repository.StatsStore
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// StatsDependencies bundles collaborators for the stats service.
type StatsDependencies struct {
	Store      repository.StatsStore
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// ImportResult reports what an import merged.
type ImportResult struct {
	Teams   repository.MergeStats `json:"teams"`
	Players repository.MergeStats `json:"players"`
	// Skipped counts records dropped for lacking a usable name.
	Skipped int `json:"skipped"`
}

// NewStatsService constructs the service.
func NewStatsService(deps StatsDependencies) *StatsService {
	svc := &StatsService{
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		now:        deps.Clock,
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	return svc
}

// Snapshot returns a copy of the current collections.
func (s *StatsService) Snapshot(_ context.Context) domain.Snapshot {
	return s.store.Snapshot()
}

// ListTeams returns every team in insertion order.
func (s *StatsService) ListTeams(_ context.Context) []domain.Team {
	return s.store.Snapshot().Teams
}

// GetTeam finds a team by case-insensitive name.
func (s *StatsService) GetTeam(_ context.Context, name string) (domain.Team, error) {
	team, ok := s.store.FindTeam(name)
	if !ok {
		return domain.Team{}, apperrors.NewNotFound("team", map[string]any{"name": name})
	}
	return team, nil
}

// CreateTeam fills form defaults and adds the team.
func (s *StatsService) CreateTeam(ctx context.Context, candidate domain.Team) (domain.Team, error) {
	candidate.Name = strings.TrimSpace(candidate.Name)
	if candidate.Players == 0 {
		candidate.Players = DefaultSquadSize
	}
	if candidate.Founded == 0 {
		candidate.Founded = s.now().Year()
	}
	if strings.TrimSpace(candidate.Captain) == "" {
		candidate.Captain = DefaultCaptain
	}

	stored, err := s.store.AddTeam(candidate)
	if err != nil {
		return domain.Team{}, err
	}
	s.publish(ctx, events.New(events.EventTeamAdded, stored.Name, nil))
	return stored, nil
}

// UpdateTeam overlays patch onto the named team.
func (s *StatsService) UpdateTeam(ctx context.Context, name string, patch domain.PartialTeam) (domain.Team, error) {
	updated, err := s.store.UpdateTeam(name, patch)
	if err != nil {
		return domain.Team{}, err
	}
	s.publish(ctx, events.New(events.EventTeamUpdated, updated.Name, nil))
	return updated, nil
}

// ListPlayers returns players, optionally filtered by exact team name.
func (s *StatsService) ListPlayers(_ context.Context, team string) []domain.Player {
	return analytics.FilterPlayersByTeam(s.store.Snapshot().Players, team)
}

// GetPlayer finds a player by case-insensitive name.
func (s *StatsService) GetPlayer(_ context.Context, name string) (domain.Player, error) {
	player, ok := s.store.FindPlayer(name)
	if !ok {
		return domain.Player{}, apperrors.NewNotFound("player", map[string]any{"name": name})
	}
	return player, nil
}

// CreatePlayer adds a player. The team reference is not checked.
func (s *StatsService) CreatePlayer(ctx context.Context, candidate domain.Player) (domain.Player, error) {
	candidate.Name = strings.TrimSpace(candidate.Name)
	stored, err := s.store.AddPlayer(candidate)
	if err != nil {
		return domain.Player{}, err
	}
	s.publish(ctx, events.New(events.EventPlayerAdded, stored.Name, nil))
	return stored, nil
}

// UpdatePlayer overlays patch onto the named player.
func (s *StatsService) UpdatePlayer(ctx context.Context, name string, patch domain.PartialPlayer) (domain.Player, error) {
	updated, err := s.store.UpdatePlayer(name, patch)
	if err != nil {
		return domain.Player{}, err
	}
	s.publish(ctx, events.New(events.EventPlayerUpdated, updated.Name, nil))
	return updated, nil
}

// AddSampleData adds the sample teams that are not present yet and returns their names.
func (s *StatsService) AddSampleData(ctx context.Context) ([]string, error) {
	added := []string{}
	for _, team := range domain.SampleTeams() {
		stored, err := s.store.AddTeam(team)
		if apperrors.HasCode(err, apperrors.CodeDuplicateName) {
			continue
		}
		if err != nil {
			return added, err
		}
		added = append(added, stored.Name)
	}
	if len(added) > 0 {
		s.publish(ctx, events.New(events.EventSampleAdded, "", events.SampleAddedPayload{Added: added}))
	}
	return added, nil
}

// Import parses raw and merges teams then players into the store.
// A parse error leaves the store unchanged.
func (s *StatsService) Import(ctx context.Context, raw []byte) (ImportResult, error) {
	payload, err := transfer.Parse(raw)
	if err != nil {
		return ImportResult{}, err
	}

	var result ImportResult
	result.Teams, result.Players = s.store.Merge(payload.Teams, payload.Players)
	result.Skipped = payload.Skipped + result.Teams.Skipped + result.Players.Skipped
	if result.Skipped > 0 {
		s.logger.Warn("import skipped records without a usable name", zap.Int("skipped", result.Skipped))
	}
	s.logger.Info("import merged",
		zap.Int("teams_added", result.Teams.Added),
		zap.Int("teams_updated", result.Teams.Updated),
		zap.Int("players_added", result.Players.Added),
		zap.Int("players_updated", result.Players.Updated))

	s.publish(ctx, events.New(events.EventDataImported, "", events.ImportedPayload{
		TeamsAdded:     result.Teams.Added,
		TeamsUpdated:   result.Teams.Updated,
		PlayersAdded:   result.Players.Added,
		PlayersUpdated: result.Players.Updated,
		Skipped:        result.Skipped,
	}))
	return result, nil
}

// Export builds the export document stamped with the current time.
func (s *StatsService) Export(_ context.Context) (transfer.Document, string) {
	now := s.now()
	return transfer.Export(s.store.Snapshot(), now), transfer.Filename(now)
}

func (s *StatsService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event", string(event.Type)), zap.Error(err))
	}
}
