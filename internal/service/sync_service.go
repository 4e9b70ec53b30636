package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/sportstats/internal/domain"
	"github.com/spec-kit/sportstats/internal/events"
	"github.com/spec-kit/sportstats/internal/persistence"
	"github.com/spec-kit/sportstats/internal/repository"
)

// SyncService keeps the persisted snapshot in step with the store.
type SyncService struct {
	// saveMu orders saves so a later snapshot is never overwritten by an
	// earlier one.
	saveMu       sync.Mutex
	store        repository.StatsStore
	adapter      *persistence.Adapter
	dispatcher   events.Dispatcher
	logger       *zap.Logger
	seedDefaults bool
}

// SyncDependencies bundles collaborators for the sync service.
type SyncDependencies struct {
	Store        repository.StatsStore
	Adapter      *persistence.Adapter
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
	SeedDefaults bool
}

// NewSyncService creates the service.
func NewSyncService(deps SyncDependencies) *SyncService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncService{
		store:        deps.Store,
		adapter:      deps.Adapter,
		dispatcher:   deps.Dispatcher,
		logger:       logger,
		seedDefaults: deps.SeedDefaults,
	}
}

// Restore loads the persisted snapshot into the store. Collections that were
// never stored keep the seed data (or stay empty when seeding is off).
func (s *SyncService) Restore(ctx context.Context) {
	base := domain.Snapshot{}
	if s.seedDefaults {
		base = domain.DefaultSnapshot()
	}

	loaded, ok := s.adapter.Load(ctx)
	if !ok {
		s.logger.Info("no persisted snapshot; starting from defaults", zap.Bool("seeded", s.seedDefaults))
		s.store.Reset(base)
		return
	}
	if loaded.Teams != nil {
		base.Teams = loaded.Teams
	}
	if loaded.Players != nil {
		base.Players = loaded.Players
	}
	s.store.Reset(base)
	s.logger.Info("restored persisted snapshot",
		zap.Int("teams", len(base.Teams)),
		zap.Int("players", len(base.Players)))
}

// RegisterHandlers subscribes to data and preference events.
func (s *SyncService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.SubscribeAll(s.handleDataChanged, events.DataEvents...)
	s.dispatcher.Subscribe(events.EventThemeChanged, s.handleThemeChanged)
}

func (s *SyncService) handleDataChanged(ctx context.Context, event events.Event) error {
	s.logger.Debug("persisting snapshot", zap.String("event", string(event.Type)), zap.String("subject", event.Subject))
	s.Persist(ctx)
	return nil
}

// Persist saves the current store snapshot. The snapshot is taken while
// holding the save lock, so the last save to finish carries the newest state.
func (s *SyncService) Persist(ctx context.Context) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	s.adapter.Save(ctx, s.store.Snapshot())
}

func (s *SyncService) handleThemeChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ThemeChangedPayload)
	if !ok {
		return nil
	}
	s.adapter.SaveTheme(ctx, domain.Theme(payload.NewTheme))
	return nil
}
