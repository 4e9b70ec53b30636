package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/sportstats/internal/domain"
	"github.com/spec-kit/sportstats/internal/events"
	"github.com/spec-kit/sportstats/internal/persistence"
	apperrors "github.com/spec-kit/sportstats/pkg/util/errorutil"
)

// PreferencesService holds the dashboard theme.
type PreferencesService struct {
	mu         sync.RWMutex
	theme      domain.Theme
	adapter    *persistence.Adapter
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewPreferencesService creates the service with the default theme.
func NewPreferencesService(adapter *persistence.Adapter, dispatcher events.Dispatcher, logger *zap.Logger) *PreferencesService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreferencesService{
		theme:      domain.DefaultTheme,
		adapter:    adapter,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Restore loads the persisted theme.
func (p *PreferencesService) Restore(ctx context.Context) {
	if p.adapter == nil {
		return
	}
	theme := p.adapter.LoadTheme(ctx)
	p.mu.Lock()
	p.theme = theme
	p.mu.Unlock()
}

// Theme returns the current theme.
func (p *PreferencesService) Theme(_ context.Context) domain.Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

// SetTheme validates and applies raw, publishing a change event when it differs.
func (p *PreferencesService) SetTheme(ctx context.Context, raw string) (domain.Theme, error) {
	theme, ok := domain.ParseTheme(raw)
	if !ok {
		return "", apperrors.NewValidationError("theme must be light or dark", map[string]any{"theme": raw})
	}
	return p.apply(ctx, theme), nil
}

// ToggleTheme flips between light and dark.
func (p *PreferencesService) ToggleTheme(ctx context.Context) domain.Theme {
	return p.apply(ctx, p.Theme(ctx).Toggle())
}

func (p *PreferencesService) apply(ctx context.Context, theme domain.Theme) domain.Theme {
	p.mu.Lock()
	old := p.theme
	p.theme = theme
	p.mu.Unlock()

	if old == theme || p.dispatcher == nil {
		return theme
	}
	event := events.New(events.EventThemeChanged, "theme", events.ThemeChangedPayload{
		OldTheme: string(old),
		NewTheme: string(theme),
	})
	if err := p.dispatcher.Publish(ctx, event); err != nil {
		p.logger.Warn("event handler failed", zap.String("event", string(event.Type)), zap.Error(err))
	}
	return theme
}
