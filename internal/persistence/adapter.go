package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/sportstats/internal/domain"
)

// DefaultKeyPrefix namespaces every persisted key.
const DefaultKeyPrefix = "sportstats_"

const (
	teamsKey   = "teams"
	playersKey = "players"
	themeKey   = "theme"
)

// Adapter maps the store snapshot and preferences onto blob keys.
// Failures are logged and never returned; in-memory state stays authoritative.
type Adapter struct {
	store  BlobStore
	prefix string
	logger *zap.Logger
}

// NewAdapter wraps store. An empty prefix falls back to DefaultKeyPrefix.
func NewAdapter(store BlobStore, prefix string, logger *zap.Logger) *Adapter {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{store: store, prefix: prefix, logger: logger}
}

// Key returns the full blob key for name.
func (a *Adapter) Key(name string) string {
	return a.prefix + name
}

// Load reads the persisted snapshot. It reports false when nothing is stored
// or any read or parse fails. A collection whose key is missing is left nil so
// the caller can keep its own default for it.
func (a *Adapter) Load(ctx context.Context) (*domain.Snapshot, bool) {
	rawTeams, hasTeams, err := a.store.Get(ctx, a.Key(teamsKey))
	if err != nil {
		a.logger.Warn("failed to read persisted teams", zap.Error(err))
		return nil, false
	}
	rawPlayers, hasPlayers, err := a.store.Get(ctx, a.Key(playersKey))
	if err != nil {
		a.logger.Warn("failed to read persisted players", zap.Error(err))
		return nil, false
	}
	if !hasTeams && !hasPlayers {
		return nil, false
	}

	var snapshot domain.Snapshot
	if hasTeams {
		if err := json.Unmarshal([]byte(rawTeams), &snapshot.Teams); err != nil {
			a.logger.Warn("discarding unparsable persisted teams", zap.Error(err))
			return nil, false
		}
		if snapshot.Teams == nil {
			snapshot.Teams = []domain.Team{}
		}
	}
	if hasPlayers {
		if err := json.Unmarshal([]byte(rawPlayers), &snapshot.Players); err != nil {
			a.logger.Warn("discarding unparsable persisted players", zap.Error(err))
			return nil, false
		}
		if snapshot.Players == nil {
			snapshot.Players = []domain.Player{}
		}
	}
	return &snapshot, true
}

// Save writes both collections. Errors are logged and swallowed.
func (a *Adapter) Save(ctx context.Context, snapshot domain.Snapshot) {
	cp := snapshot.Clone()
	a.write(ctx, teamsKey, cp.Teams)
	a.write(ctx, playersKey, cp.Players)
}

// LoadTheme returns the stored theme, or DefaultTheme when unset or invalid.
func (a *Adapter) LoadTheme(ctx context.Context) domain.Theme {
	raw, ok, err := a.store.Get(ctx, a.Key(themeKey))
	if err != nil {
		a.logger.Warn("failed to read persisted theme", zap.Error(err))
		return domain.DefaultTheme
	}
	if !ok {
		return domain.DefaultTheme
	}
	theme, valid := domain.ParseTheme(raw)
	if !valid {
		a.logger.Warn("ignoring unknown persisted theme", zap.String("theme", raw))
		return domain.DefaultTheme
	}
	return theme
}

// SaveTheme stores theme as a bare string. Errors are logged and swallowed.
func (a *Adapter) SaveTheme(ctx context.Context, theme domain.Theme) {
	if err := a.store.Set(ctx, a.Key(themeKey), string(theme)); err != nil {
		a.logger.Warn("failed to persist theme", zap.Error(err))
	}
}

// Ping reports whether the underlying store is reachable.
func (a *Adapter) Ping(ctx context.Context) error {
	return a.store.Ping(ctx)
}

func (a *Adapter) write(ctx context.Context, name string, value any) {
	encoded, err := json.Marshal(value)
	if err != nil {
		a.logger.Warn("failed to encode snapshot", zap.String("key", name), zap.Error(err))
		return
	}
	if err := a.store.Set(ctx, a.Key(name), string(encoded)); err != nil {
		a.logger.Warn("failed to persist snapshot",
			zap.String("key", a.Key(name)),
			zap.Int("bytes", len(encoded)),
			zap.String("backend", backendName(a.store)),
			zap.Error(err))
	}
}

func backendName(store BlobStore) string {
	switch store.(type) {
	case *MemoryBlobStore:
		return "memory"
	case *Redis:
		return "redis"
	case *Postgres:
		return "postgres"
	case *SQLite:
		return "sqlite"
	case *FileStore:
		return "file"
	default:
		return fmt.Sprintf("%T", store)
	}
}

// Close releases the underlying store.
func (a *Adapter) Close() error {
	return a.store.Close()
}
