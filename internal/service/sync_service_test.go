package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/sportstats/internal/domain"
	"github.com/spec-kit/sportstats/internal/events"
	"github.com/spec-kit/sportstats/internal/persistence"
	"github.com/spec-kit/sportstats/internal/repository"
)

// gatedBlobStore holds the first write to gateKey until release is closed.
type gatedBlobStore struct {
	*persistence.MemoryBlobStore
	gateKey string
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedBlobStore(key string) *gatedBlobStore {
	return &gatedBlobStore{
		MemoryBlobStore: persistence.NewMemoryBlobStore(),
		gateKey:         key,
		entered:         make(chan struct{}),
		release:         make(chan struct{}),
	}
}

func (g *gatedBlobStore) Set(ctx context.Context, key, value string) error {
	if key == g.gateKey {
		first := false
		g.once.Do(func() { first = true })
		if first {
			close(g.entered)
			<-g.release
		}
	}
	return g.MemoryBlobStore.Set(ctx, key, value)
}

func TestConcurrentSavesKeepNewestSnapshot(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	blobs := newGatedBlobStore("sportstats_teams")
	adapter := persistence.NewAdapter(blobs, "", logger)
	store := repository.NewStatsStore(domain.Snapshot{})
	dispatcher := events.NewInMemoryDispatcher()
	stats := NewStatsService(StatsDependencies{Store: store, Dispatcher: dispatcher, Logger: logger})
	NewSyncService(SyncDependencies{Store: store, Adapter: adapter, Dispatcher: dispatcher, Logger: logger}).RegisterHandlers()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := stats.CreateTeam(ctx, domain.Team{Name: "Alpha"})
		assert.NoError(t, err)
	}()

	select {
	case <-blobs.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first save never reached the store")
	}

	go func() {
		defer wg.Done()
		_, err := stats.CreateTeam(ctx, domain.Team{Name: "Beta"})
		assert.NoError(t, err)
	}()
	require.Eventually(t, func() bool {
		_, ok := store.FindTeam("Beta")
		return ok
	}, 2*time.Second, 5*time.Millisecond)

	close(blobs.release)
	wg.Wait()

	raw, ok, err := blobs.Get(ctx, "sportstats_teams")
	require.NoError(t, err)
	require.True(t, ok)
	var persisted []domain.Team
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Len(t, persisted, len(store.Snapshot().Teams))
	assert.Len(t, persisted, 2)
}
