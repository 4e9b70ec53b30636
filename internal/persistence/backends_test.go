package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/sportstats/internal/config"
)

func exerciseBlobStore(t *testing.T, store BlobStore) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	_, ok, err := store.Get(ctx, "sportstats_teams")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "sportstats_teams", `[{"name":"Titans"}]`))
	require.NoError(t, store.Set(ctx, "sportstats_teams", `[{"name":"Warriors"}]`))

	value, ok, err := store.Get(ctx, "sportstats_teams")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"name":"Warriors"}]`, value)

	require.NoError(t, store.Set(ctx, "a/b c", ""))
	value, ok, err = store.Get(ctx, "a/b c")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, value)
}

func TestMemoryBlobStore(t *testing.T) {
	exerciseBlobStore(t, NewMemoryBlobStore())
}

func TestSQLiteBlobStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blobs.db")
	store, err := NewSQLite(context.Background(), path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	exerciseBlobStore(t, store)
}

func TestSQLiteRequiresPath(t *testing.T) {
	_, err := NewSQLite(context.Background(), " ", zap.NewNop())
	assert.Error(t, err)
}

func TestFileBlobStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)

	exerciseBlobStore(t, store)
}

func TestFileBlobStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	first, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "sportstats_theme", "dark"))

	second, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)
	value, ok, err := second.Get(ctx, "sportstats_theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, config.StorageConfig{Backend: config.BackendMemory}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &MemoryBlobStore{}, store)

	store, err = Open(ctx, config.StorageConfig{
		Backend:    config.BackendSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "open.db"),
	}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, store)
	_ = store.Close()

	store, err = Open(ctx, config.StorageConfig{Backend: config.BackendFile, FileDir: t.TempDir()}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)

	_, err = Open(ctx, config.StorageConfig{Backend: config.BackendPostgres}, zap.NewNop())
	assert.Error(t, err)

	_, err = Open(ctx, config.StorageConfig{Backend: "floppy"}, zap.NewNop())
	assert.Error(t, err)
}

func TestUnconfiguredNetworkBackends(t *testing.T) {
	ctx := context.Background()
	var pg *Postgres
	_, _, err := pg.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.NoError(t, pg.Close())

	var rd *Redis
	assert.ErrorIs(t, rd.Set(ctx, "k", "v"), ErrNotConfigured)
	assert.ErrorIs(t, rd.Ping(ctx), ErrNotConfigured)
}

func TestMigrationFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"0002_b.sql", "0001_a.sql", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "0003_dir.sql"), 0o755))

	files, err := MigrationFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "0001_a.sql"), filepath.Join(dir, "0002_b.sql")}, files)

	_, err = MigrationFiles(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestRepositoryMigrationsCreateBlobs(t *testing.T) {
	files, err := MigrationFiles(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "CREATE TABLE IF NOT EXISTS blobs")
}
