package persistence

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/sportstats/internal/config"
)

// Open builds the blob store selected by cfg.Backend.
func Open(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (BlobStore, error) {
	switch cfg.Backend {
	case config.BackendMemory, "":
		logger.Info("using in-memory blob store; data is lost on restart")
		return NewMemoryBlobStore(), nil
	case config.BackendRedis:
		return NewRedis(ctx, cfg.Redis, logger), nil
	case config.BackendPostgres:
		pg, err := NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		return pg, nil
	case config.BackendSQLite:
		db, err := NewSQLite(ctx, cfg.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		return db, nil
	case config.BackendFile:
		fs, err := NewFileStore(cfg.FileDir, logger)
		if err != nil {
			return nil, err
		}
		return fs, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
