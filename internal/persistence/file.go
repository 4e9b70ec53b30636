package persistence

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/c2FmZQ/storage"
	"go.uber.org/zap"
)

// fileBlob is the on-disk shape of one blob.
type fileBlob struct {
	Value string `json:"value"`
}

// FileStore keeps one data file per key under a directory.
type FileStore struct {
	dir     string
	storage *storage.Storage
}

// NewFileStore prepares dir and returns a store writing into it.
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	logger.Info("using file blob store", zap.String("dir", dir))
	return &FileStore{dir: dir, storage: storage.New(dir, nil)}, nil
}

func (f *FileStore) filename(key string) string {
	return url.PathEscape(key) + ".json"
}

func (f *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	var blob fileBlob
	if err := f.storage.ReadDataFile(f.filename(key), &blob); err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("ReadDataFile %s: %w", key, err)
	}
	return blob.Value, true, nil
}

func (f *FileStore) Set(_ context.Context, key, value string) error {
	if err := f.storage.SaveDataFile(f.filename(key), fileBlob{Value: value}); err != nil {
		return fmt.Errorf("storage.SaveDataFile %s: %w", key, err)
	}
	return nil
}

func (f *FileStore) Ping(context.Context) error {
	info, err := os.Stat(f.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", f.dir)
	}
	return nil
}

func (f *FileStore) Close() error { return nil }
