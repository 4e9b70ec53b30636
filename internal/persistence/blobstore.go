package persistence

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by backends created without a connection.
var ErrNotConfigured = errors.New("blob store not configured")

// BlobStore is a string key/value store holding JSON documents.
type BlobStore interface {
	// Get returns the value for key. ok is false when the key was never set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}
