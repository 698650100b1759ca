package storage

import "context"

// Store is a string key-value store holding serialised ledger records.
// Get returns model.ErrKeyNotFound when the key has never been written.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
