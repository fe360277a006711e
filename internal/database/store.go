package database

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no record exists for a key.
var ErrKeyNotFound = errors.New("key not found")

// Store is the key-value persistence contract the draft engine runs on.
// Keys are slash-separated paths ("drafts/<id>.json", "logs/<date>.json").
// The reference implementation is a plain directory of files; a networked
// backend can be swapped in without touching the lifecycle logic.
type Store interface {
	Put(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	ListByPrefix(ctx context.Context, prefix string) (map[string][]byte, error)
}
