// Package store provides the key-value persistence layer and the note
// snapshot adapter built on top of it.
package store

import (
	"context"
	"fmt"
	"strings"
)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

// KV is a synchronous string key-value store. Every Set replaces the whole
// value stored under the key.
type KV interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key.
	Set(ctx context.Context, key, value string) error

	// Close closes the store.
	Close() error
}

// Revisioner is implemented by stores that stamp every write with a revision.
type Revisioner interface {
	Revision(ctx context.Context, key string) (string, error)
}

// Open opens the store for the named backend at path.
func Open(backend, path string) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendSQLite:
		return NewSQLiteStore(path)
	case BackendBolt, "bbolt":
		return NewBoltStore(path)
	case BackendMemory:
		return NewMemStore(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (valid: sqlite, bolt, memory)", backend)
	}
}
