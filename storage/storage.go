// Package storage provides the key-value backends that hold the blog's
// persisted collections. Each collection lives under one key as a single
// serialized value, so a backend only has to get, set and delete whole values.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written or was deleted.
var ErrNotFound = errors.New("storage: key not found")

// ErrClosed is returned by operations on a closed backend.
var ErrClosed = errors.New("storage: closed")

// Storage is a flat key-value store. Implementations must be safe for
// concurrent use; values are opaque bytes.
type Storage interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
