// Package storage is the durability boundary: a key-value store
// holding the whole application state as one opaque blob.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no blob has been saved yet.
var ErrNotFound = errors.New("storage: no saved data")

// KV persists a single serialized blob. Implementations must be safe
// for concurrent use; the store issues saves from a background writer.
type KV interface {
	// Save overwrites the blob wholesale.
	Save(ctx context.Context, blob []byte) error
	// Load returns the last saved blob, or ErrNotFound.
	Load(ctx context.Context) ([]byte, error)
	// Close releases the underlying resources.
	Close() error
}
