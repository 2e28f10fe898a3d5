// internal/store/store.go
//
// Key-value persistence for the small JSON records the game keeps between
// runs (statistics, first-run marker, last completed daily).
//
// Backends:
//   - memory: process-local map, used in tests and with storage.driver=memory.
//   - file:   a single JSON object on disk, rewritten atomically.
//   - sqlite: a kv table in a SQLite database with embedded migrations.

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrNotFound is returned by Get for a key that has never been written.
var ErrNotFound = errors.New("store: not found")

// Store defines the persistence interface.
// Values are opaque bytes; callers store JSON.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put creates or replaces the value for key.
	Put(ctx context.Context, key string, value []byte) error

	// Close releases any underlying resources.
	Close() error
}

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Open constructs the backend named by driver. path is ignored for memory.
func Open(driver, path string, log zerolog.Logger) (Store, error) {
	switch driver {
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverFile:
		return NewFileStore(path, log)
	case DriverSQLite:
		return NewSQLiteStore(path, log)
	default:
		return nil, fmt.Errorf("store: unknown driver %q", driver)
	}
}
