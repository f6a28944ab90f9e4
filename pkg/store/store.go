// Package store holds the local key-value blob stores the journal persists to.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Read for keys that were never written or were erased.
var ErrNotFound = errors.New("store: key not found")

// Blobs is a flat key-value store of opaque byte slices.
type Blobs interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Erase(key string) error
	Has(key string) bool
	Keys(ctx context.Context) []string
}

// Backend is a Blobs living somewhere on the local filesystem.
type Backend interface {
	Blobs
	// Dir is the directory holding the backend's files, used for watching.
	Dir() string
	Close() error
}

const (
	DriverDiskv  = "diskv"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Open creates the backend selected by cfg, loading the config when cfg is nil.
func Open(cfg Config) (Backend, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch driver := strings.ToLower(cfg.Driver()); driver {
	case "", DriverDiskv:
		return NewDiskv(cfg.BasePath())
	case DriverSQLite:
		return NewSQLite(cfg.BasePath())
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown driver %q", driver)
	}
}
