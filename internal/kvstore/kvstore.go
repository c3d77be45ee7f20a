// Package kvstore provides the durable key-value storage the preference record
// lives in. Values are opaque strings; callers own their encoding.
package kvstore

import (
	"fmt"
	"strings"
)

// Store is a synchronous single-writer key-value store.
type Store interface {
	// Get returns the value stored under key. found is false when the key
	// has never been set.
	Get(key string) (value string, found bool, err error)
	// Set replaces the value stored under key.
	Set(key, value string) error
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// Backends lists every supported backend.
var Backends = []Backend{BackendFile, BackendSQLite, BackendMemory}

// ParseBackend returns the backend named by s, ignoring case.
func ParseBackend(s string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Backends {
		if b == known {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown storage backend %q", s)
}

// Open opens the store for backend at path. path is ignored by the memory backend.
func Open(backend Backend, path string) (Store, error) {
	switch backend {
	case BackendFile:
		return NewFileStore(path)
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*FileStore)(nil)
	_ Store = (*SQLiteStore)(nil)
)
