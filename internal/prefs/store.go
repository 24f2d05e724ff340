// ABOUTME: Key/value preference store used to persist the viewer's theme choice
// ABOUTME: Open selects a backend (sqlite, file, memory); failures degrade to memory

package prefs

import (
	"fmt"

	"github.com/mauromedda/pdfview-go/internal/log"
)

// KeyTheme is the only key the viewer persists.
const KeyTheme = "theme"

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Store is a small persistent key/value store.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Close releases the backend.
	Close() error
}

// Open builds the named backend at path and wraps it in a Fallback, so the
// caller never sees storage errors. If the backend cannot be opened at all
// the returned store is already degraded to memory.
func Open(backend, path string) *Fallback {
	s, err := openBackend(backend, path)
	if err != nil {
		log.Warn("preferences unavailable, keeping them in memory: %v", err)
		return degraded(err)
	}
	log.Debug("preferences: backend=%s path=%s", backend, path)
	return NewFallback(s)
}

func openBackend(backend, path string) (Store, error) {
	switch backend {
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendFile:
		return OpenFile(path)
	case BackendMemory, "":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown preference backend %q", backend)
	}
}
