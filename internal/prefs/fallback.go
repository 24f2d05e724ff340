// ABOUTME: Fallback wraps a Store and degrades to memory on the first backend error
// ABOUTME: Values written before degradation stay readable; errors never reach callers

package prefs

import (
	"sync"

	"github.com/mauromedda/pdfview-go/internal/log"
)

// Fallback is a Store that never returns errors. Every write lands in an
// in-memory mirror; the backend is used until it fails once.
type Fallback struct {
	mu      sync.Mutex
	backend Store
	mem     *Memory
	cause   error
}

// NewFallback wraps backend.
func NewFallback(backend Store) *Fallback {
	return &Fallback{backend: backend, mem: NewMemory()}
}

func degraded(cause error) *Fallback {
	return &Fallback{mem: NewMemory(), cause: cause}
}

// Get implements Store.
func (f *Fallback) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.backend != nil {
		v, ok, err := f.backend.Get(key)
		if err == nil {
			if ok {
				_ = f.mem.Set(key, v)
			}
			return v, ok, nil
		}
		f.degrade(err)
	}
	return f.mem.Get(key)
}

// Set implements Store.
func (f *Fallback) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	_ = f.mem.Set(key, value)
	if f.backend != nil {
		if err := f.backend.Set(key, value); err != nil {
			f.degrade(err)
		}
	}
	return nil
}

// Degraded reports whether the store fell back to memory, and why.
func (f *Fallback) Degraded() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cause != nil, f.cause
}

// Close implements Store.
func (f *Fallback) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.backend == nil {
		return nil
	}
	err := f.backend.Close()
	f.backend = nil
	return err
}

// degrade must be called with f.mu held.
func (f *Fallback) degrade(err error) {
	log.Warn("preference storage failed, continuing in memory: %v", err)
	f.cause = err
	if f.backend != nil {
		_ = f.backend.Close()
	}
	f.backend = nil
}
