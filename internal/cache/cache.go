// Package cache memoizes computation results keyed by an input
// digest. The engine is deterministic, so entries never expire for
// correctness reasons; the cache only saves recomputation.
package cache

import "sync"

// Repository is the cache contract used by the server.
type Repository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Memory is an in-process Repository used when no Redis address is
// configured, and in tests.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemory returns an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

func (m *Memory) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}
