package store

import (
	"context"
	"sync"
)

// MemoryBackend keeps collections in process memory. Used by tests and the
// "memory" storage driver.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (m *MemoryBackend) Get(_ context.Context, name string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[name]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

func (m *MemoryBackend) Put(_ context.Context, name string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)
	m.mu.Lock()
	m.data[name] = buf
	m.mu.Unlock()
	return nil
}

func (m *MemoryBackend) Close() error { return nil }
