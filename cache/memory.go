package cache

import (
	"context"
	"sync"
)

type memoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns an in-process KV, used when Redis is unreachable and as
// the test double.
func NewMemory() KV {
	return &memoryKV{data: make(map[string]string)}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memoryKV) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
