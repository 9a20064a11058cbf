package store

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryKV is a mutex-guarded in-process KV implementation. It backs the
// test suite and the seed tooling; production runs on RedisKV.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Get returns a copy of the stored value.
func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, found := m.data[key]
	if !found {
		return nil, false, nil
	}
	return bytes.Clone(value), true, nil
}

// Put unconditionally overwrites the value at key.
func (m *MemoryKV) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = bytes.Clone(value)
	return nil
}

// PutIfAbsent writes value only when the key is not present.
func (m *MemoryKV) PutIfAbsent(_ context.Context, key string, value []byte) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, found := m.data[key]; found {
		return false, nil
	}
	m.data[key] = bytes.Clone(value)
	return true, nil
}

// CompareAndSwap writes value only when the current value equals expected.
func (m *MemoryKV) CompareAndSwap(_ context.Context, key string, expected, value []byte) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, found := m.data[key]
	if !found || !bytes.Equal(current, expected) {
		return false, nil
	}
	m.data[key] = bytes.Clone(value)
	return true, nil
}

// Delete removes the key; absent keys are a no-op.
func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

// ListKeys returns every key with the given prefix, sorted for stable
// output.
func (m *MemoryKV) ListKeys(_ context.Context, prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]string, 0, len(m.data))
	for key := range m.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
