package storage

import (
	"context"
	"sync"
)

// Memory is an in-process Store.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Set(_ context.Context, key string, value any) error {
	if key == "" {
		return ErrEmptyKey
	}
	b, err := encode(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = b
	m.mu.Unlock()
	return nil
}

func (m *Memory) Get(_ context.Context, key string, dst any) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}
	if err := resetDst(dst); err != nil {
		return false, err
	}
	m.mu.RLock()
	b, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, decode(b, dst)
}

func (m *Memory) Remove(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Clear(context.Context) error {
	m.mu.Lock()
	clear(m.data)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Available(context.Context) bool {
	return true
}

func (m *Memory) Update(_ context.Context, key string, dst any, fn func(found bool) error) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := resetDst(dst); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	b, found := m.data[key]
	if found {
		if err := decode(b, dst); err != nil {
			return err
		}
	}
	if err := fn(found); err != nil {
		return err
	}
	out, err := encode(dst)
	if err != nil {
		return err
	}
	m.data[key] = out
	return nil
}

// Keys returns a snapshot of the stored keys.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys
}
