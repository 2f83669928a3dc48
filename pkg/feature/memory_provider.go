package feature

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
)

// MemoryProvider keeps flags in process.
type MemoryProvider struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewMemoryProvider seeds a provider from seed, then applies overrides.
// Overrides may only switch flags that are seeded.
func NewMemoryProvider(seed map[string]bool, overrides map[string]bool) (*MemoryProvider, error) {
	p := &MemoryProvider{flags: make(map[string]bool, len(seed))}
	for name, enabled := range seed {
		if name == "" {
			return nil, errors.Join(ErrInvalidFlag, errors.New("flag name cannot be empty"))
		}
		p.flags[name] = enabled
	}
	for name, enabled := range overrides {
		if _, ok := p.flags[name]; !ok {
			return nil, errors.Join(ErrFlagNotFound, errors.New("override for undeclared flag "+name))
		}
		p.flags[name] = enabled
	}
	return p, nil
}

func (m *MemoryProvider) IsEnabled(_ context.Context, name string) (bool, error) {
	m.mu.RLock()
	enabled, ok := m.flags[name]
	m.mu.RUnlock()
	if !ok {
		return false, ErrFlagNotFound
	}
	return enabled, nil
}

func (m *MemoryProvider) ListFlags(context.Context) ([]Flag, error) {
	m.mu.RLock()
	out := make([]Flag, 0, len(m.flags))
	for name, enabled := range m.flags {
		out = append(out, Flag{Name: name, Enabled: enabled})
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b Flag) int { return cmp.Compare(a.Name, b.Name) })
	return out, nil
}

func (m *MemoryProvider) SetEnabled(_ context.Context, name string, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.flags[name]; !ok {
		return ErrFlagNotFound
	}
	m.flags[name] = enabled
	return nil
}
