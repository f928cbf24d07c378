package source

import (
	"context"
	"strings"
	"sync"
)

// Memory is an in-memory Source.
// Thread-safe for concurrent reads and writes.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory creates a new in-memory source.
func NewMemory() *Memory {
	return &Memory{
		blobs: make(map[string][]byte),
	}
}

// Open returns a region over a private copy of the named blob.
func (m *Memory) Open(ctx context.Context, name string) (*Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[name]
	if !ok {
		return nil, &OpenError{Name: name, Err: ErrNotFound}
	}

	// Copy so that later Puts cannot change live views.
	copied := make([]byte, len(data))
	copy(copied, data)

	return NewRegion(copied, nil), nil
}

// Put stores data under name.
func (m *Memory) Put(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]byte, len(data))
	copy(copied, data)
	m.blobs[name] = copied
}

// Delete removes a blob.
func (m *Memory) Delete(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blobs, name)
}

// List returns all names matching the prefix.
func (m *Memory) List(prefix string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var names []string
	for name := range m.blobs {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names
}
