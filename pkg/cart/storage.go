package cart

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by a Storage when no cart was saved under the key.
var ErrNotFound = errors.New("cart: no saved state")

// Storage is the durable key/value store holding serialized carts.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

// MemoryStorage keeps carts in process memory.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStorage returns an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

// Get returns a copy of the blob under key, or ErrNotFound.
func (m *MemoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set stores a copy of data under key.
func (m *MemoryStorage) Set(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.data[key] = stored
	return nil
}

// KeyFor scopes the base storage key to a client session. An empty session uses
// the base key itself.
func KeyFor(base, session string) string {
	if session == "" {
		return base
	}
	return base + ":" + session
}
