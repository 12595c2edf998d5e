package session

import (
	"context"
	"errors"
	"sync"
)

// Storage keys. These are the only two entries the session ever persists,
// and they are always written and removed together.
const (
	keyToken = "token"
	keyUser  = "current_user"
)

// ErrNotFound is returned by Storage implementations when a key is absent.
var ErrNotFound = errors.New("session: key not found")

// Storage is the durable key/value store the session survives restarts in.
// Writers all run through the Store, so implementations only need to be safe
// for concurrent access, not transactional.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error
}

// MemoryStorage is a map-backed Storage. Sessions kept in it do not survive a
// restart; it exists for tests and for running without Redis.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStorage) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}
