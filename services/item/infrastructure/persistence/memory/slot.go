// Package memory provides a process-local SlotStorage. Contents are lost on
// restart; use it for development and tests.
package memory

import (
	"context"
	"sync"

	"github.com/campuslost/lostfound/services/item/domain/repositories"
)

// SlotStorage is a map-backed repositories.SlotStorage safe for concurrent use.
type SlotStorage struct {
	mu    sync.RWMutex
	slots map[string]string
}

var _ repositories.SlotStorage = (*SlotStorage)(nil)

// NewSlotStorage returns an empty SlotStorage.
func NewSlotStorage() *SlotStorage {
	return &SlotStorage{slots: make(map[string]string)}
}

func (m *SlotStorage) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.slots[key]
	return v, ok, nil
}

func (m *SlotStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
	return nil
}

// Ping always succeeds; it lets the memory backend stand in a health check.
func (m *SlotStorage) Ping(context.Context) error {
	return nil
}
