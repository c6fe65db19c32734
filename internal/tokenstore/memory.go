package tokenstore

import (
	"context"
	"sync"
	"time"
)

type Memory struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	now     func() time.Time
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{revoked: map[string]time.Time{}, now: time.Now}
}

func (m *Memory) Revoke(_ context.Context, id string, until time.Time) error {
	m.mu.Lock()
	m.revoked[id] = until
	m.mu.Unlock()
	return nil
}

func (m *Memory) IsRevoked(_ context.Context, id string) (bool, error) {
	m.mu.RLock()
	until, ok := m.revoked[id]
	m.mu.RUnlock()
	return ok && m.now().Before(until), nil
}

// Sweep drops entries whose tokens have expired and reports how many were
// removed.
func (m *Memory) Sweep() int {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, until := range m.revoked {
		if !now.Before(until) {
			delete(m.revoked, id)
			removed++
		}
	}
	return removed
}
