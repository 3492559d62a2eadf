// internal/store/memory.go
package store

import (
	"context"
	"sync"

	"github.com/uno-arena/server/internal/models"
)

// Memory is the default in-process Store. It clones state on the way in and
// out so a caller can never mutate a committed record through a stale pointer.
type Memory struct {
	mu    sync.RWMutex
	rooms map[string]*models.GameState
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{rooms: make(map[string]*models.GameState)}
}

func (m *Memory) Get(_ context.Context, roomID string) (*models.GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.rooms[roomID]
	if !ok {
		return nil, ErrNotFound
	}
	return state.Clone(), nil
}

func (m *Memory) Save(_ context.Context, state *models.GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[state.RoomID] = state.Clone()
	return nil
}

func (m *Memory) Delete(_ context.Context, roomID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, roomID)
	return nil
}

func (m *Memory) List(_ context.Context) ([]*models.GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	states := make([]*models.GameState, 0, len(m.rooms))
	for _, state := range m.rooms {
		states = append(states, state.Clone())
	}
	return states, nil
}
