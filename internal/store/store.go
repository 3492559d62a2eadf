// internal/store/store.go

// Package store holds the authoritative GameState record for each room behind
// a small key-value interface, so the rules engine never touches a shared
// mutable map directly.
package store

import (
	"context"
	"errors"

	"github.com/uno-arena/server/internal/models"
)

// ErrNotFound is returned by Get when no state exists for the room.
var ErrNotFound = errors.New("store: room not found")

// Store persists one GameState per room id. Implementations must guarantee
// at-most-one-writer-at-a-time per key; the engine serializes its own
// read-validate-mutate-persist span per room on top of that. List may return
// slightly stale snapshots — the version counter lets consumers detect it.
type Store interface {
	Get(ctx context.Context, roomID string) (*models.GameState, error)
	Save(ctx context.Context, state *models.GameState) error
	Delete(ctx context.Context, roomID string) error
	List(ctx context.Context) ([]*models.GameState, error)
}
