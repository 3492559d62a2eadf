// internal/store/redis.go
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/uno-arena/server/internal/models"
)

// roomKeyPrefix namespaces room records inside a shared Redis database.
const roomKeyPrefix = "room:"

// Redis stores each room's state as a JSON blob under room:<id>. It is the
// external key-value backing for deployments where the gateway process and
// the state should not share a lifetime.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an already-connected client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func roomKey(roomID string) string {
	return roomKeyPrefix + roomID
}

func (r *Redis) Get(ctx context.Context, roomID string) (*models.GameState, error) {
	data, err := r.client.Get(ctx, roomKey(roomID)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: redis get %s: %w", roomID, err)
	}
	var state models.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("store: decode state for %s: %w", roomID, err)
	}
	return &state, nil
}

func (r *Redis) Save(ctx context.Context, state *models.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("store: encode state for %s: %w", state.RoomID, err)
	}
	if err := r.client.Set(ctx, roomKey(state.RoomID), data, 0).Err(); err != nil {
		return fmt.Errorf("store: redis set %s: %w", state.RoomID, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, roomID string) error {
	if err := r.client.Del(ctx, roomKey(roomID)).Err(); err != nil {
		return fmt.Errorf("store: redis del %s: %w", roomID, err)
	}
	return nil
}

func (r *Redis) List(ctx context.Context) ([]*models.GameState, error) {
	var states []*models.GameState
	iter := r.client.Scan(ctx, 0, roomKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err == redis.Nil {
			continue // expired between scan and get
		}
		if err != nil {
			return nil, fmt.Errorf("store: redis get %s: %w", iter.Val(), err)
		}
		var state models.GameState
		if err := json.Unmarshal(data, &state); err != nil {
			return nil, fmt.Errorf("store: decode state for %s: %w", iter.Val(), err)
		}
		states = append(states, &state)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("store: redis scan: %w", err)
	}
	return states, nil
}
