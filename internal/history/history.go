// internal/history/history.go

// Package history publishes a record of every committed room mutation onto a
// Redis list, where an external consumer can archive or replay them. The
// engine works fine without a recorder; this is a side channel, not a
// correctness gate.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultQueueName is the Redis list the records are pushed onto.
const DefaultQueueName = "uno_actions"

// Record is the minimal trace of one committed operation.
type Record struct {
	RoomID    string `json:"room_id"`
	Op        string `json:"op"`
	PlayerID  string `json:"player_id,omitempty"`
	Version   int64  `json:"version"`
	Timestamp int64  `json:"timestamp"`
}

// Recorder accepts committed-operation records.
type Recorder interface {
	Publish(ctx context.Context, rec Record) error
}

// RedisRecorder pushes JSON-encoded records onto a Redis list.
type RedisRecorder struct {
	client *redis.Client
	queue  string
}

// NewRedisRecorder wraps an already-connected client. An empty queue name
// falls back to DefaultQueueName.
func NewRedisRecorder(client *redis.Client, queue string) *RedisRecorder {
	if queue == "" {
		queue = DefaultQueueName
	}
	return &RedisRecorder{client: client, queue: queue}
}

func (r *RedisRecorder) Publish(ctx context.Context, rec Record) error {
	if rec.Timestamp == 0 {
		rec.Timestamp = time.Now().UnixMilli()
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("history: marshal record: %w", err)
	}
	if err := r.client.RPush(ctx, r.queue, data).Err(); err != nil {
		return fmt.Errorf("history: rpush to %q: %w", r.queue, err)
	}
	return nil
}
