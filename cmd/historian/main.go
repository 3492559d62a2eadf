// cmd/historian/main.go is an asynchronous worker that drains the action
// queue the game server publishes to and emits each record as a structured
// audit log line. Rooms live only in the store, so the audit trail is the
// queue plus whatever log shipper tails this process.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/uno-arena/server/internal/config"
	"github.com/uno-arena/server/internal/history"
)

const popTimeout = 3 * time.Second

// HistorianService pops action records from the Redis queue and logs them.
type HistorianService struct {
	redisClient *redis.Client
	queueName   string
	log         *logrus.Logger

	ctx      context.Context
	cancelFn context.CancelFunc
}

// NewHistorianService constructs a HistorianService from the environment.
func NewHistorianService(cfg config.Config, log *logrus.Logger) *HistorianService {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	queue := cfg.HistoryQueue
	if queue == "" {
		queue = history.DefaultQueueName
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &HistorianService{
		redisClient: rdb,
		queueName:   queue,
		log:         log,
		ctx:         ctx,
		cancelFn:    cancel,
	}
}

// Run blocks reading the queue until Stop is called.
func (hs *HistorianService) Run() {
	hs.log.WithField("queue", hs.queueName).Info("historian started")
	hs.readRedisLoop()
	hs.log.Info("historian shutting down")
}

// readRedisLoop continuously uses BLPop to retrieve records from the queue.
// The pop timeout keeps the loop responsive to context cancellation.
func (hs *HistorianService) readRedisLoop() {
	for {
		select {
		case <-hs.ctx.Done():
			return
		default:
		}

		res, err := hs.redisClient.BLPop(hs.ctx, popTimeout, hs.queueName).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || hs.ctx.Err() != nil {
				continue
			}
			hs.log.Errorf("BLPop: %v", err)
			continue
		}
		if len(res) < 2 {
			continue
		}

		// res[0] is the queue name and res[1] the payload.
		var rec history.Record
		if err := json.Unmarshal([]byte(res[1]), &rec); err != nil {
			hs.log.Warnf("invalid action record: %v", err)
			continue
		}

		hs.log.WithFields(logrus.Fields{
			"room":      rec.RoomID,
			"op":        rec.Op,
			"player":    rec.PlayerID,
			"version":   rec.Version,
			"timestamp": rec.Timestamp,
		}).Info("action")
	}
}

// Stop gracefully stops the historian service.
func (hs *HistorianService) Stop() {
	hs.cancelFn()
}

func main() {
	cfg := config.Load()

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	hs := NewHistorianService(cfg, log)
	go hs.Run()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	hs.Stop()
	log.Info("historian shutdown complete")
}
