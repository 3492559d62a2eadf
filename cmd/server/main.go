// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/uno-arena/server/internal/config"
	"github.com/uno-arena/server/internal/engine"
	"github.com/uno-arena/server/internal/handlers"
	"github.com/uno-arena/server/internal/history"
	"github.com/uno-arena/server/internal/middleware"
	"github.com/uno-arena/server/internal/store"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	st, recorder := buildStore(cfg, logger)

	opts := []engine.Option{engine.WithLogger(logger)}
	if recorder != nil {
		opts = append(opts, engine.WithRecorder(recorder))
	}
	eng := engine.New(st, opts...)
	srv := handlers.NewServer(eng, st, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.LogMiddleware(logger))

	r.Get("/health", handlers.HealthHandler())
	r.Get("/cards", handlers.CatalogHandler())
	r.Get("/rooms", handlers.ListRoomsHandler(srv))
	r.Get("/game/ws/{roomID}", handlers.GameWSHandler(logger, srv))

	logger.Infof("listening on %s (store: %s)", cfg.Addr, cfg.StoreBackend)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}

// buildStore wires the configured store backend and, when Redis is in play,
// the action-log recorder sharing the same client.
func buildStore(cfg config.Config, logger *logrus.Logger) (store.Store, history.Recorder) {
	if cfg.StoreBackend != "redis" {
		return store.NewMemory(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatalf("connect to redis at %s: %v", cfg.RedisAddr, err)
	}

	var recorder history.Recorder
	if cfg.HistoryQueue != "" {
		recorder = history.NewRedisRecorder(client, cfg.HistoryQueue)
	}
	return store.NewRedis(client), recorder
}
