// Package redis creates the optional Redis client used by the listing cache.
package redis

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"vuttr_backend/internal/platform/config"
)

// ErrNotConfigured is returned when no Redis address is configured.
var ErrNotConfigured = errors.New("redis address not configured")

// NewRedisClient connects to Redis using the process configuration and
// verifies the connection with a ping.
func NewRedisClient(cfg config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, ErrNotConfigured
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.RedisAddr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.RedisAddr)
	return rdb, nil
}
