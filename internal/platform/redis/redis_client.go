// Package redis provides the Redis client constructor.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis and verifies the connection with a ping.
// Callers treat a nil client as "run without cache".
func NewRedisClient(addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
