// Package redis provides the shared Redis client factory.
package redis

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the Redis instance configured via REDIS_HOST,
// REDIS_PORT and REDIS_PASSWORD. With no host configured it targets a local
// instance, which suits the single-user deployment this app is built for.
func NewRedisClient() (*redis.Client, error) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	password := os.Getenv("REDIS_PASSWORD")

	rdb := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       0,
	})

	// 接続確認
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", host+":"+port, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", host+":"+port)
	return rdb, nil
}
