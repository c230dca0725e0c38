package config

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func InitRedisServer(ctx context.Context) *redis.Client {
	addr := GetEnvOrDefault("REDIS_ADDRESS", "localhost:6379")

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: GetEnv("REDIS_PASSWORD"),
		DB:       0,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		// Lookup caching degrades to the static fallback lists without redis,
		// so a dead cache is not fatal here
		Logger.Warn("Redis unreachable, lookup caching disabled", zap.String("addr", addr), zap.Error(err))
	}

	return client
}
