// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"dateplanner/config"
)

// NewCacheClient creates the generic Redis cache client (partner lookups and
// other short-lived caching).
func NewCacheClient(cfg config.Config) (*redis.Client, error) {
	return newRedisClient(cfg, cfg.RedisCacheDB)
}

// NewAuthCacheClient creates the dedicated Redis client for session token
// hash caching.
func NewAuthCacheClient(cfg config.Config) (*redis.Client, error) {
	return newRedisClient(cfg, cfg.RedisAuthDB)
}

func newRedisClient(cfg config.Config, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis (db %d): %w", db, err)
	}
	return client, nil
}
