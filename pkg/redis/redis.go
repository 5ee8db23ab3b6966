package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vibecommerce/vibecommerce-backend/config"
	"github.com/vibecommerce/vibecommerce-backend/pkg/logger"
)

var client *redis.Client

// Initialize connects to Redis. Callers should treat a connection failure as
// non-fatal; the catalog works without the cache.
func Initialize(cfg *config.RedisConfig) error {
	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client = nil
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis connection established", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})
	return nil
}

// GetClient returns the shared client, or nil when the cache is disabled
func GetClient() *redis.Client {
	return client
}

// Close shuts down the Redis connection
func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
