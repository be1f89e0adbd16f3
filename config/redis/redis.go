package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gauravmalhotra04/raiden-ai/config"
)

var client *redis.Client

// Connect creates the shared Redis client and checks the connection.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address not configured")
	}

	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	client = c
	return c, nil
}

// Disconnect closes the shared Redis client, if any.
func Disconnect() {
	if client == nil {
		return
	}
	_ = client.Close()
	client = nil
}
