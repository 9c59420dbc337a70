package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisClient holds the Redis client connection
type RedisClient struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisClient connects to addr and verifies the connection with a ping.
func NewRedisClient(addr, password string, db int, logger *zap.Logger) (*RedisClient, error) {
	if addr == "" {
		return nil, errors.New("REDIS_ADDR environment variable not set")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pong, err := client.Ping(ctx).Result()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("connected to Redis", zap.String("addr", addr), zap.String("ping", pong))

	return &RedisClient{client: client, logger: logger}, nil
}

// Close closes the Redis connection
func (c *RedisClient) Close() {
	if c.client != nil {
		if err := c.client.Close(); err != nil {
			c.logger.Warn("failed to close Redis connection", zap.Error(err))
			return
		}
		c.logger.Info("Redis connection closed")
	}
}

// GetClient returns the underlying *redis.Client instance
func (c *RedisClient) GetClient() *redis.Client {
	return c.client
}
