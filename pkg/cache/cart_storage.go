package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/ThushanAshraf/saree-simulate-studio/pkg/cart"
)

// CartStorage keeps serialized carts in Redis. Keys are written without expiration.
type CartStorage struct {
	client redis.Cmdable
}

// NewCartStorage returns cart storage backed by client.
func NewCartStorage(client redis.Cmdable) *CartStorage {
	return &CartStorage{client: client}
}

// Get returns the cart blob under key, or cart.ErrNotFound.
func (s *CartStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, cart.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cart %s from Redis: %w", key, err)
	}
	return data, nil
}

// Set stores the cart blob under key without expiry.
func (s *CartStorage) Set(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set cart %s in Redis: %w", key, err)
	}
	return nil
}
