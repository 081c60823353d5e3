package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const slotKeyPrefix = "slot"

// SlotStorage stores each named slot as a plain Redis string.
// Key format: "slot:{name}"
type SlotStorage struct {
	client *RedisClient
}

// NewSlotStorage creates a SlotStorage backed by the given RedisClient.
func NewSlotStorage(r *RedisClient) *SlotStorage {
	return &SlotStorage{client: r}
}

// Get returns the slot value. A missing key is reported as found=false, not as an error.
func (s *SlotStorage) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Client().Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("slot get: %w", err)
	}
	return val, true, nil
}

// Set replaces the slot value. Slots never expire.
func (s *SlotStorage) Set(ctx context.Context, key, value string) error {
	if err := s.client.Client().Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("slot set: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (s *SlotStorage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *SlotStorage) key(name string) string {
	return fmt.Sprintf("%s:%s", slotKeyPrefix, name)
}
