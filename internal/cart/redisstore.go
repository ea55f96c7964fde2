package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the cart snapshot in Redis, for deployments that keep
// session carts server-side instead of on the local filesystem. Carts carry no
// TTL: an abandoned cart must survive until the user clears it.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a Redis-backed snapshot store. A non-empty sessionID
// scopes the key to that session; each browser session owns exactly one cart.
func NewRedisStore(client *redis.Client, sessionID string) *RedisStore {
	key := SnapshotKey
	if sessionID != "" {
		key = SnapshotKey + ":" + sessionID
	}
	return &RedisStore{
		client: client,
		key:    key,
	}
}

func (r *RedisStore) Load(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

func (r *RedisStore) Save(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}
