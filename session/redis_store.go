package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"workmate/models"

	"github.com/go-redis/redis/v8"
)

const redisSessionKey = "workmate:session"

// RedisStore persists the identity as a JSON blob with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed persistent store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Save(ctx context.Context, id models.Identity) error {
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("session: failed to marshal identity: %w", err)
	}
	return r.client.Set(ctx, redisSessionKey, data, r.ttl).Err()
}

func (r *RedisStore) Load(ctx context.Context) (*models.Identity, error) {
	val, err := r.client.Get(ctx, redisSessionKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var id models.Identity
	if err := json.Unmarshal([]byte(val), &id); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal identity: %w", err)
	}
	if !id.WellFormed() {
		return nil, fmt.Errorf("session: persisted identity incomplete")
	}
	return &id, nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	return r.client.Del(ctx, redisSessionKey).Err()
}
