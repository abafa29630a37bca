package feed

import (
	"context"
	"encoding/json"
	"time"

	"workmate/models"

	"github.com/go-redis/redis/v8"
)

// Cache holds the open-jobs listing between backend fetches. A miss or a
// corrupt entry reads as (nil, nil); callers fall through to the network.
type Cache interface {
	SetJobs(ctx context.Context, jobs []models.Job) error
	GetJobs(ctx context.Context) ([]models.Job, error)
	Invalidate(ctx context.Context) error
}

const jobsKey = "feed:jobs:open"

// RedisCache caches the jobs feed in Redis with a TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) SetJobs(ctx context.Context, jobs []models.Job) error {
	data, err := json.Marshal(jobs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, jobsKey, data, c.ttl).Err()
}

func (c *RedisCache) GetJobs(ctx context.Context) ([]models.Job, error) {
	val, err := c.client.Get(ctx, jobsKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var jobs []models.Job
	if err := json.Unmarshal([]byte(val), &jobs); err != nil {
		// Corrupt entry reads as a miss; the next SetJobs overwrites it.
		return nil, nil
	}
	return jobs, nil
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, jobsKey).Err()
}
