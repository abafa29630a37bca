package utils

import (
	"context"
	"log"
	"time"

	"workmate/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient is the dedicated client for session persistence.
	SessionCacheClient *redis.Client
	// FeedCacheClient is the dedicated client for the jobs feed cache.
	FeedCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client used for session persistence.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Session): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for session persistence.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitFeedCache initializes the Redis client for the jobs feed cache.
func InitFeedCache() {
	FeedCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisFeedDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := FeedCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Feed Cache): %v", err)
	}
}

// GetFeedCacheClient returns the Redis client for the jobs feed cache.
func GetFeedCacheClient() *redis.Client {
	if FeedCacheClient == nil {
		InitFeedCache()
	}
	return FeedCacheClient
}
