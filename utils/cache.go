// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"servigo/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client, also used for the listings
	// change-notification channel.
	CacheClient *redis.Client
	// LocaleCacheClient is the dedicated client for persisting the active
	// language tag.
	LocaleCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitLocaleCache initializes the Redis client for locale persistence.
func InitLocaleCache() {
	LocaleCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLocaleDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := LocaleCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Locale Cache): %v", err)
	}
}

// GetLocaleCacheClient returns the Redis client for locale persistence.
func GetLocaleCacheClient() *redis.Client {
	if LocaleCacheClient == nil {
		InitLocaleCache()
	}
	return LocaleCacheClient
}
