// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"careinsight/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient backs the sent-dose ledger and the AI chat context.
var CacheClient *redis.Client

// NewCacheClient builds a cache client without checking that Redis is up.
func NewCacheClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        config.AppConfig.RedisAddr,
		Password:    config.AppConfig.RedisPassword,
		DB:          config.AppConfig.RedisCacheDB,
		DialTimeout: 2 * time.Second,
	})
}

// InitCache initializes the generic Redis cache client and exits if Redis is unreachable.
func InitCache() {
	CacheClient = NewCacheClient()
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
