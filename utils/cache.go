// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"quotely/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds live wizard sessions.
	SessionCacheClient *redis.Client
	// HandoffCacheClient is the dedicated client for the pending-quote slot.
	HandoffCacheClient *redis.Client
)

// InitRedis initializes all Redis clients.
func InitRedis() {
	InitSessionCache()
	InitHandoffCache()
}

// InitSessionCache initializes the Redis client backing wizard sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitHandoffCache initializes the Redis client for the handoff slot.
func InitHandoffCache() {
	HandoffCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisHandoffDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := HandoffCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Handoff): %v", err)
	}
}

// GetHandoffCacheClient returns the Redis client for the handoff slot.
func GetHandoffCacheClient() *redis.Client {
	if HandoffCacheClient == nil {
		InitHandoffCache()
	}
	return HandoffCacheClient
}
