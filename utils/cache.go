// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"islandstay/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient is the dedicated client for checkout session state.
	SessionCacheClient *redis.Client
	// HotelCacheClient is the dedicated client for hotel summary caching.
	HotelCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client for checkout session storage.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the checkout session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitHotelCache initializes the Redis client for hotel summary caching.
func InitHotelCache() {
	HotelCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := HotelCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Hotel Cache): %v", err)
	}
}

// GetHotelCacheClient returns the hotel summary cache client.
func GetHotelCacheClient() *redis.Client {
	if HotelCacheClient == nil {
		InitHotelCache()
	}
	return HotelCacheClient
}

// InitRedis initializes all Redis clients eagerly at startup.
func InitRedis() {
	InitSessionCache()
	InitHotelCache()
}
