package database

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates a Redis client using environment variables.
//
// Supported env vars (local-friendly):
//   - REDIS_ADDR (default: localhost:6379)
//   - REDIS_PASSWORD (optional)
//   - REDIS_DB (default: 0)
//
// The connection is pinged at startup so a bad address fails fast instead of
// surfacing on the first wizard session.
func ConnectRedis() *redis.Client {
	db := 0
	if v, err := strconv.Atoi(getenvDefault("REDIS_DB", "0")); err == nil {
		db = v
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password: getenvDefault("REDIS_PASSWORD", ""),
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	return rdb
}
