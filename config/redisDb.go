package config

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

var (
	rdb *redis.Client
)

// GetRedisDB returns the shared client, or nil when redis is not configured.
func GetRedisDB() *redis.Client {
	return rdb
}

// ConnectRedis dials REDIS_ADDRESS. Redis only backs the rate limiter,
// so a missing or unreachable redis is not fatal: the limiter fails open.
func ConnectRedis() {
	address := strings.TrimSpace(os.Getenv("REDIS_ADDRESS"))
	if address == "" {
		log.Println("REDIS_ADDRESS not set; rate limiting disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr: address,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unreachable at %s: %v; rate limiting disabled", address, err)
		return
	}
	rdb = client
}

// CloseRedis closes the shared client if one was opened.
func CloseRedis() {
	if rdb != nil {
		_ = rdb.Close()
		rdb = nil
	}
}
