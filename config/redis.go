package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a Redis client, or nil when Redis is unreachable.
// Callers treat nil as "cache runs in memory".
func ConnectRedis(cfg Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARNING: Redis unavailable (%v), cache falls back to memory", err)
		return nil
	}
	log.Println("Redis connected:", cfg.RedisAddr)
	return client
}
