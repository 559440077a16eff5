package cache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type redisKV struct {
	client *redis.Client
}

// NewRedis wraps a Redis client as the cache KV.
func NewRedis(client *redis.Client) KV {
	return &redisKV{client: client}
}

func (r *redisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *redisKV) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *redisKV) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
