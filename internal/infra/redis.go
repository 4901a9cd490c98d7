package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis connects the shared Redis client. Redis plays two roles here:
// the dashboard read cache (best effort, short TTL) and the jobs:email
// queue the worker pool consumes. Connectivity is validated at startup so
// a bad REDIS_URL fails the boot, not the first pedido.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
