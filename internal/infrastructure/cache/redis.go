package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options carries the idempotency-store settings from config.
type Options struct {
	Addr        string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
}

// OpenRedis connects the idempotency store and verifies it with a ping.
func OpenRedis(opts Options) (*redis.Client, error) {
	if opts.PoolSize <= 0 {
		opts.PoolSize = 10
	}
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = 5 * time.Second
	}
	r := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		DB:          opts.DB,
		PoolSize:    opts.PoolSize,
		DialTimeout: opts.DialTimeout,
	})
	ctx, cancel := context.WithTimeout(context.Background(), opts.DialTimeout)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return r, nil
}
