package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/pos-attendance-go/internal/config"
	"github.com/redis/go-redis/v9"
)

// Client wraps the go-redis client with the typed helpers the access gate uses.
type Client struct {
	*redis.Client
}

// New creates a new Redis client from the provided configuration.
// Returns nil if the URL is empty (Redis not configured).
func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	// Apply configuration overrides
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	opts.MinIdleConns = cfg.MinIdleConns
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{Client: client}, nil
}

// Wrap adapts an existing go-redis client.
func Wrap(c *redis.Client) *Client {
	return &Client{Client: c}
}

// GetBool returns the cached flag under key. found is false on a cache miss.
func (c *Client) GetBool(ctx context.Context, key string) (value bool, found bool, err error) {
	raw, err := c.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return raw == "1", true, nil
}

// SetBool caches a flag under key for ttl.
func (c *Client) SetBool(ctx context.Context, key string, value bool, ttl time.Duration) error {
	raw := "0"
	if value {
		raw = "1"
	}
	return c.Set(ctx, key, raw, ttl).Err()
}

// Health checks if the Redis connection is healthy.
func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx).Err()
}
