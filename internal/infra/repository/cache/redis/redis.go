package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/angristan/spotify-browse/internal/infra/repository/cache"
	"github.com/redis/go-redis/v9"
)

var (
	ErrCacheMiss = errors.New("cache: key not found")
)

const operationTimeout = 5 * time.Second

type RedisCache struct {
	redisClient *redis.Client
	defaultTTL  time.Duration
}

var _ cache.Cache = (*RedisCache)(nil)

func NewCache(
	redisClient *redis.Client,
	defaultTTL time.Duration,
) *RedisCache {
	return &RedisCache{
		redisClient: redisClient,
		defaultTTL:  defaultTTL,
	}
}

// NewCacheFromURL connects to the server at redisURL and checks it answers.
func NewCacheFromURL(ctx context.Context, redisURL string, defaultTTL time.Duration) (*RedisCache, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	client := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("client.Ping: %w", err)
	}

	return NewCache(client, defaultTTL), nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	value, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}

		return "", err
	}

	return value, nil
}

// Set stores value under key. A zero ttl falls back to the default TTL; a
// zero default stores the key without expiry.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	if ttl == 0 {
		ttl = c.defaultTTL
	}

	return c.redisClient.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.redisClient.Close()
}
