package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"originbot/types"
)

// CacheConfig configures the Redis query-result cache
type CacheConfig struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
	// Prefix namespaces cache keys. Default: "evidence:"
	Prefix string
	// TTL bounds how long a cached result list is served. Default: 15 minutes.
	TTL time.Duration
}

// RedisCache is a TTL'd query-to-URL-list cache in front of the search
// backend. Only derived queries and result URLs are stored, never user
// documents, and every Redis failure degrades to a cache miss.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCacheFromEnv creates a cache using environment variables
// REDIS_ADDR, REDIS_PASS, CACHE_TTL_SECONDS (optional)
func NewRedisCacheFromEnv() (*RedisCache, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	ttl := 15 * time.Minute
	if t := os.Getenv("CACHE_TTL_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}
	return NewRedisCache(CacheConfig{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		TTL:      ttl,
	})
}

// NewRedisCache creates a cache wrapper and verifies connectivity
func NewRedisCache(cfg CacheConfig) (*RedisCache, error) {
	if cfg.Prefix == "" {
		cfg.Prefix = "evidence:"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 15 * time.Minute
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return &RedisCache{client: client, prefix: cfg.Prefix, ttl: cfg.TTL}, nil
}

// Get returns the cached URL list for a query, if present. A cached empty
// list is a valid hit: it remembers a recent genuine no-match.
func (c *RedisCache) Get(ctx context.Context, query string) ([]string, bool) {
	raw, err := c.client.Get(ctx, c.key(query)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("Warning: evidence cache get failed: %v", err)
		return nil, false
	}

	var urls []string
	if err := json.Unmarshal([]byte(raw), &urls); err != nil {
		log.Printf("Warning: evidence cache entry malformed, dropping: %v", err)
		c.client.Del(ctx, c.key(query))
		return nil, false
	}
	return urls, true
}

// Set stores a query's URL list with the configured TTL
func (c *RedisCache) Set(ctx context.Context, query string, urls []string) {
	if urls == nil {
		urls = []string{}
	}
	raw, err := json.Marshal(urls)
	if err != nil {
		log.Printf("Warning: failed to encode evidence cache entry: %v", err)
		return
	}
	if err := c.client.Set(ctx, c.key(query), raw, c.ttl).Err(); err != nil {
		log.Printf("Warning: evidence cache set failed: %v", err)
	}
}

// Close releases the underlying Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) key(query string) string {
	return c.prefix + types.GenerateID(query)
}
