package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores JSON values under CacheName::key with the TTL configured for CacheName
type Cache struct {
	client    *Client
	cacheName string
	ttl       time.Duration
}

// NewCache creates a cache named cacheName. The TTL comes from the client configuration.
func NewCache(client *Client, cacheName string) *Cache {
	return &Cache{
		client:    client,
		cacheName: cacheName,
		ttl:       client.config.TTLFor(cacheName),
	}
}

// Name returns the cache name used as key prefix
func (c *Cache) Name() string {
	return c.cacheName
}

// TTL returns the expiration applied to every stored value
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// buildCacheKey constructs the full cache key using CacheName::cacheKey format
func (c *Cache) buildCacheKey(key string) string {
	if c.cacheName != "" {
		return c.cacheName + "::" + key
	}
	return key
}

// Get decodes the value stored under key into dest. found is false when the key is absent.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, found, err := c.client.GetBytes(ctx, c.buildCacheKey(key))
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to deserialize cached value %s: %w", key, err)
	}
	return true, nil
}

// Set stores value as JSON under key
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.Set(ctx, c.buildCacheKey(key), data, c.ttl)
}

// Clear removes every key of this cache matching pattern
func (c *Cache) Clear(ctx context.Context, pattern string) (int, error) {
	keys, err := c.client.ScanKeys(ctx, c.buildCacheKey(pattern), 100)
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}
	if err := c.client.Delete(ctx, keys...); err != nil {
		return 0, err
	}
	return len(keys), nil
}
