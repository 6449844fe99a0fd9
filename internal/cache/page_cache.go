// Package cache holds the whole-page cache used by the index route. Rendered
// bytes are stored as-is in redis under a shared prefix so a single Clear can
// drop every cached page.
package cache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pagecache:"

type PageCache struct {
	client *redis.Client
	ttl    time.Duration

	hits   atomic.Int64
	misses atomic.Int64
}

func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl <= 0 {
		ttl = 20 * time.Second
	}
	return &PageCache{client: client, ttl: ttl}
}

// Get returns the cached body for key, if any. Redis errors count as misses:
// a broken cache must never break a page load.
func (c *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return data, true
}

func (c *PageCache) Set(ctx context.Context, key string, body []byte) error {
	return c.client.Set(ctx, keyPrefix+key, body, c.ttl).Err()
}

// Clear evicts every cached page.
func (c *PageCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Counters reports cache effectiveness since process start.
func (c *PageCache) Counters() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
