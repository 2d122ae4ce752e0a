// Package cache holds the optional Redis-backed projection cache for todo
// list searches. The in-memory registry stays the source of truth; every
// write path invalidates.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/charliemarlow/APIProjects/internal/dto"
)

const searchPrefix = "todolists:search:"

// SearchCache caches search results keyed by the (name, description)
// filter pair.
type SearchCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSearchCache returns a new SearchCache.
func NewSearchCache(rdb *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{rdb: rdb, ttl: ttl}
}

// Key builds the cache key for a filter pair. A nil filter and an empty
// filter are distinct searches, so presence is part of the key.
func Key(name, description *string) string {
	k := searchPrefix
	if name != nil {
		k += "n=" + *name
	}
	k += "\x1f"
	if description != nil {
		k += "d=" + *description
	}
	return k
}

// Get returns the cached result for key, or nil on miss.
func (c *SearchCache) Get(ctx context.Context, key string) ([]dto.TodoListResponse, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var lists []dto.TodoListResponse
	if err := json.Unmarshal(b, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// Set stores the result for key.
func (c *SearchCache) Set(ctx context.Context, key string, lists []dto.TodoListResponse) error {
	b, err := json.Marshal(lists)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

// InvalidateAll drops every cached search (called on any list mutation).
func (c *SearchCache) InvalidateAll(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, searchPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
