package memory

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"taskapp/internal/core/port"
)

type cacheRepository struct {
	cache *cache.Cache
}

// NewCacheRepository is the in-process cache backend, used when no redis
// address is configured.
func NewCacheRepository() port.CacheRepository {
	return &cacheRepository{
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (c *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.cache.Set(key, value, ttl)
	return nil
}

// Get returns nil on a miss; a miss is not an error.
func (c *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if value, found := c.cache.Get(key); found {
		return value.([]byte), nil
	}

	return nil, nil
}

func (c *cacheRepository) Delete(ctx context.Context, key string) error {
	c.cache.Delete(key)
	return nil
}

func (c *cacheRepository) DeleteByPrefix(ctx context.Context, prefix string) error {
	for key := range c.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			c.cache.Delete(key)
		}
	}

	return nil
}

func (c *cacheRepository) Close() error {
	c.cache.Flush()
	return nil
}
