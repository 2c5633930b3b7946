package cache

import (
	"context"
	"errors"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"

	"github.com/algosender/algosender/config"
)

var ErrCacheUnknownType = errors.New("unknown cache type")

// NewCacheStore creates a new cache Store based on the provided configuration. It returns a nil
// Store when caching is disabled.
func NewCacheStore(ctx context.Context, cacheConfig *config.CacheConfig) (Store, error) {
	switch cacheConfig.Engine {
	case config.FreeCache:
		return NewFreecacheStore(freecache.NewCache(cacheConfig.Freecache.Size)), nil
	case config.Redis:
		c := redis.NewClient(&redis.Options{
			Addr:     cacheConfig.Redis.Addr,
			Password: cacheConfig.Redis.Password,
			DB:       cacheConfig.Redis.DB,
		})
		return NewRedisStore(ctx, c), nil
	case config.InMemory:
		return NewMemoryStore(), nil
	case config.NoCache:
		return nil, nil
	default:
		return nil, ErrCacheUnknownType
	}
}
