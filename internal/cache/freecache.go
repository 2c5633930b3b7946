package cache

import (
	"errors"
	"time"

	"github.com/coocood/freecache"
)

// FreecacheStore is an implementation of Store using freecache.
type FreecacheStore struct {
	cache *freecache.Cache
}

// NewFreecacheStore initializes a FreecacheStore.
func NewFreecacheStore(c *freecache.Cache) *FreecacheStore {
	return &FreecacheStore{
		cache: c,
	}
}

// Get retrieves a value by key.
func (f *FreecacheStore) Get(key string) ([]byte, error) {
	value, err := f.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, ErrCacheNotFound
		}
		return nil, errors.Join(ErrCacheFailedToGet, err)
	}
	return value, nil
}

// Set stores a value with a TTL. Freecache expires in whole seconds, so positive TTLs below a
// second are rounded up.
func (f *FreecacheStore) Set(key string, value []byte, ttl time.Duration) error {
	seconds := int(ttl.Seconds())
	if ttl > 0 && seconds == 0 {
		seconds = 1
	}

	err := f.cache.Set([]byte(key), value, seconds)
	if err != nil {
		return errors.Join(ErrCacheFailedToSet, err)
	}
	return nil
}

// Del removes values by key.
func (f *FreecacheStore) Del(keys ...string) error {
	var deleted bool
	for _, key := range keys {
		if f.cache.Del([]byte(key)) {
			deleted = true
		}
	}

	if !deleted {
		return ErrCacheNotFound
	}
	return nil
}
