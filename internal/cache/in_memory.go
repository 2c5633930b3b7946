package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func WithNow(nowFunc func() time.Time) func(*MemoryStore) {
	return func(s *MemoryStore) {
		s.now = nowFunc
	}
}

func NewMemoryStore(opts ...func(*MemoryStore)) *MemoryStore {
	s := &MemoryStore{
		data: make(map[string]entry),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Get retrieves a value by key. Expired keys are reported as not found.
func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, found := s.data[key]
	if !found || s.expired(e) {
		return nil, ErrCacheNotFound
	}

	return e.value, nil
}

// Set stores a key-value pair. A ttl of zero never expires.
func (s *MemoryStore) Set(key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.data[key] = e

	return nil
}

// Del removes keys from the store.
func (s *MemoryStore) Del(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted bool
	for _, key := range keys {
		e, found := s.data[key]
		if !found {
			continue
		}
		delete(s.data, key)
		if !s.expired(e) {
			deleted = true
		}
	}

	if !deleted {
		return ErrCacheNotFound
	}
	return nil
}

func (s *MemoryStore) expired(e entry) bool {
	return !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt)
}
