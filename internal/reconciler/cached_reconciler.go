package reconciler

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	defaultCacheExpiration = 30 * time.Second
	cacheCleanup           = 1 * time.Minute
)

type StatusReconciler interface {
	Reconcile(ctx context.Context, txID string) (Classification, error)
}

// CachedReconciler remembers terminal classifications. Pending results are never cached.
type CachedReconciler struct {
	reconciler StatusReconciler
	cacheStore *cache.Cache
	expiration time.Duration
}

func WithCacheExpiration(d time.Duration) func(*CachedReconciler) {
	return func(c *CachedReconciler) {
		if d > 0 {
			c.expiration = d
		}
	}
}

func WithCacheStore(store *cache.Cache) func(*CachedReconciler) {
	return func(c *CachedReconciler) {
		c.cacheStore = store
	}
}

func NewCached(reconciler StatusReconciler, opts ...func(*CachedReconciler)) *CachedReconciler {
	c := &CachedReconciler{
		reconciler: reconciler,
		expiration: defaultCacheExpiration,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cacheStore == nil {
		c.cacheStore = cache.New(c.expiration, cacheCleanup)
	}

	return c
}

func (c *CachedReconciler) Reconcile(ctx context.Context, txID string) (Classification, error) {
	value, found := c.cacheStore.Get(txID)
	if found {
		classification, ok := value.(Classification)
		if ok {
			return classification, nil
		}
	}

	classification, err := c.reconciler.Reconcile(ctx, txID)
	if err != nil {
		return Classification{}, err
	}

	if classification.IsTerminal() {
		c.cacheStore.Set(txID, classification, c.expiration)
	}

	return classification, nil
}
