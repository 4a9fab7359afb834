// Package store holds the role-scoped in-memory state for an authenticated
// session. Stores own the only client-side copy of each backend collection
// and follow the refetch-after-write discipline: mutations never patch local
// state, they re-request the canonical collection after the write commits.
package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/recruitdesk/recruitdesk/internal/metrics"
)

// collection is one resource's current records plus its loading flag.
// Updates are wholesale replacements: a refresh that fails leaves the
// previous records fully intact, never a half-updated list.
type collection[T any] struct {
	mu      sync.RWMutex
	items   []T
	loading bool
}

// snapshot returns a copy of the current records; callers never alias the
// store's internal slice.
func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
}

func (c *collection[T]) clear() {
	c.replace(nil)
}

func (c *collection[T]) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *collection[T]) setLoading(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = v
}

func (c *collection[T]) isLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// refreshCollection is the shared fetch contract: raise the loading flag,
// fetch, replace on success, keep the previous records and log on failure,
// always clear the flag. Fetch failures stop here; callers see them only as
// an unchanged collection. Two refreshes racing on the same collection
// resolve last-writer-wins; that is an accepted property of this layer, not
// a latest-request-wins guarantee.
func refreshCollection[T any](ctx context.Context, c *collection[T], store, resource string, logger *zap.Logger, fetch func(context.Context) ([]T, error)) {
	c.setLoading(true)
	defer c.setLoading(false)

	start := time.Now()
	items, err := fetch(ctx)
	if err != nil {
		logger.Error("refresh failed",
			zap.String("store", store),
			zap.String("resource", resource),
			zap.Error(err),
		)
		return
	}
	c.replace(items)

	metrics.StoreRefreshDuration.WithLabelValues(store, resource).Observe(time.Since(start).Seconds())
	metrics.StoreCollectionSize.WithLabelValues(store, resource).Set(float64(len(items)))
}
