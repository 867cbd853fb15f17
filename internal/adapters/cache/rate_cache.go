package cache

import (
	"fmt"
	"vpsworth/internal/domain"

	"github.com/dgraph-io/ristretto"
)

type RistrettoRateCache struct {
	cache *ristretto.Cache
}

func NewRateCache(maxItems int64) (*RistrettoRateCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create rate cache failed: %w", err)
	}
	return &RistrettoRateCache{cache: c}, nil
}

func (c *RistrettoRateCache) Get(key string) (domain.RateSnapshot, bool) {
	if v, ok := c.cache.Get(key); ok {
		snap, ok := v.(domain.RateSnapshot)
		return snap, ok
	}
	return domain.RateSnapshot{}, false
}

// Set blocks until the write is visible; the resolver's degraded fallback
// relies on reading its own writes.
func (c *RistrettoRateCache) Set(snapshot domain.RateSnapshot) {
	c.cache.Set(snapshot.PairKey, snapshot, 1)
	c.cache.Wait()
}

func (c *RistrettoRateCache) Close() { c.cache.Close() }
