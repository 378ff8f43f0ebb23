package kernel

import (
	"strconv"

	"github.com/dgraph-io/ristretto"
)

// volumeCache memoizes UnitBallVolume(N) behind a bounded, concurrent-safe
// ristretto cache. Dimensions are small non-negative integers in practice
// (spec.md's soft budget caps single-calculation dimension at 1000), so the
// cache is sized generously enough that eviction should never observably
// matter; it exists purely to avoid repeating the Gamma evaluation across a
// scaling sweep or a batch of shapes that share a dimension, per spec.md §5
// ("math kernel tables ... MUST be safe for concurrent readers").
type volumeCache struct {
	c *ristretto.Cache
}

// sharedCache is the process-wide memoization table. It holds no mutable
// state beyond the cache entries themselves (every entry is a pure function
// of its key), so sharing it across callers does not violate the "no global
// mutable state" rule of spec.md §5 -- it is a read-through accelerator, not
// a source of truth.
var sharedCache = newVolumeCache()

func newVolumeCache() *volumeCache {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 4096,
		MaxCost:     1 << 16,
		BufferItems: 64,
	})
	if err != nil {
		// Construction only fails on invalid static config; treat as a
		// programmer error rather than threading an error through every
		// kernel call site.
		panic(err)
	}
	return &volumeCache{c: c}
}

func (v *volumeCache) unitBallVolume(n int) (float64, error) {
	key := strconv.Itoa(n)
	if cached, ok := v.c.Get(key); ok {
		return cached.(float64), nil
	}

	value, err := unitBallVolumeUncached(n)
	if err != nil {
		return 0, err
	}

	v.c.Set(key, value, 1)
	return value, nil
}
