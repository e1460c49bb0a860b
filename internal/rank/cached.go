package rank

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/uniflowhq/uniflow/internal/domain"
)

// CachedRanker decorates a Ranker with an in-process ristretto cache keyed
// by query and k. Only successful rankings are cached, so a transient
// backend failure never pins an empty result.
type CachedRanker struct {
	inner Ranker
	cache *ristretto.Cache[string, []domain.CourseRecord]
	ttl   time.Duration
}

// NewCachedRanker wraps inner with a cache holding up to maxEntries rankings.
func NewCachedRanker(inner Ranker, maxEntries int64, ttl time.Duration) (*CachedRanker, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, []domain.CourseRecord]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating ranking cache: %w", err)
	}
	return &CachedRanker{inner: inner, cache: cache, ttl: ttl}, nil
}

func (r *CachedRanker) Rank(ctx context.Context, query string, k int) ([]domain.CourseRecord, error) {
	key := fmt.Sprintf("%s|%d", query, k)
	if cached, ok := r.cache.Get(key); ok {
		return cached, nil
	}

	results, err := r.inner.Rank(ctx, query, k)
	if err != nil {
		return nil, err
	}
	r.cache.SetWithTTL(key, results, 1, r.ttl)
	return results, nil
}

// Wait blocks until buffered cache writes are applied. Ristretto admits
// entries asynchronously; callers that need read-your-write semantics
// (tests, warmup) call this between Rank invocations.
func (r *CachedRanker) Wait() {
	r.cache.Wait()
}

// Close releases cache resources.
func (r *CachedRanker) Close() {
	r.cache.Close()
}
