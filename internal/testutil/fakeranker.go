package testutil

import (
	"context"
	"sync"

	"github.com/uniflowhq/uniflow/internal/domain"
)

// ScriptedRanker is a deterministic in-memory ranking oracle for tests.
// Queries with an entry in Results return that exact ordering; everything
// else returns Default. Both are truncated to k. Setting Err makes every
// call fail, which stands in for an unreachable ranking backend.
type ScriptedRanker struct {
	Results map[string][]domain.CourseRecord
	Default []domain.CourseRecord
	Err     error

	mu      sync.Mutex
	Queries []string
}

func (r *ScriptedRanker) Rank(_ context.Context, query string, k int) ([]domain.CourseRecord, error) {
	r.mu.Lock()
	r.Queries = append(r.Queries, query)
	r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}

	results, ok := r.Results[query]
	if !ok {
		results = r.Default
	}
	if len(results) > k {
		results = results[:k]
	}
	out := make([]domain.CourseRecord, len(results))
	copy(out, results)
	return out, nil
}

// CallCount returns how many times Rank has been invoked.
func (r *ScriptedRanker) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Queries)
}
