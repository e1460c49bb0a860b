// Package rank defines the course ranking oracle used by the planner.
//
// A Ranker returns up to k catalog records ordered by relevance to a
// free-text query. The planner depends only on the ordering being total
// and stable; the ranking technique behind it is interchangeable.
package rank

import (
	"context"
	"errors"

	"github.com/uniflowhq/uniflow/internal/domain"
)

var (
	// ErrUnavailable indicates the ranking backend could not be reached.
	// This is a retryable fault; retries belong to the caller, never to
	// the planner.
	ErrUnavailable = errors.New("ranking backend unavailable")
)

// Ranker orders catalog courses by relevance to a query.
type Ranker interface {
	// Rank returns up to k course records, most relevant first.
	Rank(ctx context.Context, query string, k int) ([]domain.CourseRecord, error)
}
