package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/uniflowhq/uniflow/internal/catalog"
	"github.com/uniflowhq/uniflow/internal/domain"
	"github.com/uniflowhq/uniflow/internal/planner"
	"github.com/uniflowhq/uniflow/internal/rank"
)

const defaultSearchLimit = 10

type degreeService struct {
	store  *catalog.Store
	ranker rank.Ranker
}

// NewDegreeService exposes catalog reads and ranked course search.
func NewDegreeService(store *catalog.Store, ranker rank.Ranker) DegreeService {
	return &degreeService{store: store, ranker: ranker}
}

func (s *degreeService) List(_ context.Context) ([]domain.DegreeRequirement, error) {
	return s.store.Degrees(), nil
}

func (s *degreeService) Get(_ context.Context, name string) (domain.DegreeRequirement, error) {
	return s.store.LookupDegree(name)
}

func (s *degreeService) SearchCourses(ctx context.Context, query string, k int) ([]domain.CourseRecord, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", planner.ErrInvalidRequest)
	}
	if k <= 0 {
		k = defaultSearchLimit
	}
	return s.ranker.Rank(ctx, query, k)
}
