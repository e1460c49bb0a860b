package service

import (
	"context"
	"fmt"

	"github.com/uniflowhq/uniflow/internal/planner"
	"github.com/uniflowhq/uniflow/internal/repository"
)

const defaultHistoryLimit = 20

type historyService struct {
	repo repository.PlanHistoryRepo
}

// NewHistoryService exposes the persisted plan history.
func NewHistoryService(repo repository.PlanHistoryRepo) HistoryService {
	return &historyService{repo: repo}
}

func (s *historyService) ListRecent(ctx context.Context, limit int) ([]*repository.PlanRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.repo.ListRecent(ctx, limit)
}

func (s *historyService) ListByDegree(ctx context.Context, degreeName string, limit int) ([]*repository.PlanRecord, error) {
	if degreeName == "" {
		return nil, fmt.Errorf("%w: degree name is required", planner.ErrInvalidRequest)
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.repo.ListByDegree(ctx, degreeName, limit)
}

func (s *historyService) Get(ctx context.Context, id string) (*repository.PlanRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: record id is required", planner.ErrInvalidRequest)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *historyService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: record id is required", planner.ErrInvalidRequest)
	}
	return s.repo.Delete(ctx, id)
}
