package service

import (
	"context"

	"github.com/uniflowhq/uniflow/internal/domain"
	"github.com/uniflowhq/uniflow/internal/planner"
	"github.com/uniflowhq/uniflow/internal/repository"
)

type PlanService interface {
	// GeneratePlan validates the request, resolves the study plan, and
	// records it in the plan history.
	GeneratePlan(ctx context.Context, req planner.PlanRequest) (*planner.PlanResponse, error)
}

type DegreeService interface {
	List(ctx context.Context) ([]domain.DegreeRequirement, error)
	Get(ctx context.Context, name string) (domain.DegreeRequirement, error)
	SearchCourses(ctx context.Context, query string, k int) ([]domain.CourseRecord, error)
}

type HistoryService interface {
	ListRecent(ctx context.Context, limit int) ([]*repository.PlanRecord, error)
	ListByDegree(ctx context.Context, degreeName string, limit int) ([]*repository.PlanRecord, error)
	Get(ctx context.Context, id string) (*repository.PlanRecord, error)
	Delete(ctx context.Context, id string) error
}
