package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/uniflowhq/uniflow/internal/catalog"
	"github.com/uniflowhq/uniflow/internal/domain"
	"github.com/uniflowhq/uniflow/internal/planner"
	"github.com/uniflowhq/uniflow/internal/rank"
	"github.com/uniflowhq/uniflow/internal/repository"
)

type planService struct {
	store      *catalog.Store
	ranker     rank.Ranker
	rankerName string
	history    repository.PlanHistoryRepo
	observer   UseCaseObserver
	now        func() time.Time
}

// NewPlanService wires the planning pipeline to the catalog, the ranking
// oracle, and the plan history. A nil history disables persistence.
func NewPlanService(
	store *catalog.Store,
	ranker rank.Ranker,
	rankerName string,
	history repository.PlanHistoryRepo,
	observer UseCaseObserver,
) PlanService {
	return &planService{
		store:      store,
		ranker:     ranker,
		rankerName: rankerName,
		history:    history,
		observer:   useCaseObserverOrNoop(observer),
		now:        time.Now,
	}
}

func (s *planService) GeneratePlan(ctx context.Context, req planner.PlanRequest) (*planner.PlanResponse, error) {
	started := s.now()
	resp, err := s.generate(ctx, req)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "generate_plan",
		Duration: time.Since(started),
		Success:  err == nil,
		Err:      err,
		Fields: map[string]any{
			"degree":            req.DegreeName,
			"credits_remaining": req.CreditsRemaining,
			"ranker":            s.rankerName,
		},
		StartedAt: started,
	})
	return resp, err
}

func (s *planService) generate(ctx context.Context, req planner.PlanRequest) (*planner.PlanResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	degree, err := s.store.LookupDegree(req.DegreeName)
	if errors.Is(err, catalog.ErrDegreeNotFound) {
		// An unknown degree is answerable, not fatal: the caller gets an
		// empty plan list and a warning naming the problem.
		return &planner.PlanResponse{
			DegreeName:    req.DegreeName,
			Plans:         []domain.SemesterPlan{},
			TargetCredits: req.CreditsRemaining,
			Warnings: []string{fmt.Sprintf(
				"degree %q is not in the requirements catalog; no plan generated", req.DegreeName)},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	resp, err := planner.Resolve(ctx, degree, req.Student(), s.ranker)
	if err != nil {
		return nil, err
	}

	if s.history != nil {
		if err := s.persist(ctx, req, resp); err != nil {
			resp.Warnings = append(resp.Warnings, fmt.Sprintf(
				"plan generated but could not be saved to history: %v", err))
		}
	}
	return resp, nil
}

func (s *planService) persist(ctx context.Context, req planner.PlanRequest, resp *planner.PlanResponse) error {
	reqJSON, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encoding request snapshot: %w", err)
	}
	return s.history.Create(ctx, &repository.PlanRecord{
		ID:             uuid.NewString(),
		DegreeName:     resp.DegreeName,
		Abbreviation:   resp.Abbreviation,
		TargetCredits:  resp.TargetCredits,
		PlannedCredits: resp.PlannedCredits,
		Semesters:      len(resp.Plans),
		Ranker:         s.rankerName,
		Request:        reqJSON,
		Plans:          resp.Plans,
		Warnings:       resp.Warnings,
		CreatedAt:      s.now().UTC(),
	})
}
