package repository

import (
	"context"
	"errors"
	"time"

	"github.com/uniflowhq/uniflow/internal/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

// PlanRecord is one persisted planning run: the request snapshot, the
// resolved semester plans, and the totals the caller saw. Plans and the
// request are stored as JSON documents; the scalar columns exist so
// history listings never need to unmarshal them.
type PlanRecord struct {
	ID             string
	DegreeName     string
	Abbreviation   string
	TargetCredits  float64
	PlannedCredits float64
	Semesters      int
	Ranker         string
	Request        []byte
	Plans          []domain.SemesterPlan
	Warnings       []string
	CreatedAt      time.Time
}

type PlanHistoryRepo interface {
	Create(ctx context.Context, rec *PlanRecord) error
	GetByID(ctx context.Context, id string) (*PlanRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*PlanRecord, error)
	ListByDegree(ctx context.Context, degreeName string, limit int) ([]*PlanRecord, error)
	Delete(ctx context.Context, id string) error
}
