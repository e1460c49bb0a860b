package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/uniflowhq/uniflow/internal/domain"
)

// planHistoryColumns is the canonical SELECT column list for plan_history.
const planHistoryColumns = `id, degree_name, degree_abbreviation, target_credits,
		planned_credits, semesters, ranker, request_json, plans_json, warnings_json, created_at`

// SQLitePlanHistoryRepo implements PlanHistoryRepo using a SQLite database.
type SQLitePlanHistoryRepo struct {
	db *sql.DB
}

// NewSQLitePlanHistoryRepo creates a new SQLitePlanHistoryRepo.
func NewSQLitePlanHistoryRepo(db *sql.DB) *SQLitePlanHistoryRepo {
	return &SQLitePlanHistoryRepo{db: db}
}

func (r *SQLitePlanHistoryRepo) Create(ctx context.Context, rec *PlanRecord) error {
	plansJSON, err := json.Marshal(rec.Plans)
	if err != nil {
		return fmt.Errorf("encoding plans: %w", err)
	}
	warnings := rec.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	warningsJSON, err := json.Marshal(warnings)
	if err != nil {
		return fmt.Errorf("encoding warnings: %w", err)
	}
	request := rec.Request
	if len(request) == 0 {
		request = []byte("{}")
	}

	query := `INSERT INTO plan_history (id, degree_name, degree_abbreviation, target_credits,
		planned_credits, semesters, ranker, request_json, plans_json, warnings_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID,
		rec.DegreeName,
		rec.Abbreviation,
		rec.TargetCredits,
		rec.PlannedCredits,
		rec.Semesters,
		rec.Ranker,
		string(request),
		string(plansJSON),
		string(warningsJSON),
		rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan record: %w", err)
	}
	return nil
}

func (r *SQLitePlanHistoryRepo) GetByID(ctx context.Context, id string) (*PlanRecord, error) {
	query := `SELECT ` + planHistoryColumns + ` FROM plan_history WHERE id = ?`
	return r.scanRecord(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLitePlanHistoryRepo) ListRecent(ctx context.Context, limit int) ([]*PlanRecord, error) {
	query := `SELECT ` + planHistoryColumns + ` FROM plan_history
		ORDER BY created_at DESC, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent plan records: %w", err)
	}
	defer rows.Close()
	return r.scanRecords(rows)
}

func (r *SQLitePlanHistoryRepo) ListByDegree(ctx context.Context, degreeName string, limit int) ([]*PlanRecord, error) {
	query := `SELECT ` + planHistoryColumns + ` FROM plan_history
		WHERE degree_name = ? ORDER BY created_at DESC, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, degreeName, limit)
	if err != nil {
		return nil, fmt.Errorf("listing plan records by degree: %w", err)
	}
	defer rows.Close()
	return r.scanRecords(rows)
}

func (r *SQLitePlanHistoryRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM plan_history WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("plan record %q: %w", id, ErrNotFound)
	}
	return nil
}

// scanRecord scans a single record from a *sql.Row.
func (r *SQLitePlanHistoryRepo) scanRecord(row *sql.Row) (*PlanRecord, error) {
	var rec PlanRecord
	var requestJSON, plansJSON, warningsJSON, createdAtStr string

	err := row.Scan(
		&rec.ID, &rec.DegreeName, &rec.Abbreviation, &rec.TargetCredits,
		&rec.PlannedCredits, &rec.Semesters, &rec.Ranker,
		&requestJSON, &plansJSON, &warningsJSON, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan record: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan record: %w", err)
	}

	return r.populateRecord(&rec, requestJSON, plansJSON, warningsJSON, createdAtStr)
}

// scanRecords scans multiple records from *sql.Rows.
func (r *SQLitePlanHistoryRepo) scanRecords(rows *sql.Rows) ([]*PlanRecord, error) {
	var records []*PlanRecord
	for rows.Next() {
		var rec PlanRecord
		var requestJSON, plansJSON, warningsJSON, createdAtStr string

		err := rows.Scan(
			&rec.ID, &rec.DegreeName, &rec.Abbreviation, &rec.TargetCredits,
			&rec.PlannedCredits, &rec.Semesters, &rec.Ranker,
			&requestJSON, &plansJSON, &warningsJSON, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning plan record row: %w", err)
		}

		record, parseErr := r.populateRecord(&rec, requestJSON, plansJSON, warningsJSON, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}

		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan records: %w", err)
	}
	return records, nil
}

// populateRecord fills in parsed fields on a PlanRecord after scanning raw strings.
func (r *SQLitePlanHistoryRepo) populateRecord(rec *PlanRecord, requestJSON, plansJSON, warningsJSON, createdAtStr string) (*PlanRecord, error) {
	rec.Request = []byte(requestJSON)

	if err := json.Unmarshal([]byte(plansJSON), &rec.Plans); err != nil {
		return nil, fmt.Errorf("decoding plans: %w", err)
	}
	if err := json.Unmarshal([]byte(warningsJSON), &rec.Warnings); err != nil {
		return nil, fmt.Errorf("decoding warnings: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	rec.CreatedAt = createdAt

	if rec.Plans == nil {
		rec.Plans = []domain.SemesterPlan{}
	}
	return rec, nil
}
