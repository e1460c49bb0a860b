package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plan_history (
		id                  TEXT PRIMARY KEY,
		degree_name         TEXT NOT NULL,
		degree_abbreviation TEXT NOT NULL DEFAULT '',
		target_credits      REAL NOT NULL,
		planned_credits     REAL NOT NULL,
		semesters           INTEGER NOT NULL DEFAULT 0,
		request_json        TEXT NOT NULL,
		plans_json          TEXT NOT NULL,
		warnings_json       TEXT NOT NULL DEFAULT '[]',
		created_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_history_degree ON plan_history(degree_name)`,
	`CREATE INDEX IF NOT EXISTS idx_plan_history_created ON plan_history(created_at)`,

	// Record which ranking backend produced the plan
	`ALTER TABLE plan_history ADD COLUMN ranker TEXT NOT NULL DEFAULT ''`,
}
