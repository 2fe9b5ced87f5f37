package store

import (
	"context"
	"database/sql"
)

// schema contains the DDL for all takt tables.
// Each statement uses IF NOT EXISTS for idempotency.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL DEFAULT '',
		heuristic  TEXT NOT NULL,
		machines   INTEGER NOT NULL,
		jobs       INTEGER NOT NULL,
		makespan   INTEGER NOT NULL,
		instance   TEXT NOT NULL,
		starts     TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_heuristic ON runs(heuristic)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
