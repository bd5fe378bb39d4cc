// Package db provides PostgreSQL persistence for finished discovery runs.
//
// Expected table:
//
//	CREATE TABLE search_runs (
//	    id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
//	    description  TEXT NOT NULL,
//	    status       TEXT NOT NULL,
//	    summary      JSONB,
//	    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
//	    completed_at TIMESTAMPTZ
//	);
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jlindqvist/fundscout/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Run is one persisted discovery run: the free-text input plus the final
// aggregate, stored as JSONB.
type Run struct {
	ID          uuid.UUID         `json:"id"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	Summary     *types.RunSummary `json:"summary,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
}

// SaveRun stores a finished run and returns its ID.
func (db *DB) SaveRun(ctx context.Context, description, status string, summary *types.RunSummary) (uuid.UUID, error) {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal run summary: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO search_runs (description, status, summary, completed_at)
		 VALUES ($1, $2, $3, NOW())
		 RETURNING id`,
		description, status, summaryJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save run: %w", err)
	}
	return id, nil
}

// GetRun retrieves one run by ID. Returns nil when not found.
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	var summaryBytes []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, description, status, summary, created_at, completed_at
		 FROM search_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.Description, &run.Status, &summaryBytes, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	if len(summaryBytes) > 0 {
		var summary types.RunSummary
		if err := json.Unmarshal(summaryBytes, &summary); err != nil {
			return nil, fmt.Errorf("failed to unmarshal run summary: %w", err)
		}
		run.Summary = &summary
	}
	return &run, nil
}

// ListRuns retrieves recent runs, newest first, without their summaries.
func (db *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, description, status, created_at, completed_at
		 FROM search_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Description, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// DeleteRun removes a run. Deleting a missing run is not an error.
func (db *DB) DeleteRun(ctx context.Context, runID uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM search_runs WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}
