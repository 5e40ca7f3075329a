package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Run statuses recorded in document_runs.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// CreateRun records the start of a document processing run and returns
// its id.
func (db *DB) CreateRun(ctx context.Context, source, mode string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO document_runs (source, mode, status)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		source, mode, RunStatusRunning,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// SaveArtifact stores a JSON-serializable intermediate result for a run
// step, replacing any previous artifact for the same step.
func (db *DB) SaveArtifact(ctx context.Context, runID uuid.UUID, step string, content any) error {
	payload, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal %s artifact: %w", step, err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO run_artifacts (run_id, step, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id, step) DO UPDATE
		 SET content = EXCLUDED.content, created_at = NOW()`,
		runID, step, payload)
	if err != nil {
		return fmt.Errorf("failed to save %s artifact: %w", step, err)
	}
	return nil
}

// SaveTextArtifact stores a plain-text intermediate result for a run step.
func (db *DB) SaveTextArtifact(ctx context.Context, runID uuid.UUID, step, text string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO run_artifacts (run_id, step, text_content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id, step) DO UPDATE
		 SET text_content = EXCLUDED.text_content, created_at = NOW()`,
		runID, step, text)
	if err != nil {
		return fmt.Errorf("failed to save %s artifact: %w", step, err)
	}
	return nil
}

// CompleteRun marks a run finished with the given status.
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE document_runs
		 SET status = $2, completed_at = NOW()
		 WHERE id = $1`, runID, status)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}
