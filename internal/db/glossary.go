package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/legal-simplifier/internal/types"
)

// ErrTermNotFound indicates the requested glossary term does not exist.
var ErrTermNotFound = errors.New("glossary term not found")

// AddTerm inserts a new glossary entry. Terms are stored lowercased so
// lookups stay case-insensitive.
func (db *DB) AddTerm(ctx context.Context, req types.AddTermRequest) (*types.GlossaryEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry := &types.GlossaryEntry{}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO glossary (term, explanation, category)
		 VALUES ($1, $2, $3)
		 RETURNING id, term, explanation, COALESCE(category, ''), created_at, updated_at`,
		strings.ToLower(strings.TrimSpace(req.Term)), req.Explanation, nullable(req.Category),
	).Scan(&entry.ID, &entry.Term, &entry.Explanation, &entry.Category, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add glossary term: %w", err)
	}
	return entry, nil
}

// UpdateTerm applies a partial update to an existing term. Nil request
// fields leave the stored values unchanged.
func (db *DB) UpdateTerm(ctx context.Context, id uuid.UUID, req types.UpdateTermRequest) (*types.GlossaryEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry := &types.GlossaryEntry{}
	err := db.pool.QueryRow(ctx,
		`UPDATE glossary
		 SET explanation = COALESCE($2, explanation),
		     category = COALESCE($3, category),
		     updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, term, explanation, COALESCE(category, ''), created_at, updated_at`,
		id, req.Explanation, req.Category,
	).Scan(&entry.ID, &entry.Term, &entry.Explanation, &entry.Category, &entry.CreatedAt, &entry.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTermNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update glossary term: %w", err)
	}
	return entry, nil
}

// DeleteTerm removes a glossary entry by id.
func (db *DB) DeleteTerm(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM glossary WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete glossary term: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTermNotFound
	}
	return nil
}

// ListTerms returns all glossary entries ordered by term.
func (db *DB) ListTerms(ctx context.Context) ([]types.GlossaryEntry, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, term, explanation, COALESCE(category, ''), created_at, updated_at
		 FROM glossary ORDER BY term`)
	if err != nil {
		return nil, fmt.Errorf("failed to list glossary terms: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// SearchTerms returns entries whose term or explanation matches the query.
func (db *DB) SearchTerms(ctx context.Context, query string) ([]types.GlossaryEntry, error) {
	pattern := "%" + strings.TrimSpace(query) + "%"
	rows, err := db.pool.Query(ctx,
		`SELECT id, term, explanation, COALESCE(category, ''), created_at, updated_at
		 FROM glossary
		 WHERE term ILIKE $1 OR explanation ILIKE $1
		 ORDER BY term`, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search glossary terms: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ImportTerms upserts a batch of terms, returning how many were written.
// Existing terms have their explanation replaced.
func (db *DB) ImportTerms(ctx context.Context, terms []types.ImportedTerm) (int, error) {
	count := 0
	for _, t := range terms {
		if err := t.Validate(); err != nil {
			return count, err
		}
		_, err := db.pool.Exec(ctx,
			`INSERT INTO glossary (term, explanation, category)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (term) DO UPDATE
			 SET explanation = EXCLUDED.explanation,
			     category = EXCLUDED.category,
			     updated_at = NOW()`,
			strings.ToLower(strings.TrimSpace(t.Term)), t.Explanation, nullable(t.Category))
		if err != nil {
			return count, fmt.Errorf("failed to import glossary term %q: %w", t.Term, err)
		}
		count++
	}
	return count, nil
}

// Terms returns the glossary as a term-to-explanation map. It satisfies
// glossary.Store so stored entries can overlay the built-in defaults.
func (db *DB) Terms(ctx context.Context) (map[string]string, error) {
	entries, err := db.ListTerms(ctx)
	if err != nil {
		return nil, err
	}
	terms := make(map[string]string, len(entries))
	for _, e := range entries {
		terms[e.Term] = e.Explanation
	}
	return terms, nil
}

func scanEntries(rows pgx.Rows) ([]types.GlossaryEntry, error) {
	var entries []types.GlossaryEntry
	for rows.Next() {
		var e types.GlossaryEntry
		if err := rows.Scan(&e.ID, &e.Term, &e.Explanation, &e.Category, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan glossary row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read glossary rows: %w", err)
	}
	return entries, nil
}

func nullable(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
