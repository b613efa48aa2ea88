package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fileorg/internal/model"
	"fileorg/internal/repository"
)

// RunPostgres is a PostgreSQL implementation of repository.RunRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type RunPostgres struct {
	db *sql.DB
}

// NewRunPostgres creates a new RunPostgres repository.
func NewRunPostgres(db *sql.DB) *RunPostgres {
	return &RunPostgres{db: db}
}

var _ repository.RunRepository = (*RunPostgres)(nil)

const runColumns = `id, directory, strategy, sort_key, moved, skipped, failed, report_key, created_at`

// Create inserts the run row and every entry in one transaction.
func (r *RunPostgres) Create(ctx context.Context, run *model.Run) (*model.Run, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const qRun = `
		INSERT INTO organization_runs (id, directory, strategy, sort_key, moved, skipped, failed, report_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + runColumns
	out, err := scanRun(tx.QueryRowContext(ctx, qRun,
		run.ID,
		run.Directory,
		int(run.Strategy),
		int(run.SortKey),
		run.Moved,
		run.Skipped,
		run.Failed,
		run.ReportKey,
		run.CreatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	const qEntry = `
		INSERT INTO run_entries (run_id, position, filename, category, outcome, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for i, e := range run.Entries {
		if _, err := tx.ExecContext(ctx, qEntry, out.ID, i, e.Filename, e.Category, string(e.Outcome), e.Reason); err != nil {
			return nil, fmt.Errorf("insert run entry %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	out.Entries = append([]model.RunEntry(nil), run.Entries...)
	return out, nil
}

// FindByID fetches a run and its entries.
func (r *RunPostgres) FindByID(ctx context.Context, id string) (*model.Run, error) {
	const q = `SELECT ` + runColumns + ` FROM organization_runs WHERE id = $1`
	run, err := scanRun(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	const qEntries = `
		SELECT filename, category, outcome, reason
		FROM run_entries
		WHERE run_id = $1
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, qEntries, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	run.Entries = make([]model.RunEntry, 0)
	for rows.Next() {
		var (
			e       model.RunEntry
			outcome string
		)
		if err := rows.Scan(&e.Filename, &e.Category, &outcome, &e.Reason); err != nil {
			return nil, err
		}
		e.Outcome = model.MoveOutcome(outcome)
		run.Entries = append(run.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return run, nil
}

// List returns runs using LIMIT/OFFSET pagination and a total count.
func (r *RunPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Run], error) {
	const qCount = `SELECT COUNT(*) FROM organization_runs`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `SELECT ` + runColumns + `
		FROM organization_runs
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Run]{
		Items: items,
		Total: total,
	}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*model.Run, error) {
	var (
		run               model.Run
		strategy, sortKey int
	)
	if err := s.Scan(
		&run.ID,
		&run.Directory,
		&strategy,
		&sortKey,
		&run.Moved,
		&run.Skipped,
		&run.Failed,
		&run.ReportKey,
		&run.CreatedAt,
	); err != nil {
		return nil, err
	}
	run.Strategy = model.Strategy(strategy)
	run.SortKey = model.SortKey(sortKey)
	return &run, nil
}
