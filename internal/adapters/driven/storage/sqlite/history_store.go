package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Record stores a run and its step reports in one transaction.
func (s *historyStore) Record(ctx context.Context, run *domain.RunRecord) error {
	if run == nil || run.ID == "" {
		return fmt.Errorf("%w: run without ID", domain.ErrInvalidInput)
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, ended_at, workflow_path, actual_path, reference_path,
			weather_path, model_out, workflow_out, success, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt.UnixNano(), run.EndedAt.UnixNano(),
		run.WorkflowPath, run.ActualPath, run.ReferencePath, run.WeatherPath,
		run.ModelOut, run.WorkflowOut, boolToInt(run.Success), run.Error)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	for i, step := range run.Steps {
		skipped := step.Skipped
		if skipped == nil {
			skipped = []string{}
		}
		skippedJSON, err := json.Marshal(skipped)
		if err != nil {
			return fmt.Errorf("marshalling skipped: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_steps (run_id, position, swapper, applied, skipped)
			VALUES (?, ?, ?, ?, ?)
		`, run.ID, i, step.Swapper, step.Applied, string(skippedJSON))
		if err != nil {
			return fmt.Errorf("saving step %s: %w", step.Swapper, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

// Get retrieves one run by ID.
func (s *historyStore) Get(ctx context.Context, id string) (*domain.RunRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, started_at, ended_at, workflow_path, actual_path, reference_path,
			weather_path, model_out, workflow_out, success, error
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if err != nil {
		return nil, err
	}
	if err := s.loadSteps(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// Recent returns up to limit runs, most recent first.
func (s *historyStore) Recent(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, started_at, ended_at, workflow_path, actual_path, reference_path,
			weather_path, model_out, workflow_out, success, error
		FROM runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}

	var runs []domain.RunRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	rows.Close()

	for i := range runs {
		if err := s.loadSteps(ctx, &runs[i]); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

// Prune removes all but the most recent keep runs.
func (s *historyStore) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		return fmt.Errorf("%w: negative keep %d", domain.ErrInvalidInput, keep)
	}

	_, err := s.store.db.ExecContext(ctx, `
		DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning runs: %w", err)
	}
	return nil
}

func (s *historyStore) loadSteps(ctx context.Context, run *domain.RunRecord) error {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT swapper, applied, skipped
		FROM run_steps WHERE run_id = ?
		ORDER BY position
	`, run.ID)
	if err != nil {
		return fmt.Errorf("querying steps: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var step domain.StepReport
		var skippedJSON string
		if err := rows.Scan(&step.Swapper, &step.Applied, &skippedJSON); err != nil {
			return fmt.Errorf("scanning step: %w", err)
		}
		if err := json.Unmarshal([]byte(skippedJSON), &step.Skipped); err != nil {
			return fmt.Errorf("unmarshaling skipped: %w", err)
		}
		if len(step.Skipped) == 0 {
			step.Skipped = nil
		}
		run.Steps = append(run.Steps, step)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating steps: %w", err)
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*domain.RunRecord, error) {
	var run domain.RunRecord
	var startedAt, endedAt int64
	var success int
	if err := row.Scan(&run.ID, &startedAt, &endedAt, &run.WorkflowPath, &run.ActualPath,
		&run.ReferencePath, &run.WeatherPath, &run.ModelOut, &run.WorkflowOut,
		&success, &run.Error); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	run.StartedAt = time.Unix(0, startedAt).UTC()
	run.EndedAt = time.Unix(0, endedAt).UTC()
	run.Success = success != 0
	return &run, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
