package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu    sync.RWMutex
	runs  map[string]domain.RunRecord
	order []string // insertion order, oldest first
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		runs: make(map[string]domain.RunRecord),
	}
}

// Record stores a run.
func (s *HistoryStore) Record(_ context.Context, run *domain.RunRecord) error {
	if run == nil || run.ID == "" {
		return fmt.Errorf("%w: run without ID", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.runs[run.ID]; exists {
		return fmt.Errorf("%w: run %s already recorded", domain.ErrInvalidInput, run.ID)
	}
	s.runs[run.ID] = copyRun(*run)
	s.order = append(s.order, run.ID)
	return nil
}

// Get retrieves one run by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	run = copyRun(run)
	return &run, nil
}

// Recent returns up to limit runs, most recent first.
func (s *HistoryStore) Recent(_ context.Context, limit int) ([]domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := s.sorted()
	if limit < len(sorted) {
		sorted = sorted[:max(limit, 0)]
	}
	result := make([]domain.RunRecord, 0, len(sorted))
	for _, id := range sorted {
		result = append(result, copyRun(s.runs[id]))
	}
	return result, nil
}

// Prune removes all but the most recent keep runs.
func (s *HistoryStore) Prune(_ context.Context, keep int) error {
	if keep < 0 {
		return fmt.Errorf("%w: negative keep %d", domain.ErrInvalidInput, keep)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := s.sorted()
	if keep >= len(sorted) {
		return nil
	}
	for _, id := range sorted[keep:] {
		delete(s.runs, id)
	}
	s.order = slices.DeleteFunc(s.order, func(id string) bool {
		_, ok := s.runs[id]
		return !ok
	})
	return nil
}

// sorted returns run IDs by start time, newest first; ties go to the
// later insertion (caller must hold lock).
func (s *HistoryStore) sorted() []string {
	ids := slices.Clone(s.order)
	slices.Reverse(ids)
	slices.SortStableFunc(ids, func(a, b string) int {
		return s.runs[b].StartedAt.Compare(s.runs[a].StartedAt)
	})
	return ids
}

// copyRun detaches the step slices from the caller's record.
func copyRun(run domain.RunRecord) domain.RunRecord {
	if run.Steps != nil {
		steps := make([]domain.StepReport, len(run.Steps))
		for i, st := range run.Steps {
			st.Skipped = slices.Clone(st.Skipped)
			steps[i] = st
		}
		run.Steps = steps
	}
	return run
}
