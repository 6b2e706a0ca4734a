package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/osmswap/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/osmswap/internal/core/domain"
)

func TestHistoryService_Recent(t *testing.T) {
	store := memory.NewHistoryStore()
	ctx := context.Background()
	base := time.Now()
	for i := 0; i < DefaultHistoryLimit+5; i++ {
		require.NoError(t, store.Record(ctx, &domain.RunRecord{
			ID:        fmt.Sprintf("run-%02d", i),
			StartedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
	svc := NewHistoryService(store)

	runs, err := svc.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, fmt.Sprintf("run-%02d", DefaultHistoryLimit+4), runs[0].ID)

	runs, err = svc.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, DefaultHistoryLimit)
}

func TestHistoryService_Get(t *testing.T) {
	store := memory.NewHistoryStore()
	ctx := context.Background()
	require.NoError(t, store.Record(ctx, &domain.RunRecord{ID: "abc"}))
	svc := NewHistoryService(store)

	run, err := svc.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", run.ID)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Get(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryService_NoStore(t *testing.T) {
	svc := NewHistoryService(nil)

	_, err := svc.Recent(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = svc.Get(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}
