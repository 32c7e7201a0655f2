package tasks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiltedToast/hifumi/internal/database"
)

// stubStore serves a fixed status pool, or fails with err.
type stubStore struct {
	statuses []database.Status
	err      error
}

func (s *stubStore) Ping(context.Context) error { return s.err }
func (s *stubStore) GetAllPrefixes(context.Context) ([]database.Prefix, error) {
	return nil, s.err
}
func (s *stubStore) UpsertPrefix(context.Context, string, string) error { return s.err }
func (s *stubStore) GetAllStatuses(context.Context) ([]database.Status, error) {
	return s.statuses, s.err
}
func (s *stubStore) AddStatus(context.Context, *database.Status) error { return s.err }
func (s *stubStore) RemoveStatus(context.Context, int64) error         { return s.err }
func (s *stubStore) SaveErrorReport(context.Context, *database.ErrorReport) error {
	return s.err
}
func (s *stubStore) RunMaintenance(context.Context) error { return s.err }

func newTestTaskDeps(store database.Store) TaskDeps {
	return TaskDeps{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Store:  store,
	}
}

func TestStatusRotationEmptyPool(t *testing.T) {
	t.Parallel()

	// No client is wired; an empty pool must bail out before the presence
	// update is ever attempted.
	run := newStatusRotationTask(newTestTaskDeps(&stubStore{}))

	require.NoError(t, run(context.Background()))
}

func TestStatusRotationStoreError(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("db is down")
	run := newStatusRotationTask(newTestTaskDeps(&stubStore{err: storeErr}))

	err := run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}
