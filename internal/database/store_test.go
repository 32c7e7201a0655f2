package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) Store {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "opening the test database should apply migrations")
	t.Cleanup(func() { CloseDB(db) })

	return NewStore(db, nil)
}

func TestStorePing(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	require.NoError(t, store.Ping(context.Background()))
}

func TestPrefixRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	prefixes, err := store.GetAllPrefixes(ctx)
	require.NoError(t, err)
	assert.Empty(t, prefixes)

	require.NoError(t, store.UpsertPrefix(ctx, "111", "h!"))
	require.NoError(t, store.UpsertPrefix(ctx, "222", "!!"))

	prefixes, err = store.GetAllPrefixes(ctx)
	require.NoError(t, err)
	require.Len(t, prefixes, 2)

	byGuild := make(map[string]string, len(prefixes))
	for _, p := range prefixes {
		byGuild[p.GuildID] = p.Prefix
	}
	assert.Equal(t, "h!", byGuild["111"])
	assert.Equal(t, "!!", byGuild["222"])
}

func TestUpsertPrefixReplacesExisting(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.UpsertPrefix(ctx, "111", "h!"))
	require.NoError(t, store.UpsertPrefix(ctx, "111", "h?"))

	prefixes, err := store.GetAllPrefixes(ctx)
	require.NoError(t, err)
	require.Len(t, prefixes, 1, "the same guild must never have two rows")
	assert.Equal(t, "h?", prefixes[0].Prefix)
}

func TestUpsertPrefixValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	assert.Error(t, store.UpsertPrefix(ctx, "", "h!"))
	assert.Error(t, store.UpsertPrefix(ctx, "111", ""))
}

func TestStatusLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	status := &Status{Type: StatusWatching, Text: "New Game!"}
	require.NoError(t, store.AddStatus(ctx, status))
	assert.NotZero(t, status.ID, "insert should backfill the generated ID")

	statuses, err := store.GetAllStatuses(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, StatusWatching, statuses[0].Type)
	assert.Equal(t, "New Game!", statuses[0].Text)

	require.NoError(t, store.RemoveStatus(ctx, status.ID))

	statuses, err = store.GetAllStatuses(ctx)
	require.NoError(t, err)
	assert.Empty(t, statuses)
}

func TestAddStatusValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	assert.Error(t, store.AddStatus(ctx, nil))
	assert.Error(t, store.AddStatus(ctx, &Status{Type: StatusPlaying}))
	assert.Error(t, store.AddStatus(ctx, &Status{Type: "EATING", Text: "Pizza"}))
}

func TestRemoveStatusNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	err := store.RemoveStatus(ctx, 12345)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveErrorReport(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	guildID := "847908927554322432"
	report := &ErrorReport{
		ID:        "00000000-0000-0000-0000-000000000001",
		GuildID:   &guildID,
		ChannelID: "655484804405657642",
		UserID:    "258993932262834188",
		Command:   "h!pfp nobody",
		Error:     "user not found",
	}
	require.NoError(t, store.SaveErrorReport(ctx, report))

	// DM reports have no guild.
	dmReport := &ErrorReport{
		ID:        "00000000-0000-0000-0000-000000000002",
		ChannelID: "551588329003548683",
		UserID:    "207505077013839883",
		Command:   "h!prefix",
		Error:     "boom",
	}
	require.NoError(t, store.SaveErrorReport(ctx, dmReport))

	assert.Error(t, store.SaveErrorReport(ctx, &ErrorReport{}), "missing ID must be rejected")
	assert.Error(t, store.SaveErrorReport(ctx, report), "duplicate IDs must be rejected")
}

func TestRunMaintenance(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.UpsertPrefix(ctx, "111", "h!"))
	require.NoError(t, store.RunMaintenance(ctx))
}

func TestValidStatusType(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected bool
	}{
		{"PLAYING", true},
		{"LISTENING", true},
		{"WATCHING", true},
		{"COMPETING", true},
		{"watching", true},
		{"Listening", true},
		{"EATING", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, ValidStatusType(tc.input))
		})
	}
}
