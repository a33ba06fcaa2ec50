package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/leximind/internal/adapter/postgres"
	"github.com/heartmarshall/leximind/internal/adapter/postgres/testhelper"
)

func newTestStore(t *testing.T) *postgres.Store {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return postgres.New(pool, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	value, found, err := store.Get(context.Background(), testhelper.UniqueKey("missing"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestStore_SetGetOverwrite(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()
	key := testhelper.UniqueKey("history")

	require.NoError(t, store.Set(ctx, key, []byte(`[{"word":"alpha","timestamp":1}]`)))

	value, found, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"word":"alpha","timestamp":1}]`, string(value))

	require.NoError(t, store.Set(ctx, key, []byte(`[]`)))

	value, found, err = store.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[]`, string(value))
}

func TestStore_Remove(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()
	key := testhelper.UniqueKey("user")

	testhelper.SeedRecord(t, testhelper.SetupTestDB(t), key, []byte(`{"username":"asha"}`))

	require.NoError(t, store.Remove(ctx, key))
	_, found, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	// Absent keys are not an error.
	require.NoError(t, store.Remove(ctx, key))
}

func TestStore_Ping(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	assert.NoError(t, store.Ping(context.Background()))
}

func TestStore_CanceledContext(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Set(ctx, testhelper.UniqueKey("theme"), []byte(`"dark"`))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMigrate_Idempotent(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)

	require.NoError(t, postgres.Migrate(context.Background(), pool, slog.New(slog.NewTextHandler(io.Discard, nil))))
}
