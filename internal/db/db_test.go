package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbh, err := Open(filepath.Join(t.TempDir(), "data", "mindtrack.db"))
	require.NoError(t, err)
	defer dbh.Close()

	_, err = GetSlot(ctx, dbh, "wellnessEntries")
	assert.ErrorIs(t, err, ErrNoSlot)

	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, PutSlot(ctx, dbh, "wellnessEntries", []byte(`[1]`), at))
	require.NoError(t, PutSlot(ctx, dbh, "wellnessEntries", []byte(`[1,2]`), at.Add(time.Minute)))

	got, err := GetSlot(ctx, dbh, "wellnessEntries")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))

	updated, err := SlotUpdatedAt(ctx, dbh, "wellnessEntries")
	require.NoError(t, err)
	assert.True(t, updated.Equal(at.Add(time.Minute)))
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mindtrack.db")
	for i := 0; i < 2; i++ {
		dbh, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, dbh.Close())
	}
}

func TestEnsureUpdatedAtColumnUpgradesOldTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")
	dbh, err := Open(path)
	require.NoError(t, err)
	_, err = dbh.Exec(`DROP TABLE slots; CREATE TABLE slots (name TEXT PRIMARY KEY, payload BLOB NOT NULL)`)
	require.NoError(t, err)

	require.NoError(t, EnsureUpdatedAtColumn(dbh))
	require.NoError(t, EnsureUpdatedAtColumn(dbh))
	require.NoError(t, PutSlot(context.Background(), dbh, "s", []byte("x"), time.Now()))
	require.NoError(t, dbh.Close())
}
