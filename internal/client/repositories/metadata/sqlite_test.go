package metadata

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE metadata (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at INTEGER NOT NULL DEFAULT 0
);`

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(schema)
	require.NoError(t, err)
	return db
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "authToken", []byte("abc.def.ghi")))

	v, err := r.Get(ctx, "authToken")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc.def.ghi"), v)
}

func TestGet_Missing(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSet_Upsert(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	first := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return first }
	require.NoError(t, r.Set(ctx, "k", []byte("old")))

	second := first.Add(time.Hour)
	r.now = func() time.Time { return second }
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)

	at, ok, err := r.UpdatedAt(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second, at)
}

func TestSet_NilValueStoredAsEmpty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", nil))
	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.NotNil(t, v)
	assert.Empty(t, v)
}

func TestUpdatedAt_Missing(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, ok, err := r.UpdatedAt(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDelete_Idempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "x", []byte{0x01}))
	require.NoError(t, r.Delete(ctx, "x"))

	v, err := r.Get(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, r.Delete(ctx, "x"))
}

func TestErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	assert.ErrorContains(t, err, "failed to get metadata[k]")

	err = r.Set(ctx, "k", []byte("v"))
	assert.ErrorContains(t, err, "failed to set metadata[k]")

	err = r.Delete(ctx, "k")
	assert.ErrorContains(t, err, "failed to delete metadata[k]")

	_, _, err = r.UpdatedAt(ctx, "k")
	assert.ErrorContains(t, err, "failed to get metadata[k] timestamp")
}
