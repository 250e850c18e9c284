package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k1", []byte{0x01, 0x02}))

	v, err := r.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, v)
}

func TestGet_NotExists_ReturnsNilNil(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	v, err := r.Get(ctx, "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new"))) // upsert

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestDelete_RemovesKey_AndIsIdempotent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "x", []byte{0x01}))
	require.NoError(t, r.Delete(ctx, "x"))

	v, err := r.Get(ctx, "x")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Delete(ctx, "x"))
}

func TestClear_RemovesAllKeys(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte{1}))
	require.NoError(t, r.Set(ctx, "b", []byte{2}))
	require.NoError(t, r.Clear(ctx))

	v, err := r.Get(ctx, "a")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestGet_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	v, err := r.Get(ctx, "k")
	require.Error(t, err)
	require.Nil(t, v)
	require.Contains(t, err.Error(), "failed to get session[k]")
}

func TestSet_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	err := r.Set(ctx, "k", []byte("v"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to set session[k]")
}

func TestMigrations_Idempotent(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, RunMigrations(context.Background(), db))
}
