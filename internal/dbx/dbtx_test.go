package dbx

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/timetrack/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "dbx.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE t (id INTEGER PRIMARY KEY, v TEXT UNIQUE);`)
	require.NoError(t, err)
	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM t`).Scan(&n))
	return n
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('ok')`)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, countRows(t, db), "must commit on success")
}

func TestWithTx_RollbackOnFnError(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('fail')`)
		require.NoError(t, e)
		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countRows(t, db), "must rollback when fn returns error")
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := setupDB(t)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic to propagate")
		}
		require.Equal(t, 0, countRows(t, db), "must rollback on panic")
	}()

	_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('panic')`)
		require.NoError(t, e)
		panic("kaput")
	})
}

func TestWithTx_BeginError(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Close())

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return nil
	})
	require.Error(t, err, "begin should fail when DB is closed")

	var se *common.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "begin", se.Op)
}

func TestInsert_ReturnsLastInsertID(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	id1, err := Insert(ctx, db, "insert", `INSERT INTO t(v) VALUES (?)`, "a")
	require.NoError(t, err)
	id2, err := Insert(ctx, db, "insert", `INSERT INTO t(v) VALUES (?)`, "b")
	require.NoError(t, err)

	assert.Greater(t, id1, int64(0))
	assert.Greater(t, id2, id1)
}

func TestInsert_UniqueViolationIsClassified(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	_, err := Insert(ctx, db, "insert", `INSERT INTO t(v) VALUES (?)`, "dup")
	require.NoError(t, err)

	_, err = Insert(ctx, db, "insertDup", `INSERT INTO t(v) VALUES (?)`, "dup")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConstraintViolation)
	assert.Contains(t, err.Error(), "insertDup")
}

func TestWrap_NilAndPlainErrors(t *testing.T) {
	assert.NoError(t, Wrap("op", nil))

	err := Wrap("op", errors.New("io"))
	assert.False(t, errors.Is(err, common.ErrConstraintViolation))
	assert.False(t, IsConstraint(errors.New("UNIQUE constraint failed")))
}

func TestNullHelpers(t *testing.T) {
	assert.False(t, NullInt64(0).Valid)
	assert.Equal(t, sql.NullInt64{Int64: 42, Valid: true}, NullInt64(42))
	assert.False(t, NullString("").Valid)
	assert.Equal(t, sql.NullString{String: "g", Valid: true}, NullString("g"))
}
