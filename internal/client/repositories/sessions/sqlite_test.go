package sessions

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/timetrack/internal/client/repositories/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	db := testdb.New(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	token, err := r.Current(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, r.Set(ctx, "first"))
	require.NoError(t, r.Set(ctx, "second"))

	token, err = r.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", token)
	assert.Equal(t, 1, testdb.Count(t, db, "sessions", ""))

	require.NoError(t, r.Clear(ctx))
	token, err = r.Current(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSet_ClearErrorSkipsInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM sessions`).WillReturnError(errors.New("readonly database"))

	err = NewSQLiteRepository(db).Set(context.Background(), "tok")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete sessions")
	require.NoError(t, mock.ExpectationsWereMet())
}
