package settings

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/timetrack/internal/client/models"
	"github.com/dmitrijs2005/timetrack/internal/client/repositories/testdb"
	"github.com/dmitrijs2005/timetrack/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	db := testdb.New(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	s, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Settings{UseIdleDetection: true}, s)

	c, err := r.LoadUpdateChannel(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.UpdateChannelStable, c)
}

func TestSave_RoundTrip(t *testing.T) {
	db := testdb.New(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	in := models.Settings{
		UseProxy:         true,
		Proxy:            models.Proxy{Host: "proxy.local", Port: 3128, Username: "u", Password: "p"},
		UseIdleDetection: false,
	}
	require.NoError(t, r.Save(ctx, in))

	out, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Equal(t, 1, testdb.Count(t, db, "settings", ""))
}

func TestSaveUpdateChannel(t *testing.T) {
	db := testdb.New(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.SaveUpdateChannel(ctx, models.UpdateChannelBeta))
	c, err := r.LoadUpdateChannel(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.UpdateChannelBeta, c)

	err = r.SaveUpdateChannel(ctx, "weekly")
	require.ErrorIs(t, err, common.ErrInvalidArgument)

	c, err = r.LoadUpdateChannel(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.UpdateChannelBeta, c, "rejected channel must not be written")
}

func TestSaveUpdateChannel_InvalidDoesNotTouchDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = NewSQLiteRepository(db).SaveUpdateChannel(context.Background(), "")
	require.ErrorIs(t, err, common.ErrInvalidArgument)
	require.NoError(t, mock.ExpectationsWereMet())
}
