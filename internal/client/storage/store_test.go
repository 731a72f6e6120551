package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
	"github.com/dmitrijs2005/timetrack/internal/common"
	"github.com/dmitrijs2005/timetrack/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timetrack.db")
	s, err := Open(context.Background(), path, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestOpen_MigratesAndKeepsDesktopID(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "timetrack.db")

	s, err := Open(ctx, path, logging.Discard())
	require.NoError(t, err)
	first := s.DesktopID()
	require.NotEmpty(t, first)

	applied, err := s.AppliedMigrations(ctx)
	require.NoError(t, err)
	require.Len(t, applied, 33)
	assert.Equal(t, "users", applied[0])
	assert.Equal(t, "timeline_events.user_id", applied[len(applied)-1])
	require.NoError(t, s.Close())

	s, err = Open(ctx, path, logging.Discard())
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, first, s.DesktopID(), "installation id is generated once")

	again, err := s.AppliedMigrations(ctx)
	require.NoError(t, err)
	assert.Equal(t, applied, again)
}

func TestOpen_UsesWAL(t *testing.T) {
	s, _ := openStore(t)

	var mode string
	require.NoError(t, s.db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpen_InMemoryDatabaseCannotUseWAL(t *testing.T) {
	_, err := Open(context.Background(), ":memory:", logging.Discard())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConfiguration)
}

func TestOpen_MigrationFailureIsConfigurationError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE users (something TEXT)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Open(context.Background(), path, logging.Discard())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConfiguration)
}

func TestSettingsAndSession(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveUpdateChannel(ctx, models.UpdateChannelBeta))
	err := s.SaveUpdateChannel(ctx, "weekly")
	require.ErrorIs(t, err, common.ErrInvalidArgument)
	c, err := s.LoadUpdateChannel(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.UpdateChannelBeta, c)

	in := models.Settings{UseProxy: true, Proxy: models.Proxy{Host: "h", Port: 8080}, UseIdleDetection: true}
	require.NoError(t, s.SaveSettings(ctx, in))
	out, err := s.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	token, err := s.CurrentAPIToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.SetCurrentAPIToken(ctx, "a"))
	require.NoError(t, s.SetCurrentAPIToken(ctx, "b"))
	token, err = s.CurrentAPIToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", token)

	require.NoError(t, s.ClearCurrentAPIToken(ctx))
	token, err = s.CurrentAPIToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestConcurrentCallersAreSerialized(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	const workers, perWorker = 8, 25
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(uid uint64) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ev := &models.TimelineEvent{UserID: uid, Title: "t", StartTime: int64(i + 1), EndTime: int64(i + 2)}
				assert.NoError(t, s.InsertTimelineEvent(ctx, ev))
				_, err := s.LoadSettings(ctx)
				assert.NoError(t, err)
			}
		}(uint64(w + 1))
	}
	wg.Wait()

	for uid := uint64(1); uid <= workers; uid++ {
		batch, err := s.SelectTimelineBatch(ctx, uid)
		require.NoError(t, err)
		assert.Len(t, batch, perWorker)
	}
}
