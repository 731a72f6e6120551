package storage

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineBatches(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	for i := 150; i >= 1; i-- {
		require.NoError(t, s.InsertTimelineEvent(ctx, &models.TimelineEvent{
			UserID: 1, Title: "t", StartTime: int64(i), EndTime: int64(i + 1),
		}))
	}

	first, err := s.SelectTimelineBatch(ctx, 1)
	require.NoError(t, err)
	require.Len(t, first, TimelineBatchSize)
	assert.Equal(t, int64(1), first[0].StartTime)
	assert.Equal(t, int64(100), first[99].StartTime)

	ids := make([]int64, len(first))
	delivered := make(map[int64]bool, len(first))
	for i, ev := range first {
		ids[i] = ev.ID
		delivered[ev.ID] = true
	}
	require.NoError(t, s.DeleteTimelineBatch(ctx, ids))

	second, err := s.SelectTimelineBatch(ctx, 1)
	require.NoError(t, err)
	require.Len(t, second, 50)
	for _, ev := range second {
		assert.False(t, delivered[ev.ID], "deleted event %d returned again", ev.ID)
	}

	other, err := s.SelectTimelineBatch(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestTimelineBatch_UndeliveredEventsAreSelectedAgain(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.InsertTimelineEvent(ctx, &models.TimelineEvent{UserID: 1, StartTime: 1, EndTime: 2}))

	a, err := s.SelectTimelineBatch(ctx, 1)
	require.NoError(t, err)
	b, err := s.SelectTimelineBatch(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDeleteTimelineBatch_EmptyPanics(t *testing.T) {
	s, _ := openStore(t)
	assert.Panics(t, func() { _ = s.DeleteTimelineBatch(context.Background(), []int64{}) })

	// the store stays usable after the panic released the lock
	_, err := s.SelectTimelineBatch(context.Background(), 1)
	require.NoError(t, err)
}
