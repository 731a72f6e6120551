package storage

import (
	"context"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
)

// TimelineBatchSize caps the number of events handed out per batch.
const TimelineBatchSize = 100

// InsertTimelineEvent queues a captured event.
func (s *Store) InsertTimelineEvent(ctx context.Context, ev *models.TimelineEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repos.Timeline(s.db).Insert(ctx, ev)
}

// SelectTimelineBatch returns the oldest undelivered events of the account.
func (s *Store) SelectTimelineBatch(ctx context.Context, uid uint64) ([]models.TimelineEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events, err := s.repos.Timeline(s.db).SelectBatch(ctx, uid, TimelineBatchSize)
	if err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "selected timeline batch", "uid", uid, "count", len(events))
	return events, nil
}

// DeleteTimelineBatch removes delivered events. ids must not be empty.
func (s *Store) DeleteTimelineBatch(ctx context.Context, ids []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repos.Timeline(s.db).DeleteBatch(ctx, ids); err != nil {
		return err
	}
	s.log.Debug(ctx, "deleted timeline batch", "count", len(ids))
	return nil
}
