// Package timeline moves captured activity events between the activity
// tracker, the local store and the uploader. Three inbound message kinds
// arrive on typed channels (or as direct Handle* calls); ready batches leave
// on the Ready channel.
package timeline

import (
	"context"
	"time"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
	"github.com/dmitrijs2005/timetrack/internal/logging"
)

// Store is the part of the local store the pipeline needs.
type Store interface {
	InsertTimelineEvent(ctx context.Context, ev *models.TimelineEvent) error
	SelectTimelineBatch(ctx context.Context, uid uint64) ([]models.TimelineEvent, error)
	DeleteTimelineBatch(ctx context.Context, ids []int64) error
	DesktopID() string
}

// EventCaptured carries one activity sample to be queued.
type EventCaptured struct {
	Event models.TimelineEvent
}

// BatchRequested asks for the oldest undelivered events of an account.
type BatchRequested struct {
	UserID uint64
}

// BatchDelivered confirms that a batch reached the server.
type BatchDelivered struct {
	Events []models.TimelineEvent
}

// BatchReady is published for every non-empty batch.
type BatchReady struct {
	UserID    uint64
	DesktopID string
	Events    []models.TimelineEvent
}

type Bus struct {
	store Store
	log   logging.Logger

	captured  chan EventCaptured
	requested chan BatchRequested
	delivered chan BatchDelivered
	ready     chan BatchReady
}

// NewBus creates a bus whose channels hold up to buffer messages each.
func NewBus(store Store, log logging.Logger, buffer int) *Bus {
	return &Bus{
		store:     store,
		log:       log,
		captured:  make(chan EventCaptured, buffer),
		requested: make(chan BatchRequested, buffer),
		delivered: make(chan BatchDelivered, buffer),
		ready:     make(chan BatchReady, buffer),
	}
}

func (b *Bus) Captured() chan<- EventCaptured   { return b.captured }
func (b *Bus) Requested() chan<- BatchRequested { return b.requested }
func (b *Bus) Delivered() chan<- BatchDelivered { return b.delivered }
func (b *Bus) Ready() <-chan BatchReady         { return b.ready }

// HandleEventCaptured stores the event.
func (b *Bus) HandleEventCaptured(ctx context.Context, msg EventCaptured) error {
	ev := msg.Event
	return b.store.InsertTimelineEvent(ctx, &ev)
}

// HandleBatchRequested selects the next batch for the account. It returns
// nil when there is nothing to deliver.
func (b *Bus) HandleBatchRequested(ctx context.Context, msg BatchRequested) (*BatchReady, error) {
	events, err := b.store.SelectTimelineBatch(ctx, msg.UserID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &BatchReady{UserID: msg.UserID, DesktopID: b.store.DesktopID(), Events: events}, nil
}

// HandleBatchDelivered deletes exactly the delivered events. The batch must
// not be empty.
func (b *Bus) HandleBatchDelivered(ctx context.Context, msg BatchDelivered) error {
	if len(msg.Events) == 0 {
		panic("timeline: delivered batch is empty")
	}
	ids := make([]int64, len(msg.Events))
	for i, ev := range msg.Events {
		ids[i] = ev.ID
	}
	return b.store.DeleteTimelineBatch(ctx, ids)
}

// Run dispatches inbound messages until ctx is done. Store failures are
// logged; the undelivered rows stay queued and are offered again on the
// next request.
func (b *Bus) Run(ctx context.Context) {
	for {
		select {
		case msg := <-b.captured:
			if err := b.HandleEventCaptured(ctx, msg); err != nil {
				b.log.Error(ctx, "failed to store timeline event", "error", err)
			}

		case msg := <-b.requested:
			batch, err := b.HandleBatchRequested(ctx, msg)
			if err != nil {
				b.log.Error(ctx, "failed to select timeline batch", "uid", msg.UserID, "error", err)
				continue
			}
			if batch == nil {
				continue
			}
			select {
			case b.ready <- *batch:
			case <-ctx.Done():
				return
			}

		case msg := <-b.delivered:
			if err := b.HandleBatchDelivered(ctx, msg); err != nil {
				b.log.Error(ctx, "failed to delete timeline batch", "error", err)
			}

		case <-ctx.Done():
			return
		}
	}
}

// RequestEvery sends a BatchRequested for uid on every tick until ctx is
// done.
func (b *Bus) RequestEvery(ctx context.Context, uid uint64, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			select {
			case b.requested <- BatchRequested{UserID: uid}:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
