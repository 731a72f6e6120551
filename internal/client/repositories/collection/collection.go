// Package collection implements the bulk save protocol shared by every
// entity repository: save each model of an owned collection, physically
// delete the ones flagged as deleted on the server, and drop those from the
// returned collection in a second pass.
package collection

import (
	"context"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
)

// SaveFunc persists a single model and records its change.
type SaveFunc[T models.Model] func(ctx context.Context, m T, log *models.ChangeLog) error

// DeleteFunc removes a row by local id.
type DeleteFunc func(ctx context.Context, localID int64) error

// SaveAll assigns uid to every model in list and saves it. Models marked as
// deleted on the server are deleted by local id instead and reported as
// delete changes. The returned slice is a new collection without them; list
// itself is never modified while it is being iterated.
func SaveAll[T models.Model](ctx context.Context, uid uint64, list []T, log *models.ChangeLog, save SaveFunc[T], del DeleteFunc) ([]T, error) {
	if uid == 0 {
		panic("collection: SaveAll with zero uid")
	}

	purge := 0
	for _, m := range list {
		b := m.Identity()
		if b.IsMarkedAsDeletedOnServer() {
			if b.LocalID != 0 {
				if err := del(ctx, b.LocalID); err != nil {
					return list, err
				}
			}
			log.Record(m, models.ChangeDelete)
			purge++
			continue
		}
		b.SetUID(uid)
		if err := save(ctx, m, log); err != nil {
			return list, err
		}
	}

	if purge == 0 {
		return list, nil
	}
	kept := make([]T, 0, len(list)-purge)
	for _, m := range list {
		if !m.Identity().IsMarkedAsDeletedOnServer() {
			kept = append(kept, m)
		}
	}
	return kept, nil
}
