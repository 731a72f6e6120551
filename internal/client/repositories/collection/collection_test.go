package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	saved   []*models.Tag
	deleted []int64
	saveErr error
	delErr  error
}

func (r *recorder) save(_ context.Context, m *models.Tag, log *models.ChangeLog) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, m)
	log.Record(m, models.ChangeUpdate)
	return nil
}

func (r *recorder) del(_ context.Context, localID int64) error {
	if r.delErr != nil {
		return r.delErr
	}
	r.deleted = append(r.deleted, localID)
	return nil
}

func TestSaveAll_SavesEveryModelWithUID(t *testing.T) {
	a := &models.Tag{Name: "a"}
	b := &models.Tag{Name: "b"}
	list := []*models.Tag{a, b}
	r := &recorder{}
	var log models.ChangeLog

	got, err := SaveAll(context.Background(), 9, list, &log, r.save, r.del)
	require.NoError(t, err)

	assert.Equal(t, list, got)
	assert.Equal(t, []*models.Tag{a, b}, r.saved)
	assert.Equal(t, uint64(9), a.UID)
	assert.Equal(t, uint64(9), b.UID)
	assert.Equal(t, 2, log.Len())
}

func TestSaveAll_DeletesAndPurgesMarkedModels(t *testing.T) {
	keep := &models.Tag{Base: models.Base{LocalID: 1}, Name: "keep"}
	gone := &models.Tag{Base: models.Base{LocalID: 2, ID: 20, GUID: "g2"}, Name: "gone"}
	gone.MarkAsDeletedOnServer()
	unsaved := &models.Tag{Name: "never persisted"}
	unsaved.MarkAsDeletedOnServer()

	list := []*models.Tag{keep, gone, unsaved}
	r := &recorder{}
	var log models.ChangeLog

	got, err := SaveAll(context.Background(), 1, list, &log, r.save, r.del)
	require.NoError(t, err)

	assert.Equal(t, []*models.Tag{keep}, got)
	assert.Equal(t, []int64{2}, r.deleted, "rows without local id are not deleted")
	assert.Len(t, list, 3, "input collection is left untouched")

	changes := log.Changes()
	require.Len(t, changes, 3)
	assert.Equal(t, models.ModelChange{ModelName: "tag", ChangeType: models.ChangeDelete, ModelID: 20, GUID: "g2"}, changes[1])
	assert.Equal(t, models.ChangeDelete, changes[2].ChangeType)
}

func TestSaveAll_StopsOnSaveError(t *testing.T) {
	list := []*models.Tag{{Name: "a"}, {Name: "b"}}
	r := &recorder{saveErr: errors.New("disk full")}
	var log models.ChangeLog

	got, err := SaveAll(context.Background(), 1, list, &log, r.save, r.del)
	require.Error(t, err)
	assert.Equal(t, list, got)
	assert.Zero(t, log.Len())
}

func TestSaveAll_StopsOnDeleteError(t *testing.T) {
	gone := &models.Tag{Base: models.Base{LocalID: 5}}
	gone.MarkAsDeletedOnServer()
	r := &recorder{delErr: errors.New("locked")}
	var log models.ChangeLog

	_, err := SaveAll(context.Background(), 1, []*models.Tag{gone}, &log, r.save, r.del)
	require.Error(t, err)
	assert.Zero(t, log.Len())
}

func TestSaveAll_ZeroUIDPanics(t *testing.T) {
	r := &recorder{}
	assert.Panics(t, func() {
		_, _ = SaveAll(context.Background(), 0, []*models.Tag{}, &models.ChangeLog{}, r.save, r.del)
	})
}
