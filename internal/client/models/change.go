package models

// ChangeType is the kind of write a change record describes.
type ChangeType string

const (
	ChangeInsert ChangeType = "insert"
	ChangeUpdate ChangeType = "update"
	ChangeDelete ChangeType = "delete"
)

// ModelChange is emitted for every successful write and handed to the
// synchronization layer. A delete means "stop tracking remotely".
type ModelChange struct {
	ModelName  string
	ChangeType ChangeType
	ModelID    uint64
	GUID       string
}

// ChangeLog collects change records in write order.
// The zero value is ready to use.
type ChangeLog struct {
	changes []ModelChange
}

// Record appends a change for m using its current remote id and GUID.
func (l *ChangeLog) Record(m Model, t ChangeType) {
	b := m.Identity()
	l.changes = append(l.changes, ModelChange{
		ModelName:  m.ModelName(),
		ChangeType: t,
		ModelID:    b.ID,
		GUID:       b.GUID,
	})
}

// Changes returns a copy of the recorded changes.
func (l *ChangeLog) Changes() []ModelChange {
	out := make([]ModelChange, len(l.changes))
	copy(out, l.changes)
	return out
}

func (l *ChangeLog) Len() int { return len(l.changes) }
