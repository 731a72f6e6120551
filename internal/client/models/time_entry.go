package models

import (
	"fmt"
	"strings"
	"time"
)

// tagSeparator joins tag names in the tags column.
const tagSeparator = "|"

// TimeEntry is a tracked interval. A negative DurationInSeconds means the
// entry is running and holds -start.
type TimeEntry struct {
	Base
	Description       string
	WID               uint64
	PID               uint64
	TID               uint64
	Billable          bool
	DurOnly           bool
	UIModifiedAt      uint64
	Start             uint64
	Stop              uint64
	DurationInSeconds int64
	TagNames          []string
	CreatedWith       string
	DeletedAt         uint64
	UpdatedAt         uint64
	ProjectGUID       string
}

func (te *TimeEntry) ModelName() string { return "time_entry" }

func (te *TimeEntry) SetDescription(v string)      { set(&te.Base, &te.Description, v) }
func (te *TimeEntry) SetWID(v uint64)              { set(&te.Base, &te.WID, v) }
func (te *TimeEntry) SetPID(v uint64)              { set(&te.Base, &te.PID, v) }
func (te *TimeEntry) SetTID(v uint64)              { set(&te.Base, &te.TID, v) }
func (te *TimeEntry) SetBillable(v bool)           { set(&te.Base, &te.Billable, v) }
func (te *TimeEntry) SetDurOnly(v bool)            { set(&te.Base, &te.DurOnly, v) }
func (te *TimeEntry) SetUIModifiedAt(v uint64)     { set(&te.Base, &te.UIModifiedAt, v) }
func (te *TimeEntry) SetStart(v uint64)            { set(&te.Base, &te.Start, v) }
func (te *TimeEntry) SetStop(v uint64)             { set(&te.Base, &te.Stop, v) }
func (te *TimeEntry) SetDurationInSeconds(v int64) { set(&te.Base, &te.DurationInSeconds, v) }
func (te *TimeEntry) SetCreatedWith(v string)      { set(&te.Base, &te.CreatedWith, v) }
func (te *TimeEntry) SetDeletedAt(v uint64)        { set(&te.Base, &te.DeletedAt, v) }
func (te *TimeEntry) SetUpdatedAt(v uint64)        { set(&te.Base, &te.UpdatedAt, v) }
func (te *TimeEntry) SetProjectGUID(v string)      { set(&te.Base, &te.ProjectGUID, v) }

// Tags returns the tag names in their serialized column form.
func (te *TimeEntry) Tags() string {
	return strings.Join(te.TagNames, tagSeparator)
}

// SetTags replaces the tag names from their serialized form.
func (te *TimeEntry) SetTags(v string) {
	if te.Tags() == v {
		return
	}
	te.TagNames = nil
	if v != "" {
		te.TagNames = strings.Split(v, tagSeparator)
	}
	te.dirty = true
}

// IsRunning reports whether the entry has not been stopped yet.
func (te *TimeEntry) IsRunning() bool {
	return te.DurationInSeconds < 0
}

// StopAt stops a running entry at the given unix time.
func (te *TimeEntry) StopAt(at uint64) {
	if at == 0 {
		panic("models: StopAt with zero time")
	}
	te.SetDurationInSeconds(int64(at) + te.DurationInSeconds)
	te.SetStop(at)
	te.SetUIModifiedAt(uint64(time.Now().Unix()))
}

func (te *TimeEntry) String() string {
	return fmt.Sprintf("ID=%d local_id=%d description=%s wid=%d guid=%s pid=%d tid=%d start=%d stop=%d duration=%d tags=%s deleted_at=%d",
		te.ID, te.LocalID, te.Description, te.WID, te.GUID, te.PID, te.TID,
		te.Start, te.Stop, te.DurationInSeconds, te.Tags(), te.DeletedAt)
}
