// Package models defines the client-side entities persisted by the local
// store, their dirty-tracking identity and the change records emitted when
// they are written.
package models

import "github.com/google/uuid"

// Base carries the identity shared by every persisted entity.
//
// LocalID is assigned by the store on first insert and never changes; zero
// means "not persisted yet". ID is the remote id assigned by the server and is
// zero for entities created offline. GUID is generated on the client and lets
// the server de-duplicate offline creations.
type Base struct {
	LocalID int64
	ID      uint64
	UID     uint64
	GUID    string

	dirty           bool
	deletedOnServer bool
}

// Model is implemented by every persisted entity.
type Model interface {
	ModelName() string
	Identity() *Base
}

func (b *Base) Identity() *Base { return b }

// Dirty reports whether the entity has in-memory changes not yet persisted.
func (b *Base) Dirty() bool { return b.dirty }

func (b *Base) SetDirty()   { b.dirty = true }
func (b *Base) ClearDirty() { b.dirty = false }

// NeedsToBeSaved is true for entities never persisted or changed since.
func (b *Base) NeedsToBeSaved() bool {
	return b.LocalID == 0 || b.dirty
}

// MarkAsDeletedOnServer flags the entity for physical removal on the next
// collection save.
func (b *Base) MarkAsDeletedOnServer()          { b.deletedOnServer = true }
func (b *Base) IsMarkedAsDeletedOnServer() bool { return b.deletedOnServer }

// EnsureGUID assigns a random GUID when none is set.
func (b *Base) EnsureGUID() {
	if b.GUID == "" {
		b.GUID = uuid.NewString()
		b.dirty = true
	}
}

func (b *Base) SetID(v uint64)   { set(b, &b.ID, v) }
func (b *Base) SetUID(v uint64)  { set(b, &b.UID, v) }
func (b *Base) SetGUID(v string) { set(b, &b.GUID, v) }

// set assigns v to *field and marks b dirty when the value changes.
func set[T comparable](b *Base, field *T, v T) {
	if *field != v {
		*field = v
		b.dirty = true
	}
}
