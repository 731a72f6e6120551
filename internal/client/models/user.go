package models

import "fmt"

// User is the account aggregate. It exclusively owns the collections in
// Related; loads replace them wholesale.
type User struct {
	Base
	APIToken              string
	DefaultWID            uint64
	Since                 uint64
	Fullname              string
	Email                 string
	RecordTimeline        bool
	StoreStartAndStopTime bool

	Related Related
}

// Related holds everything owned by an account.
type Related struct {
	Workspaces  []*Workspace
	Clients     []*Client
	Projects    []*Project
	Tasks       []*Task
	Tags        []*Tag
	TimeEntries []*TimeEntry
}

func (u *User) ModelName() string { return "user" }

func (u *User) SetAPIToken(v string)            { set(&u.Base, &u.APIToken, v) }
func (u *User) SetDefaultWID(v uint64)          { set(&u.Base, &u.DefaultWID, v) }
func (u *User) SetSince(v uint64)               { set(&u.Base, &u.Since, v) }
func (u *User) SetFullname(v string)            { set(&u.Base, &u.Fullname, v) }
func (u *User) SetEmail(v string)               { set(&u.Base, &u.Email, v) }
func (u *User) SetRecordTimeline(v bool)        { set(&u.Base, &u.RecordTimeline, v) }
func (u *User) SetStoreStartAndStopTime(v bool) { set(&u.Base, &u.StoreStartAndStopTime, v) }

// DirtyTimeEntries returns the time entries that need to be pushed.
func (u *User) DirtyTimeEntries() []*TimeEntry {
	var result []*TimeEntry
	for _, te := range u.Related.TimeEntries {
		if te.NeedsToBeSaved() {
			result = append(result, te)
		}
	}
	return result
}

func (u *User) String() string {
	return fmt.Sprintf("ID=%d local_id=%d email=%s default_wid=%d", u.ID, u.LocalID, u.Email, u.DefaultWID)
}
