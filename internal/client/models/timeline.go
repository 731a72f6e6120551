package models

// TimelineEvent is one captured activity sample. It is owned by an account
// but lives outside dirty tracking; rows are deleted once delivered.
type TimelineEvent struct {
	ID        int64
	UserID    uint64
	Title     string
	Filename  string
	StartTime int64
	EndTime   int64
	Idle      bool
}
