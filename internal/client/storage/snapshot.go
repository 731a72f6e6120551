package storage

import "github.com/dmitrijs2005/timetrack/internal/client/models"

// snapshot remembers the identity state of an account graph so a rolled back
// save leaves memory exactly as it found it.
type snapshot struct {
	related models.Related
	bases   []baseState
}

type baseState struct {
	ptr   *models.Base
	value models.Base
}

func takeSnapshot(u *models.User) *snapshot {
	s := &snapshot{related: u.Related}
	s.add(u)
	r := u.Related
	for _, m := range r.Workspaces {
		s.add(m)
	}
	for _, m := range r.Clients {
		s.add(m)
	}
	for _, m := range r.Projects {
		s.add(m)
	}
	for _, m := range r.Tasks {
		s.add(m)
	}
	for _, m := range r.Tags {
		s.add(m)
	}
	for _, m := range r.TimeEntries {
		s.add(m)
	}
	return s
}

func (s *snapshot) add(m models.Model) {
	b := m.Identity()
	s.bases = append(s.bases, baseState{ptr: b, value: *b})
}

func (s *snapshot) restore(u *models.User) {
	for _, st := range s.bases {
		*st.ptr = st.value
	}
	u.Related = s.related
}
