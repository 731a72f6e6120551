package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
	"github.com/dmitrijs2005/timetrack/internal/common"
	"github.com/dmitrijs2005/timetrack/internal/dbx"
)

// SaveUser writes the account row when it needs saving and, with
// withRelated, every owned collection in dependency order: workspaces,
// clients, projects, tasks, tags, time entries. Related collections are saved
// even when the account row itself is clean.
//
// A nil user means nobody is logged in; nothing is written.
//
// All writes share one transaction. On failure nothing is committed, the
// in-memory identity state of u and its collections is restored, and no
// change records are returned.
func (s *Store) SaveUser(ctx context.Context, u *models.User, withRelated bool) ([]models.ModelChange, error) {
	if u == nil {
		s.log.Warn(ctx, "cannot save user, user is logged out")
		return nil, nil
	}
	if u.Email == "" || u.APIToken == "" || u.ID == 0 {
		return nil, fmt.Errorf("user must have email, api token and id: %w", common.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	snap := takeSnapshot(u)
	var log models.ChangeLog

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.Users(tx).Save(ctx, u, &log); err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}
		if !withRelated {
			return nil
		}
		return s.saveRelated(ctx, tx, u, &log)
	})
	if err != nil {
		snap.restore(u)
		s.log.Warn(ctx, "user save rolled back", "uid", u.ID, "error", err)
		return nil, err
	}

	s.log.Debug(ctx, "user saved", "uid", u.ID, "changes", log.Len(), "elapsed", time.Since(start))
	return log.Changes(), nil
}

func (s *Store) saveRelated(ctx context.Context, tx dbx.DBTX, u *models.User, log *models.ChangeLog) error {
	var err error
	r := &u.Related

	if r.Workspaces, err = s.repos.Workspaces(tx).SaveAll(ctx, u.ID, r.Workspaces, log); err != nil {
		return fmt.Errorf("failed to save workspaces: %w", err)
	}
	if r.Clients, err = s.repos.Clients(tx).SaveAll(ctx, u.ID, r.Clients, log); err != nil {
		return fmt.Errorf("failed to save clients: %w", err)
	}
	if r.Projects, err = s.repos.Projects(tx).SaveAll(ctx, u.ID, r.Projects, log); err != nil {
		return fmt.Errorf("failed to save projects: %w", err)
	}
	if r.Tasks, err = s.repos.Tasks(tx).SaveAll(ctx, u.ID, r.Tasks, log); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	if r.Tags, err = s.repos.Tags(tx).SaveAll(ctx, u.ID, r.Tags, log); err != nil {
		return fmt.Errorf("failed to save tags: %w", err)
	}
	if r.TimeEntries, err = s.repos.TimeEntries(tx).SaveAll(ctx, u.ID, r.TimeEntries, log); err != nil {
		return fmt.Errorf("failed to save time entries: %w", err)
	}
	return nil
}

// LoadUserByID returns the account with remote id, or nil when it is not
// stored. With withRelated its collections are loaded too.
func (s *Store) LoadUserByID(ctx context.Context, id uint64, withRelated bool) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.repos.Users(s.db).GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	return s.withRelated(ctx, u, withRelated)
}

// LoadUserByAPIToken returns the account owning token, or nil.
func (s *Store) LoadUserByAPIToken(ctx context.Context, token string, withRelated bool) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.repos.Users(s.db).GetByAPIToken(ctx, token)
	if err != nil || u == nil {
		return nil, err
	}
	return s.withRelated(ctx, u, withRelated)
}

// LoadCurrentUser returns the account of the active session, or nil when
// signed out.
func (s *Store) LoadCurrentUser(ctx context.Context, withRelated bool) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.repos.Sessions(s.db).Current(ctx)
	if err != nil || token == "" {
		return nil, err
	}
	u, err := s.repos.Users(s.db).GetByAPIToken(ctx, token)
	if err != nil || u == nil {
		return nil, err
	}
	return s.withRelated(ctx, u, withRelated)
}

func (s *Store) withRelated(ctx context.Context, u *models.User, load bool) (*models.User, error) {
	if !load {
		return u, nil
	}
	if err := s.loadRelated(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// loadRelated replaces every collection of u with freshly loaded ones.
func (s *Store) loadRelated(ctx context.Context, u *models.User) error {
	var (
		r   models.Related
		err error
	)
	if r.Workspaces, err = s.repos.Workspaces(s.db).ListByUID(ctx, u.ID); err != nil {
		return err
	}
	if r.Clients, err = s.repos.Clients(s.db).ListByUID(ctx, u.ID); err != nil {
		return err
	}
	if r.Projects, err = s.repos.Projects(s.db).ListByUID(ctx, u.ID); err != nil {
		return err
	}
	if r.Tasks, err = s.repos.Tasks(s.db).ListByUID(ctx, u.ID); err != nil {
		return err
	}
	if r.Tags, err = s.repos.Tags(s.db).ListByUID(ctx, u.ID); err != nil {
		return err
	}
	if r.TimeEntries, err = s.repos.TimeEntries(s.db).ListByUID(ctx, u.ID); err != nil {
		return err
	}
	u.Related = r
	return nil
}

// DeleteUser removes the account row and, with withRelated, everything it
// owns. The account must have been saved before.
func (s *Store) DeleteUser(ctx context.Context, u *models.User, withRelated bool) error {
	if u == nil {
		panic("storage: DeleteUser with nil user")
	}
	if u.LocalID == 0 {
		return fmt.Errorf("user was never saved: %w", common.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.Users(tx).Delete(ctx, u.LocalID); err != nil {
			return err
		}
		if !withRelated {
			return nil
		}
		for _, del := range []func(context.Context, uint64) error{
			s.repos.TimeEntries(tx).DeleteAllByUID,
			s.repos.Tags(tx).DeleteAllByUID,
			s.repos.Tasks(tx).DeleteAllByUID,
			s.repos.Projects(tx).DeleteAllByUID,
			s.repos.Clients(tx).DeleteAllByUID,
			s.repos.Workspaces(tx).DeleteAllByUID,
		} {
			if err := del(ctx, u.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.log.Debug(ctx, "user deleted", "uid", u.ID, "with_related", withRelated)
	return nil
}
