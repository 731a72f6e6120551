package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/timetrack/internal/client/repositories/clients"
	"github.com/dmitrijs2005/timetrack/internal/client/repositories/installation"
	"github.com/dmitrijs2005/timetrack/internal/client/repositories/projects"
	"github.com/dmitrijs2005/timetrack/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/timetrack/internal/client/repositories/settings"
	"github.com/dmitrijs2005/timetrack/internal/client/repositories/tags"
	"github.com/dmitrijs2005/timetrack/internal/client/repositories/tasks"
	"github.com/dmitrijs2005/timetrack/internal/client/repositories/timeentries"
	"github.com/dmitrijs2005/timetrack/internal/client/repositories/timeline"
	"github.com/dmitrijs2005/timetrack/internal/client/repositories/users"
	"github.com/dmitrijs2005/timetrack/internal/client/repositories/workspaces"
	"github.com/dmitrijs2005/timetrack/internal/dbx"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) ([]string, error)
	AppliedMigrations(ctx context.Context, db *sql.DB) ([]string, error)
	Users(db dbx.DBTX) users.Repository
	Workspaces(db dbx.DBTX) workspaces.Repository
	Clients(db dbx.DBTX) clients.Repository
	Projects(db dbx.DBTX) projects.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	Tags(db dbx.DBTX) tags.Repository
	TimeEntries(db dbx.DBTX) timeentries.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Settings(db dbx.DBTX) settings.Repository
	Timeline(db dbx.DBTX) timeline.Repository
	Installation(db dbx.DBTX) installation.Repository
}
