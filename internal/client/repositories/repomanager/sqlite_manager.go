// Package repomanager provides a concrete RepositoryManager for SQLite,
// wiring together repository constructors and schema migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/timetrack/internal/client/migrations"
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

// SQLiteRepositoryManager vends SQLite-backed repository implementations
// and exposes the schema migration hooks.
type SQLiteRepositoryManager struct{}

// NewSQLiteRepositoryManager constructs a SQLite-backed RepositoryManager.
func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

// RunMigrations applies pending embedded migrations and returns their names.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) ([]string, error) {
	return migrations.Up(ctx, db)
}

// AppliedMigrations lists the migrations recorded in the ledger.
func (m *SQLiteRepositoryManager) AppliedMigrations(ctx context.Context, db *sql.DB) ([]string, error) {
	return migrations.Applied(ctx, db)
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Workspaces(db dbx.DBTX) workspaces.Repository {
	return workspaces.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Clients(db dbx.DBTX) clients.Repository {
	return clients.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Projects(db dbx.DBTX) projects.Repository {
	return projects.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Tasks(db dbx.DBTX) tasks.Repository {
	return tasks.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Tags(db dbx.DBTX) tags.Repository {
	return tags.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) TimeEntries(db dbx.DBTX) timeentries.Repository {
	return timeentries.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return sessions.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Settings(db dbx.DBTX) settings.Repository {
	return settings.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Timeline(db dbx.DBTX) timeline.Repository {
	return timeline.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Installation(db dbx.DBTX) installation.Repository {
	return installation.NewSQLiteRepository(db)
}
