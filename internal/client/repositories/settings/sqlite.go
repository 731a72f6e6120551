package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
	"github.com/dmitrijs2005/timetrack/internal/common"
	"github.com/dmitrijs2005/timetrack/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (models.Settings, error) {
	var (
		s                  models.Settings
		host, user, passwd sql.NullString
		port               sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT use_proxy, proxy_host, proxy_port, proxy_username, proxy_password, use_idle_detection
		FROM settings LIMIT 1`).
		Scan(&s.UseProxy, &host, &port, &user, &passwd, &s.UseIdleDetection)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	s.Proxy = models.Proxy{
		Host:     host.String,
		Port:     uint64(port.Int64),
		Username: user.String,
		Password: passwd.String,
	}
	return s, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, s models.Settings) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE settings SET use_proxy = ?, proxy_host = ?, proxy_port = ?, proxy_username = ?,
		proxy_password = ?, use_idle_detection = ?`,
		s.UseProxy, s.Proxy.Host, s.Proxy.Port, s.Proxy.Username, s.Proxy.Password, s.UseIdleDetection)
	return dbx.Wrap("update settings", err)
}

func (r *SQLiteRepository) LoadUpdateChannel(ctx context.Context) (models.UpdateChannel, error) {
	var c string
	err := r.db.QueryRowContext(ctx, `SELECT update_channel FROM settings LIMIT 1`).Scan(&c)
	if err != nil {
		return "", fmt.Errorf("failed to load update channel: %w", err)
	}
	return models.UpdateChannel(c), nil
}

// SaveUpdateChannel stores c. Unknown channels are rejected without writing.
func (r *SQLiteRepository) SaveUpdateChannel(ctx context.Context, c models.UpdateChannel) error {
	if !c.Valid() {
		return fmt.Errorf("update channel %q: %w", c, common.ErrInvalidArgument)
	}
	_, err := r.db.ExecContext(ctx, `UPDATE settings SET update_channel = ?`, string(c))
	return dbx.Wrap("update update channel", err)
}
