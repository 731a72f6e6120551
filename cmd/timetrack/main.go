// Command timetrack inspects and maintains the local database of the time
// tracking client.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/timetrack/internal/client/config"
	"github.com/dmitrijs2005/timetrack/internal/client/storage"
	"github.com/dmitrijs2005/timetrack/internal/filex"
	"github.com/dmitrijs2005/timetrack/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	log        *logging.SlogLogger
	logCloser  io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "timetrack",
		Short:         "Maintain the local time tracking database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log, a.logCloser = logging.NewFileLogger(logging.FileOptions{
				Path:       cfg.LogFile,
				Level:      cfg.LogLevel,
				MaxSizeMB:  cfg.LogMaxSizeMB,
				MaxBackups: cfg.LogMaxBackups,
			})
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logCloser != nil {
				return a.logCloser.Close()
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "config file (JSON, YAML or TOML)")
	flags.StringP(config.KeyDatabasePath, "d", "", "path to the SQLite database")
	flags.String(config.KeyLogFile, "", "rotating log file (default stderr)")
	flags.String(config.KeyLogLevel, "", "log level: debug, info, warn, error")
	for _, key := range []string{config.KeyDatabasePath, config.KeyLogFile, config.KeyLogLevel} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	root.AddCommand(newMigrateCmd(a), newInfoCmd(a), newChannelCmd(a))
	return root
}

// openStore opens the configured database, applying pending migrations.
func (a *app) openStore(ctx context.Context) (*storage.Store, error) {
	path, err := filex.EnsureParentDir(a.cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	s, err := storage.Open(ctx, path, a.log.With("db", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return s, nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
