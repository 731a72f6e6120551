package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds runtime settings of the timetrack maintenance tool.
//
// Fields:
//   - DatabasePath: location of the SQLite database file.
//   - LogFile: rotating log file; empty logs to stderr.
//   - LogLevel: debug, info, warn or error.
//   - LogMaxSizeMB, LogMaxBackups: rotation limits of LogFile.
type Config struct {
	DatabasePath  string
	LogFile       string
	LogLevel      string
	LogMaxSizeMB  int
	LogMaxBackups int
}

// Configuration keys, shared by config files, TIMETRACK_* environment
// variables and command-line flags.
const (
	KeyDatabasePath  = "database_path"
	KeyLogFile       = "log_file"
	KeyLogLevel      = "log_level"
	KeyLogMaxSizeMB  = "log_max_size_mb"
	KeyLogMaxBackups = "log_max_backups"
)

// EnvPrefix prefixes environment variable names, e.g. TIMETRACK_LOG_LEVEL.
const EnvPrefix = "TIMETRACK"

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "timetrack.db"
	c.LogFile = ""
	c.LogLevel = "info"
	c.LogMaxSizeMB = 10
	c.LogMaxBackups = 3
}

// Load builds a Config from v. Sources, lowest precedence first: defaults,
// the config file (JSON, YAML or TOML, skipped when file is empty),
// TIMETRACK_* environment variables and flags already bound to v.
func Load(v *viper.Viper, file string) (*Config, error) {
	var defaults Config
	defaults.LoadDefaults()

	v.SetDefault(KeyDatabasePath, defaults.DatabasePath)
	v.SetDefault(KeyLogFile, defaults.LogFile)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyLogMaxSizeMB, defaults.LogMaxSizeMB)
	v.SetDefault(KeyLogMaxBackups, defaults.LogMaxBackups)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	return &Config{
		DatabasePath:  v.GetString(KeyDatabasePath),
		LogFile:       v.GetString(KeyLogFile),
		LogLevel:      v.GetString(KeyLogLevel),
		LogMaxSizeMB:  v.GetInt(KeyLogMaxSizeMB),
		LogMaxBackups: v.GetInt(KeyLogMaxBackups),
	}, nil
}
