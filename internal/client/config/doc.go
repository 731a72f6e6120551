// Package config loads runtime configuration for the timetrack maintenance
// tool.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with --config (JSON, YAML or TOML,
//     detected from the extension).
//  3. Environment variables prefixed with TIMETRACK_.
//  4. Command-line flags bound to the viper instance.
//
// # File schema
//
//	{
//	  "database_path": "timetrack.db",
//	  "log_file": "timetrack.log",
//	  "log_level": "debug",
//	  "log_max_size_mb": 10,
//	  "log_max_backups": 3
//	}
//
// Primary API
//
//   - type Config                              database and logging settings
//   - func Load(*viper.Viper, string) (*Config, error)
//   - func (*Config) LoadDefaults()            sets defaults
package config
