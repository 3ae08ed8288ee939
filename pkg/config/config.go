// Package config provides configuration management for GNlex.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Lexicon: type_mandatory, translation_mandatory, headword_unique,
//     translation_unique, ignore_case, alphabet, local_order
//   - Storage: backend, sqlite_path
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNLEX_ prefix with underscores for nesting:
//
//	GNLEX_LEXICON_IGNORE_CASE=true
//	GNLEX_STORAGE_BACKEND=postgres
//	GNLEX_DATABASE_HOST=localhost
//	GNLEX_LOG_LEVEL=info
//	GNLEX_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete GNlex configuration.
type Config struct {
	// Lexicon contains the rules the lexicon engine enforces on entries.
	Lexicon LexiconConfig `mapstructure:"lexicon" yaml:"lexicon"`

	// Storage selects where the lexicon is persisted.
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`

	// Database contains PostgreSQL connection settings. Used only when
	// Storage.Backend is "postgres".
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for corpus statistics.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache, data and logs directories
	// reside. It must be set by CLI during init, there is no default value
	// for it.
	HomeDir string
}

// LexiconConfig holds the lexicon-wide policy flags. The engine treats them
// as read-only state supplied from outside.
type LexiconConfig struct {
	// TypeMandatory requires every entry to have a word type.
	TypeMandatory bool `mapstructure:"type_mandatory" yaml:"type_mandatory"`

	// TranslationMandatory requires every entry to have a translation.
	TranslationMandatory bool `mapstructure:"translation_mandatory" yaml:"translation_mandatory"`

	// HeadwordUnique reports headwords that exist on another entry.
	HeadwordUnique bool `mapstructure:"headword_unique" yaml:"headword_unique"`

	// TranslationUnique reports glosses that exist on another entry.
	TranslationUnique bool `mapstructure:"translation_unique" yaml:"translation_unique"`

	// IgnoreCase makes headword, translation and pronunciation search
	// case-insensitive. Definitions are always compared case-insensitively.
	IgnoreCase bool `mapstructure:"ignore_case" yaml:"ignore_case"`

	// Alphabet is the ordered character set of the constructed language.
	// It is used for sorting headwords and as the axis of statistics.
	Alphabet string `mapstructure:"alphabet" yaml:"alphabet"`

	// LocalOrder orders listings by translation glosses instead of headwords.
	LocalOrder bool `mapstructure:"local_order" yaml:"local_order"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	// Backend is either "sqlite" or "postgres".
	Backend string `mapstructure:"backend" yaml:"backend"`

	// SQLitePath is the lexicon file for the sqlite backend. Empty means
	// the default file in the data directory.
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize defines the number of rows sent per bulk copy.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Lexicon: LexiconConfig{
			IgnoreCase: true,
		},
		Storage: StorageConfig{
			Backend: "sqlite",
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "gnlex",
			SSLMode:   "disable",
			BatchSize: 10_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}
