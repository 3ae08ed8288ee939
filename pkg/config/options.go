package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptLexiconTypeMandatory sets whether every entry must have a word type.
func OptLexiconTypeMandatory(b bool) Option {
	return func(c *Config) {
		c.Lexicon.TypeMandatory = b
	}
}

// OptLexiconTranslationMandatory sets whether every entry must have a
// translation.
func OptLexiconTranslationMandatory(b bool) Option {
	return func(c *Config) {
		c.Lexicon.TranslationMandatory = b
	}
}

// OptLexiconHeadwordUnique sets whether headwords must be unique.
func OptLexiconHeadwordUnique(b bool) Option {
	return func(c *Config) {
		c.Lexicon.HeadwordUnique = b
	}
}

// OptLexiconTranslationUnique sets whether translation glosses must be
// unique.
func OptLexiconTranslationUnique(b bool) Option {
	return func(c *Config) {
		c.Lexicon.TranslationUnique = b
	}
}

// OptLexiconIgnoreCase sets case-insensitive search.
func OptLexiconIgnoreCase(b bool) Option {
	return func(c *Config) {
		c.Lexicon.IgnoreCase = b
	}
}

// OptLexiconAlphabet sets the ordered alphabet of the language.
// Whitespace inside the string is removed, duplicate characters are kept
// only at their first position.
func OptLexiconAlphabet(s string) Option {
	s = normalizeAlphabet(s)
	return func(c *Config) {
		if isValidString("Lexicon Alphabet", s) {
			c.Lexicon.Alphabet = s
		}
	}
}

// OptLexiconLocalOrder sets ordering of listings by translation glosses.
func OptLexiconLocalOrder(b bool) Option {
	return func(c *Config) {
		c.Lexicon.LocalOrder = b
	}
}

// OptStorageBackend sets the persistence backend.
// Valid values: "sqlite", "postgres".
func OptStorageBackend(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Storage.Backend", s) {
			c.Storage.Backend = s
		}
	}
}

// OptStorageSQLitePath sets the lexicon file used by the sqlite backend.
func OptStorageSQLitePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Storage SQLite Path", s) {
			c.Storage.SQLitePath = s
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of rows per bulk copy.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for statistics.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, data and log
// locations. Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

func normalizeAlphabet(s string) string {
	var sb strings.Builder
	seen := make(map[rune]struct{})
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == ',' {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		sb.WriteRune(r)
	}
	return sb.String()
}
