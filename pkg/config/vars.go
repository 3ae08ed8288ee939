package config

import (
	"path/filepath"
)

var (
	// MinVersionLexicon determines the oldest saved lexicon format that
	// GNlex can still load. Newer versions are all supported.
	MinVersionLexicon = "v0.1.0"
	// AppName is used in generating file system paths.
	AppName = "gnlex"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnlex by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gnlex by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// DataDir returns the directory path for lexicon files.
// Returns ~/.local/share/gnlex by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnlex/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnlex/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// GrammarFilePath returns the full path to the grammar.yaml file that
// describes word types, inflections and pronunciation rules.
// Returns ~/.config/gnlex/grammar.yaml by default.
func GrammarFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "grammar.yaml")
}

// SQLitePath returns the lexicon file used by the sqlite backend.
// An explicit Storage.SQLitePath wins over the default location
// ~/.local/share/gnlex/lexicon.sqlite.
func (c *Config) SQLitePath() string {
	if c.Storage.SQLitePath != "" {
		return c.Storage.SQLitePath
	}
	return filepath.Join(DataDir(c.HomeDir), "lexicon.sqlite")
}
