package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gnlex/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnlex"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "gnlex"),
		},
		{
			msg: "data dir",
			fn:  config.DataDir,
			res: filepath.Join(tempHome, ".local", "share", "gnlex"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnlex", "logs"),
		},
		{
			msg: "grammar file",
			fn:  config.GrammarFilePath,
			res: filepath.Join(tempHome, ".config", "gnlex", "grammar.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Lexicon policy defaults
		assert.False(t, cfg.Lexicon.TypeMandatory)
		assert.False(t, cfg.Lexicon.TranslationMandatory)
		assert.False(t, cfg.Lexicon.HeadwordUnique)
		assert.False(t, cfg.Lexicon.TranslationUnique)
		assert.True(t, cfg.Lexicon.IgnoreCase)
		assert.Empty(t, cfg.Lexicon.Alphabet)

		assert.Equal(t, "sqlite", cfg.Storage.Backend)

		// Database defaults
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "gnlex", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 10_000, cfg.Database.BatchSize)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// JobsNumber defaults to CPU count
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestOptionLexiconAlphabet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets alphabet",
			input:    "aeioulmn",
			expected: "aeioulmn",
		},
		{
			name:     "removes separators",
			input:    "a, e, i o\tu",
			expected: "aeiou",
		},
		{
			name:     "keeps first occurrence of duplicates",
			input:    "abca",
			expected: "abc",
		},
		{
			name:     "keeps multibyte characters",
			input:    "aäöþ",
			expected: "aäöþ",
		},
		{
			name:     "ignores empty string",
			input:    " , ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLexiconAlphabet(tt.input)})
			assert.Equal(t, tt.expected, cfg.Lexicon.Alphabet)
		})
	}
}

func TestOptionLexiconFlags(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptLexiconTypeMandatory(true),
		config.OptLexiconTranslationMandatory(true),
		config.OptLexiconHeadwordUnique(true),
		config.OptLexiconTranslationUnique(true),
		config.OptLexiconIgnoreCase(false),
		config.OptLexiconLocalOrder(true),
	})

	assert.True(t, cfg.Lexicon.TypeMandatory)
	assert.True(t, cfg.Lexicon.TranslationMandatory)
	assert.True(t, cfg.Lexicon.HeadwordUnique)
	assert.True(t, cfg.Lexicon.TranslationUnique)
	assert.False(t, cfg.Lexicon.IgnoreCase)
	assert.True(t, cfg.Lexicon.LocalOrder)
}

func TestOptionStorageBackend(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets postgres",
			input:    "postgres",
			expected: "postgres",
		},
		{
			name:     "normalizes to lowercase",
			input:    " SQLite ",
			expected: "sqlite",
		},
		{
			name:     "ignores invalid value",
			input:    "mysql",
			expected: "sqlite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptStorageBackend(tt.input)})
			assert.Equal(t, tt.expected, cfg.Storage.Backend)
		})
	}
}

func TestOptionDatabaseHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid host",
			input:    "db.example.com",
			expected: "db.example.com",
		},
		{
			name:     "trims whitespace",
			input:    "  db.example.com  ",
			expected: "db.example.com",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "localhost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseHost(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Host)
		})
	}
}

func TestOptionDatabasePort(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"sets valid port", 6543, 6543},
		{"ignores zero", 0, 5432},
		{"ignores negative", -100, 5432},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabasePort(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Port)
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets debug", "debug", "debug"},
		{"sets warn", "warn", "warn"},
		{"normalizes to lowercase", "ERROR", "error"},
		{"ignores invalid value", "trace", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogDestination(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptLogDestination("STDERR")})
	assert.Equal(t, "stderr", cfg.Log.Destination)

	cfg.Update([]config.Option{config.OptLogDestination("syslog")})
	assert.Equal(t, "stderr", cfg.Log.Destination)
}

func TestSQLitePath(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/user")})
	assert.Equal(t,
		filepath.Join("/home/user", ".local", "share", "gnlex", "lexicon.sqlite"),
		cfg.SQLitePath(),
	)

	cfg.Update([]config.Option{config.OptStorageSQLitePath("/tmp/conlang.sqlite")})
	assert.Equal(t, "/tmp/conlang.sqlite", cfg.SQLitePath())
}

func TestToOptionsRoundTrip(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptLexiconAlphabet("aeiklmnostu"),
		config.OptLexiconHeadwordUnique(true),
		config.OptLexiconIgnoreCase(false),
		config.OptStorageBackend("postgres"),
		config.OptDatabaseHost("pg.local"),
		config.OptLogFormat("text"),
		config.OptJobsNumber(3),
		config.OptHomeDir("/home/user"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, src.Lexicon, dst.Lexicon)
	assert.Equal(t, src.Storage, dst.Storage)
	assert.Equal(t, src.Database, dst.Database)
	assert.Equal(t, src.Log, dst.Log)
	assert.Equal(t, 3, dst.JobsNumber)
	assert.Empty(t, dst.HomeDir, "HomeDir is runtime-only")
}
