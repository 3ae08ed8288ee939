package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestEnsureDirs verifies all gnlex directories are created.
func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	dirs := []string{
		filepath.Join(tmpDir, ".config", "gnlex"),
		filepath.Join(tmpDir, ".cache", "gnlex"),
		filepath.Join(tmpDir, ".local", "share", "gnlex"),
		filepath.Join(tmpDir, ".local", "share", "gnlex", "logs"),
	}
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), dir)
	}

	// second run is a no-op
	require.NoError(t, EnsureDirs(tmpDir))
}

// TestTouchDir_FileInTheWay verifies a file where a directory should be
// gives CreateDirError.
func TestTouchDir_FileInTheWay(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "busy")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	err := touchDir(filepath.Join(path, "sub"))
	assert.Error(t, err)
}

func TestEnsureFiles(t *testing.T) {
	tests := []struct {
		msg     string
		fn      func(string) error
		file    string
		content string
	}{
		{"config", EnsureConfigFile, "config.yaml", ConfigYAML},
		{"grammar", EnsureGrammarFile, "grammar.yaml", GrammarYAML},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, EnsureDirs(tmpDir))
			require.NoError(t, v.fn(tmpDir))

			path := filepath.Join(tmpDir, ".config", "gnlex", v.file)
			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, v.content, string(content))

			// existing file is not overwritten
			require.NoError(t, os.WriteFile(path, []byte("custom: true\n"), 0644))
			require.NoError(t, v.fn(tmpDir))
			content, err = os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "custom: true\n", string(content))
		})
	}
}

// TestEnsureConfigFile_NoDir verifies that a missing config directory is
// reported as CopyFileError.
func TestEnsureConfigFile_NoDir(t *testing.T) {
	err := EnsureConfigFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

// TestEmbeddedYAML verifies embedded files are valid YAML.
func TestEmbeddedYAML(t *testing.T) {
	for _, v := range []string{ConfigYAML, GrammarYAML} {
		var res map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(v), &res))
		assert.NotEmpty(t, res)
	}
}
