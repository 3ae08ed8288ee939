// Package iofs prepares directories and default files of gnlex.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/gnlex/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed grammar.yaml
var GrammarYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.DataDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), ConfigYAML)
}

// EnsureGrammarFile writes the example grammar unless a grammar file
// already exists.
func EnsureGrammarFile(homeDir string) error {
	return ensureFile(config.GrammarFilePath(homeDir), GrammarYAML)
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}

	return nil
}
