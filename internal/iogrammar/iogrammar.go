// Package iogrammar reads the grammar of a language from a YAML file and
// builds inflection and pronunciation engines from it.
package iogrammar

import (
	"log/slog"
	"os"

	"github.com/gnames/gnlex/pkg/grammar"
	"gopkg.in/yaml.v3"
)

// Engines are the grammar collaborators of a lexicon.
type Engines struct {
	Grammar       *grammar.Grammar
	Inflections   *grammar.Inflections
	Pronunciation *grammar.Pronunciation
}

// Load reads and validates the grammar file.
func Load(path string) (*Engines, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return Parse(path, data)
}

// Parse builds engines from YAML data. The path is used in error messages
// only.
func Parse(path string, data []byte) (*Engines, error) {
	var g grammar.Grammar
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, ParseError(path, err)
	}
	if err := g.Validate(); err != nil {
		return nil, PatternError(path, err)
	}

	inf, err := grammar.NewInflections(&g)
	if err != nil {
		return nil, PatternError(path, err)
	}
	pron, err := grammar.NewPronunciation(&g)
	if err != nil {
		return nil, PatternError(path, err)
	}

	slog.Info("Loaded grammar",
		"path", path,
		"types", len(g.Types),
		"classes", len(g.Classes),
		"phoneme_rules", len(g.Pronunciation),
	)
	return &Engines{Grammar: &g, Inflections: inf, Pronunciation: pron}, nil
}
