// Package grammar provides the grammar of a constructed language: word
// types with their inflection rules, word classes and pronunciation rules.
// Its types satisfy the collaborator interfaces of the lexicon package.
package grammar

import (
	"fmt"
	"regexp"

	"github.com/gnames/gnlex/pkg/lexicon"
)

// Grammar is the static description of a language.
type Grammar struct {
	// Types are parts of speech.
	Types []WordType `yaml:"types"`

	// Classes are word categories such as gender.
	Classes []Class `yaml:"classes"`

	// Pronunciation lists grapheme rules in order of priority.
	Pronunciation []PhonemeRule `yaml:"pronunciation"`
}

// WordType is a part of speech with its inflections.
type WordType struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`

	// Pattern is a regular expression every headword of the type has to
	// match in full.
	Pattern string `yaml:"pattern"`

	Combinations []Combination `yaml:"combinations"`
}

// Combination is one inflected form of a word type, for example plural.
type Combination struct {
	ID string `yaml:"id"`

	// Mandatory forms must be derivable by rules or stored manually.
	Mandatory bool `yaml:"mandatory"`

	// Rules are tried in order, the first matching rule produces the form.
	Rules []Rule `yaml:"rules"`
}

// Rule rewrites a headword. Match is a regular expression, Replace is an
// expansion template in regexp syntax, for example "${1}s".
type Rule struct {
	Match   string `yaml:"match"`
	Replace string `yaml:"replace"`
}

// Class is a word category. Closed classes have Values, open classes take
// free text.
type Class struct {
	ID       int          `yaml:"id"`
	Name     string       `yaml:"name"`
	FreeText bool         `yaml:"freeText"`
	Values   []ClassValue `yaml:"values"`

	// TypeIDs limits the class to some word types, empty means all types.
	TypeIDs []int `yaml:"typeIds"`
}

// ClassValue is one of the values of a closed class.
type ClassValue struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// PhonemeRule maps graphemes matched by Grapheme to the Phoneme.
type PhonemeRule struct {
	Grapheme string `yaml:"grapheme"`
	Phoneme  string `yaml:"phoneme"`
}

// Validate checks ids for duplicates and all regular expressions for
// syntax errors.
func (g *Grammar) Validate() error {
	types := make(map[int]struct{})
	for _, t := range g.Types {
		if t.ID <= 0 {
			return fmt.Errorf("word type %q: id must be positive", t.Name)
		}
		if _, ok := types[t.ID]; ok {
			return fmt.Errorf("word type id %d is repeated", t.ID)
		}
		types[t.ID] = struct{}{}

		if t.Pattern != "" {
			if _, err := regexp.Compile(t.Pattern); err != nil {
				return fmt.Errorf("pattern of word type %q: %w", t.Name, err)
			}
		}

		combos := make(map[string]struct{})
		for _, c := range t.Combinations {
			if _, ok := combos[c.ID]; ok || c.ID == "" {
				return fmt.Errorf("word type %q: bad combination id %q", t.Name, c.ID)
			}
			combos[c.ID] = struct{}{}
			for _, r := range c.Rules {
				if _, err := regexp.Compile(r.Match); err != nil {
					return fmt.Errorf("rule of %s/%s: %w", t.Name, c.ID, err)
				}
			}
		}
	}

	classes := make(map[int]struct{})
	for _, c := range g.Classes {
		if _, ok := classes[c.ID]; ok {
			return fmt.Errorf("class id %d is repeated", c.ID)
		}
		classes[c.ID] = struct{}{}
	}

	for _, r := range g.Pronunciation {
		if _, err := regexp.Compile(r.Grapheme); err != nil {
			return fmt.Errorf("grapheme %q: %w", r.Grapheme, err)
		}
	}
	return nil
}

func (g *Grammar) wordType(id int) (*WordType, bool) {
	for i := range g.Types {
		if g.Types[i].ID == id {
			return &g.Types[i], true
		}
	}
	return nil, false
}

// WordType returns the lexicon view of the word type.
func (g *Grammar) WordType(id int) (lexicon.WordType, bool) {
	t, ok := g.wordType(id)
	if !ok {
		return lexicon.WordType{}, false
	}
	return lexicon.WordType{ID: t.ID, Name: t.Name, Pattern: t.Pattern}, true
}

// TypeByName finds a word type by its name.
func (g *Grammar) TypeByName(name string) (WordType, bool) {
	for _, t := range g.Types {
		if t.Name == name {
			return t, true
		}
	}
	return WordType{}, false
}

// Class returns the class with the given id.
func (g *Grammar) Class(id int) (Class, bool) {
	for _, c := range g.Classes {
		if c.ID == id {
			return c, true
		}
	}
	return Class{}, false
}
