// Package lexicon implements the collection engine of a constructed
// language dictionary.
//
// The engine keeps entries keyed by stable integer ids together with an
// index of duplicate headwords and glosses, validates entries against the
// lexicon policy, filters and ranks entries (including matching of inflected
// forms), computes corpus statistics and exposes entries as flat records for
// persistence.
//
// Grammar knowledge (word types, inflections, pronunciation) is consumed
// through the WordTypes, Inflector and Pronouncer interfaces.
//
// Every exported method of Lexicon holds a single exclusive lock for its
// whole duration, so a Lexicon can be shared between goroutines.
package lexicon

import (
	"sync"

	"github.com/gnames/gnlex/pkg/config"
)

// Lexicon is the store of entries.
type Lexicon struct {
	mu sync.Mutex

	cfg     config.LexiconConfig
	types   WordTypes
	inflect Inflector
	pron    Pronouncer

	entries map[int]*Entry
	nextID  int
	dups    *dupIndex
	buffer  *Entry
}

// Option configures collaborators of a Lexicon.
type Option func(*Lexicon)

// OptWordTypes sets the word type registry.
func OptWordTypes(wt WordTypes) Option {
	return func(l *Lexicon) {
		if wt != nil {
			l.types = wt
		}
	}
}

// OptInflector sets the inflection engine.
func OptInflector(inf Inflector) Option {
	return func(l *Lexicon) {
		if inf != nil {
			l.inflect = inf
		}
	}
}

// OptPronouncer sets the pronunciation engine. Without a pronouncer
// pronunciations are never computed and statistics have no phonemes.
func OptPronouncer(p Pronouncer) Option {
	return func(l *Lexicon) {
		l.pron = p
	}
}

// New creates an empty Lexicon governed by the given policy.
func New(cfg config.LexiconConfig, opts ...Option) *Lexicon {
	res := &Lexicon{
		cfg:     cfg,
		types:   noTypes{},
		inflect: noInflections{},
		entries: make(map[int]*Entry),
		nextID:  1,
		dups:    newDupIndex(),
		buffer:  &Entry{},
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Policy returns the current lexicon policy.
func (l *Lexicon) Policy() config.LexiconConfig {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cfg
}

// SetPolicy replaces the lexicon policy.
func (l *Lexicon) SetPolicy(cfg config.LexiconConfig) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cfg = cfg
}
