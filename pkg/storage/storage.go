// Package storage defines how a lexicon is persisted. Backends live in
// internal packages and save and load whole snapshots.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/gnames/gnlex/pkg/grammar"
	"github.com/gnames/gnlex/pkg/lexicon"
	"github.com/gnames/gnlib"
	"github.com/google/uuid"
)

// Storage persists lexicon snapshots.
type Storage interface {
	// Open prepares the backend, creating its schema if needed.
	Open(ctx context.Context) error

	// Close releases resources of the backend.
	Close() error

	// Save replaces the stored lexicon with the snapshot. Either the whole
	// snapshot is written or nothing changes.
	Save(ctx context.Context, s *Snapshot) error

	// Load reads the stored lexicon. An empty backend gives a snapshot with
	// a zero LexiconID and no records.
	Load(ctx context.Context) (*Snapshot, error)
}

// Meta describes a stored lexicon.
type Meta struct {
	// LexiconID identifies the lexicon across saves.
	LexiconID uuid.UUID `json:"lexiconId"`

	// Version of gnlex that saved the lexicon.
	Version string `json:"version"`

	SavedAt time.Time `json:"savedAt"`
}

// Snapshot is the complete persisted state of a lexicon.
type Snapshot struct {
	Meta        Meta                  `json:"meta"`
	Records     []lexicon.Record      `json:"records"`
	Inflections []grammar.StoredValue `json:"inflections,omitempty"`
}

// IsEmpty is true for a snapshot of a backend that never saved anything.
func (s *Snapshot) IsEmpty() bool {
	return s.Meta.LexiconID == uuid.Nil
}

// NewSnapshot captures the lexicon and its stored inflected forms. A new
// LexiconID is generated if id is zero.
func NewSnapshot(
	id uuid.UUID,
	version string,
	l *lexicon.Lexicon,
	inf *grammar.Inflections,
) *Snapshot {
	if id == uuid.Nil {
		id = uuid.New()
	}
	res := &Snapshot{
		Meta: Meta{
			LexiconID: id,
			Version:   version,
			SavedAt:   time.Now().UTC(),
		},
		Records: l.Records(),
	}
	if inf != nil {
		res.Inflections = inf.Values()
	}
	return res
}

// Apply restores records into an empty lexicon and stored forms into the
// inflection engine.
func (s *Snapshot) Apply(l *lexicon.Lexicon, inf *grammar.Inflections) error {
	if err := l.Restore(s.Records); err != nil {
		return err
	}
	if inf != nil {
		inf.Load(s.Inflections)
	}
	return nil
}

// CheckVersion rejects snapshots saved by a gnlex version older than
// minVersion. Empty snapshots pass.
func (s *Snapshot) CheckVersion(minVersion string) error {
	if s.IsEmpty() {
		return nil
	}
	if !gnlib.IsVersion(s.Meta.Version) {
		return fmt.Errorf("%q is not a version", s.Meta.Version)
	}
	if gnlib.CmpVersion(s.Meta.Version, minVersion) < 0 {
		return fmt.Errorf("version %s is older than %s",
			s.Meta.Version, minVersion)
	}
	return nil
}
