package iosqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnlex/internal/iosqlite"
	"github.com/gnames/gnlex/pkg/config"
	"github.com/gnames/gnlex/pkg/errcode"
	"github.com/gnames/gnlex/pkg/grammar"
	"github.com/gnames/gnlex/pkg/lexicon"
	"github.com/gnames/gnlex/pkg/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot() *storage.Snapshot {
	return &storage.Snapshot{
		Meta: storage.Meta{
			LexiconID: uuid.New(),
			Version:   "v0.1.0",
			SavedAt:   time.Date(2026, 5, 4, 12, 30, 0, 0, time.UTC),
		},
		Records: []lexicon.Record{
			{
				ID:            1,
				Headword:      "lumai",
				Translation:   "lights, lamps",
				Definition:    "<b>many</b> lights",
				TypeID:        1,
				Pronunciation: "lumai",
				ClassValues:   []lexicon.ClassValue{{AttributeID: 1, ValueID: 2}},
				ClassTexts:    []lexicon.ClassText{{AttributeID: 2, Text: "poetic"}},
			},
			{
				ID:                     4,
				Headword:               "thalan",
				Translation:            "to go",
				TypeID:                 2,
				Pronunciation:          "TH",
				PronunciationOverride:  true,
				RuleOverride:           true,
				AutoInflectionOverride: true,
			},
		},
		Inflections: []grammar.StoredValue{
			{EntryID: 4, CombinationID: "past", Value: "thalath"},
		},
	}
}

func open(t *testing.T, path string) storage.Storage {
	t.Helper()
	s := iosqlite.New(path)
	require.NoError(t, s.Open(context.Background()))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lexicon.sqlite")

	s := open(t, path)
	res, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, res.IsEmpty())

	snap := snapshot()
	require.NoError(t, s.Save(ctx, snap))
	require.NoError(t, s.Close())

	s = open(t, path)
	res, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, res)
}

func TestSaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := open(t, ":memory:")

	snap := snapshot()
	require.NoError(t, s.Save(ctx, snap))

	snap.Records = snap.Records[:1]
	snap.Inflections = nil
	require.NoError(t, s.Save(ctx, snap))

	res, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, res.Records, 1)
	assert.Empty(t, res.Inflections)
	assert.Equal(t, snap.Meta.LexiconID, res.Meta.LexiconID)
}

func TestSaveRollsBack(t *testing.T) {
	ctx := context.Background()
	s := open(t, ":memory:")

	snap := snapshot()
	require.NoError(t, s.Save(ctx, snap))

	bad := snapshot()
	bad.Records = append(bad.Records, bad.Records[0])
	err := s.Save(ctx, bad)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.StorageSaveError, gnErr.Code)

	res, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.Meta.LexiconID, res.Meta.LexiconID)
	assert.Len(t, res.Records, 2)
}

func TestLoadOldVersion(t *testing.T) {
	ctx := context.Background()
	s := open(t, ":memory:")

	snap := snapshot()
	snap.Meta.Version = "v0.0.1"
	require.NoError(t, s.Save(ctx, snap))

	_, err := s.Load(ctx)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.StorageVersionError, gnErr.Code)
}

func TestNotOpen(t *testing.T) {
	ctx := context.Background()
	s := iosqlite.New(":memory:")

	_, err := s.Load(ctx)
	assert.Error(t, err)
	assert.Error(t, s.Save(ctx, snapshot()))
	assert.NoError(t, s.Close())
}

func TestLexiconRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := open(t, ":memory:")

	l := lexicon.New(config.LexiconConfig{HeadwordUnique: true})
	_, err := l.Insert(lexicon.Entry{Headword: "tor", Translation: "stone"})
	require.NoError(t, err)
	_, err = l.Insert(lexicon.Entry{Headword: "ael", Translation: "water"})
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, storage.NewSnapshot(uuid.Nil, "v0.1.0", l, nil)))

	res, err := s.Load(ctx)
	require.NoError(t, err)

	l2 := lexicon.New(config.LexiconConfig{HeadwordUnique: true})
	require.NoError(t, res.Apply(l2, nil))
	assert.Equal(t, l.Records(), l2.Records())
	assert.True(t, l2.HeadwordExists("tor"))
}
