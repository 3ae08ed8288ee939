package storage_test

import (
	"testing"

	"github.com/gnames/gnlex/pkg/config"
	"github.com/gnames/gnlex/pkg/grammar"
	"github.com/gnames/gnlex/pkg/lexicon"
	"github.com/gnames/gnlex/pkg/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	g := &grammar.Grammar{
		Types: []grammar.WordType{{ID: 1, Name: "noun"}},
	}
	inf, err := grammar.NewInflections(g)
	require.NoError(t, err)

	l := lexicon.New(config.LexiconConfig{}, lexicon.OptInflector(inf))
	id, err := l.Insert(lexicon.Entry{Headword: "lum", Translation: "light", TypeID: 1})
	require.NoError(t, err)
	inf.SetValue(id, "plural", "lumen")

	s := storage.NewSnapshot(uuid.Nil, "v0.1.0", l, inf)
	assert.False(t, s.IsEmpty())
	assert.Equal(t, "v0.1.0", s.Meta.Version)
	assert.Len(t, s.Records, 1)
	assert.Len(t, s.Inflections, 1)

	l2 := lexicon.New(config.LexiconConfig{})
	inf2, err := grammar.NewInflections(g)
	require.NoError(t, err)
	require.NoError(t, s.Apply(l2, inf2))
	assert.Equal(t, l.All(), l2.All())
	assert.Equal(t, "lumen", inf2.StoredValues(id)["plural"])

	assert.True(t, (&storage.Snapshot{}).IsEmpty())

	keep := uuid.New()
	s = storage.NewSnapshot(keep, "v0.1.0", l, nil)
	assert.Equal(t, keep, s.Meta.LexiconID)
	assert.Empty(t, s.Inflections)
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		msg     string
		version string
		ok      bool
	}{
		{"same", "v0.1.0", true},
		{"newer", "v0.3.2", true},
		{"older", "v0.0.9", false},
		{"garbage", "latest", false},
	}

	for _, v := range tests {
		s := &storage.Snapshot{Meta: storage.Meta{
			LexiconID: uuid.New(),
			Version:   v.version,
		}}
		err := s.CheckVersion("v0.1.0")
		if v.ok {
			assert.NoError(t, err, v.msg)
		} else {
			assert.Error(t, err, v.msg)
		}
	}

	empty := &storage.Snapshot{Meta: storage.Meta{Version: "junk"}}
	assert.NoError(t, empty.CheckVersion("v0.1.0"))
}
