package ioreport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/gnames/gnlex/internal/ioreport"
	"github.com/gnames/gnlex/pkg/config"
	"github.com/gnames/gnlex/pkg/grammar"
	"github.com/gnames/gnlex/pkg/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corpus(t *testing.T) *lexicon.Lexicon {
	g := &grammar.Grammar{
		Types: []grammar.WordType{{ID: 1, Name: "noun"}},
		Pronunciation: []grammar.PhonemeRule{
			{Grapheme: "th", Phoneme: "θ"},
			{Grapheme: "a", Phoneme: "a"},
		},
	}
	pron, err := grammar.NewPronunciation(g)
	require.NoError(t, err)

	l := lexicon.New(
		config.LexiconConfig{Alphabet: "aeiklmnrt"},
		lexicon.OptWordTypes(g),
		lexicon.OptPronouncer(pron),
	)
	for _, hw := range []string{
		"lum", "thalan", "tor", "ael", "kirin", "mara", "nethil",
		"ruth", "talos", "ilma", "lumai", "xoth",
	} {
		_, err := l.Insert(lexicon.Entry{Headword: hw, TypeID: 1})
		require.NoError(t, err)
	}
	return l
}

func TestBuild(t *testing.T) {
	l := corpus(t)
	ctx := context.Background()

	want, err := l.BuildReport(ctx)
	require.NoError(t, err)

	for _, jobs := range []int{1, 3, 5, 100} {
		got, err := ioreport.Build(ctx, l, jobs, false)
		require.NoError(t, err)
		assert.Equal(t, want, got, jobs)
	}
}

func TestBuildEmpty(t *testing.T) {
	l := lexicon.New(config.LexiconConfig{})
	rep, err := ioreport.Build(context.Background(), l, 4, false)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.EntryCount)
}

func TestBuildCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ioreport.Build(ctx, corpus(t), 2, false)
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	rep, err := ioreport.Build(context.Background(), corpus(t), 2, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ioreport.Text(&buf, rep, 3))
	txt := buf.String()
	assert.Contains(t, txt, "Entries: 12")
	assert.Contains(t, txt, "noun")
	assert.Contains(t, txt, "Bigrams:")
	assert.Contains(t, txt, "Phoneme pairs:")

	data, err := ioreport.JSON(rep)
	require.NoError(t, err)
	var res lexicon.Report
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Equal(t, rep.EntryCount, res.EntryCount)
	assert.Equal(t, rep.Alphabet, res.Alphabet)
}
