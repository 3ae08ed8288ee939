package lexicon_test

import (
	"testing"

	"github.com/gnames/gnlex/pkg/config"
	"github.com/gnames/gnlex/pkg/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckUniqueness(t *testing.T) {
	l, _ := newLexicon(config.LexiconConfig{})
	id, err := l.Insert(lexicon.Entry{Headword: "lum", Translation: "light, lamp"})
	require.NoError(t, err)

	tests := []struct {
		msg      string
		policy   config.LexiconConfig
		entry    lexicon.Entry
		headword bool
		transl   bool
	}{
		{
			msg:      "new headword collides",
			policy:   config.LexiconConfig{HeadwordUnique: true},
			entry:    lexicon.Entry{Headword: "lum"},
			headword: true,
		},
		{
			msg:    "headword policy off",
			policy: config.LexiconConfig{},
			entry:  lexicon.Entry{Headword: "lum", Translation: "lamp"},
		},
		{
			msg:    "stored entry does not collide with itself",
			policy: config.LexiconConfig{HeadwordUnique: true, TranslationUnique: true},
			entry:  lexicon.Entry{ID: id, Headword: "lum", Translation: "light"},
		},
		{
			msg:    "gloss collides",
			policy: config.LexiconConfig{TranslationUnique: true},
			entry:  lexicon.Entry{Headword: "tor", Translation: "tower, lamp"},
			transl: true,
		},
		{
			msg:    "different glosses",
			policy: config.LexiconConfig{TranslationUnique: true},
			entry:  lexicon.Entry{Headword: "tor", Translation: "tower"},
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res := l.Check(v.entry, v.policy)
			assert.Equal(t, v.headword, res.Headword != "")
			assert.Equal(t, v.transl, res.Translation != "")
			assert.Equal(t, !v.headword && !v.transl, res.IsLegal())
		})
	}
}

func TestCheckFields(t *testing.T) {
	l, inf := newLexicon(config.LexiconConfig{})
	policy := config.LexiconConfig{TypeMandatory: true, TranslationMandatory: true}

	res := l.Check(lexicon.Entry{Headword: "  "}, policy)
	assert.False(t, res.IsLegal())
	assert.NotEmpty(t, res.Headword)
	assert.NotEmpty(t, res.Type)
	assert.NotEmpty(t, res.Translation)
	assert.Len(t, res.Messages(), 3)

	res = l.Check(lexicon.Entry{Headword: "lum"}, config.LexiconConfig{})
	assert.True(t, res.IsLegal())
	assert.Empty(t, res.Messages())

	inf.require = "plural form is required"
	res = l.Check(lexicon.Entry{Headword: "lum", TypeID: nounType}, config.LexiconConfig{})
	assert.Equal(t, "plural form is required", res.Definition)
	assert.False(t, res.ProceedOverride)
}

func TestCheckPattern(t *testing.T) {
	l, _ := newLexicon(config.LexiconConfig{})

	res := l.Check(lexicon.Entry{Headword: "toran", TypeID: verbType}, config.LexiconConfig{})
	assert.True(t, res.IsLegal())

	res = l.Check(lexicon.Entry{Headword: "tor", TypeID: verbType}, config.LexiconConfig{})
	assert.False(t, res.IsLegal())
	assert.True(t, res.ProceedOverride)
	assert.Contains(t, res.Definition, "verb")

	res = l.Check(lexicon.Entry{
		Headword:     "tor",
		TypeID:       verbType,
		RuleOverride: true,
	}, config.LexiconConfig{})
	assert.True(t, res.IsLegal())

	res = l.Check(lexicon.Entry{Headword: "tor", TypeID: 42}, config.LexiconConfig{})
	assert.True(t, res.IsLegal(), "unknown type is a soft condition")
	assert.Len(t, res.Warnings, 1)
}

func TestCheckInvalidPattern(t *testing.T) {
	types := stubTypes{3: {ID: 3, Name: "broken", Pattern: "a("}}
	l := lexicon.New(config.LexiconConfig{}, lexicon.OptWordTypes(types))
	res := l.Check(lexicon.Entry{Headword: "a", TypeID: 3}, config.LexiconConfig{})
	assert.Contains(t, res.Definition, "invalid")
	assert.False(t, res.ProceedOverride)
}

func TestIllegal(t *testing.T) {
	l, _ := newLexicon(config.LexiconConfig{HeadwordUnique: true})
	for _, e := range []lexicon.Entry{
		{Headword: "lum"},
		{Headword: "lum"},
		{Headword: "tor"},
		{Headword: ""},
	} {
		_, err := l.Insert(e)
		require.NoError(t, err)
	}
	res := l.Illegal()
	assert.Equal(t, []string{"", "lum", "lum"}, headwords(res))
}

func TestValidationReport(t *testing.T) {
	tests := []struct {
		msg   string
		rep   lexicon.ValidationReport
		legal bool
		lines int
	}{
		{"empty", lexicon.ValidationReport{}, true, 0},
		{"warnings only", lexicon.ValidationReport{Warnings: []string{"w"}}, true, 0},
		{"override only", lexicon.ValidationReport{ProceedOverride: true}, true, 0},
		{"two lines", lexicon.ValidationReport{Headword: "a\nb"}, false, 2},
		{"fields", lexicon.ValidationReport{Type: "t", Definition: "d"}, false, 2},
	}

	for _, v := range tests {
		assert.Equal(t, v.legal, v.rep.IsLegal(), v.msg)
		assert.Len(t, v.rep.Messages(), v.lines, v.msg)
	}
}
