package grammar_test

import (
	"testing"

	"github.com/gnames/gnlex/pkg/config"
	"github.com/gnames/gnlex/pkg/grammar"
	"github.com/gnames/gnlex/pkg/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGrammar() *grammar.Grammar {
	return &grammar.Grammar{
		Types: []grammar.WordType{
			{
				ID:   1,
				Name: "noun",
				Combinations: []grammar.Combination{
					{
						ID:        "plural",
						Mandatory: true,
						Rules: []grammar.Rule{
							{Match: "^(.*)a$", Replace: "${1}ai"},
							{Match: "^(.*)$", Replace: "${1}s"},
						},
					},
					{
						ID: "dual",
						Rules: []grammar.Rule{
							{Match: "^(.*[^a])$", Replace: "${1}du"},
						},
					},
				},
			},
			{
				ID:      2,
				Name:    "verb",
				Pattern: "[a-z]+an",
				Combinations: []grammar.Combination{
					{ID: "past", Mandatory: true},
				},
			},
		},
		Classes: []grammar.Class{
			{ID: 1, Name: "gender", Values: []grammar.ClassValue{{ID: 1, Name: "animate"}}},
			{ID: 2, Name: "note", FreeText: true},
		},
		Pronunciation: []grammar.PhonemeRule{
			{Grapheme: "th", Phoneme: "θ"},
			{Grapheme: "a", Phoneme: "a"},
			{Grapheme: "c|k", Phoneme: "k"},
			{Grapheme: "t", Phoneme: "t"},
		},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, testGrammar().Validate())

	tests := []struct {
		msg    string
		change func(*grammar.Grammar)
	}{
		{"repeated type", func(g *grammar.Grammar) { g.Types[1].ID = 1 }},
		{"zero type id", func(g *grammar.Grammar) { g.Types[0].ID = 0 }},
		{"bad pattern", func(g *grammar.Grammar) { g.Types[1].Pattern = "(" }},
		{"bad rule", func(g *grammar.Grammar) { g.Types[0].Combinations[0].Rules[0].Match = "[" }},
		{"repeated combination", func(g *grammar.Grammar) { g.Types[0].Combinations[1].ID = "plural" }},
		{"repeated class", func(g *grammar.Grammar) { g.Classes[1].ID = 1 }},
		{"bad grapheme", func(g *grammar.Grammar) { g.Pronunciation[0].Grapheme = "(" }},
	}

	for _, v := range tests {
		g := testGrammar()
		v.change(g)
		assert.Error(t, g.Validate(), v.msg)
	}
}

func TestWordType(t *testing.T) {
	g := testGrammar()
	wt, ok := g.WordType(2)
	require.True(t, ok)
	assert.Equal(t, lexicon.WordType{ID: 2, Name: "verb", Pattern: "[a-z]+an"}, wt)

	_, ok = g.WordType(5)
	assert.False(t, ok)

	noun, ok := g.TypeByName("noun")
	require.True(t, ok)
	assert.Equal(t, 1, noun.ID)

	c, ok := g.Class(2)
	require.True(t, ok)
	assert.True(t, c.FreeText)
}

func TestDecline(t *testing.T) {
	inf, err := grammar.NewInflections(testGrammar())
	require.NoError(t, err)

	tests := []struct {
		msg      string
		typeID   int
		combo    string
		headword string
		res      string
	}{
		{"first rule", 1, "plural", "kata", "katai"},
		{"second rule", 1, "plural", "tor", "tors"},
		{"no rule matches", 1, "dual", "kata", ""},
		{"dual", 1, "dual", "tor", "tordu"},
		{"unknown combination", 1, "genitive", "tor", ""},
		{"no rules", 2, "past", "toran", ""},
	}

	for _, v := range tests {
		res := inf.Decline(v.typeID, v.combo, v.headword)
		assert.Equal(t, v.res, res, v.msg)
		// cached result is the same
		assert.Equal(t, v.res, inf.Decline(v.typeID, v.combo, v.headword), v.msg)
	}

	assert.Equal(t, []string{"plural", "dual"}, inf.CombinationIDs(1))
	assert.Nil(t, inf.CombinationIDs(9))
}

func TestRequirementsMet(t *testing.T) {
	g := testGrammar()
	inf, err := grammar.NewInflections(g)
	require.NoError(t, err)
	noun, _ := g.WordType(1)
	verb, _ := g.WordType(2)

	e := lexicon.Entry{ID: 1, Headword: "tor", TypeID: 1}
	assert.Empty(t, inf.RequirementsMet(e, &noun))
	assert.Empty(t, inf.RequirementsMet(e, nil))

	e.AutoInflectionOverride = true
	assert.Contains(t, inf.RequirementsMet(e, &noun), "plural")
	inf.SetValue(1, "plural", "torren")
	assert.Empty(t, inf.RequirementsMet(e, &noun))

	v := lexicon.Entry{ID: 2, Headword: "toran", TypeID: 2}
	assert.Contains(t, inf.RequirementsMet(v, &verb), "past")
}

func TestStoredValues(t *testing.T) {
	inf, err := grammar.NewInflections(testGrammar())
	require.NoError(t, err)

	inf.SetValue(1, "plural", "tors")
	inf.SetValue(1, "dual", "tordu")
	inf.SetValue(2, "plural", "katai")

	vals := inf.StoredValues(1)
	assert.Equal(t, map[string]string{"plural": "tors", "dual": "tordu"}, vals)
	vals["plural"] = "changed"
	assert.Equal(t, "tors", inf.StoredValues(1)["plural"], "copy is returned")

	inf.RemoveValues(1, []string{"dual"})
	assert.Equal(t, map[string]string{"plural": "tors"}, inf.StoredValues(1))

	all := inf.Values()
	assert.Equal(t, []grammar.StoredValue{
		{EntryID: 1, CombinationID: "plural", Value: "tors"},
		{EntryID: 2, CombinationID: "plural", Value: "katai"},
	}, all)

	inf.ClearAll(2)
	assert.Empty(t, inf.StoredValues(2))

	inf.Load(all)
	assert.Equal(t, all, inf.Values())
}

func TestPronunciation(t *testing.T) {
	p, err := grammar.NewPronunciation(testGrammar())
	require.NoError(t, err)

	assert.Equal(t, []string{"θ", "a", "k", "a"}, p.Phonemes("thaca"))
	assert.Equal(t, []string{"t", "o", "k"}, p.Phonemes("tok"))
	assert.Empty(t, p.Phonemes(""))
	assert.Equal(t, "θaka", p.Pronounce("thaca"))
	assert.Equal(t, []string{"θ", "a", "k", "t"}, p.AllPhonemes())
}

// TestWithLexicon runs the lexicon engine on the reference grammar.
func TestWithLexicon(t *testing.T) {
	g := testGrammar()
	inf, err := grammar.NewInflections(g)
	require.NoError(t, err)
	p, err := grammar.NewPronunciation(g)
	require.NoError(t, err)

	l := lexicon.New(config.LexiconConfig{IgnoreCase: true},
		lexicon.OptWordTypes(g),
		lexicon.OptInflector(inf),
		lexicon.OptPronouncer(p),
	)
	id, err := l.Insert(lexicon.Entry{Headword: "kata", TypeID: 1})
	require.NoError(t, err)

	res, err := l.Filter(lexicon.Entry{Headword: "katai"})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, id, res[0].ID)
	assert.Equal(t, "kata", res[0].Pronunciation)

	inf.SetValue(id, "genitive", "katas")
	assert.Equal(t, 1, l.SweepDeprecatedInflections(1))
	assert.Empty(t, inf.StoredValues(id))
}
