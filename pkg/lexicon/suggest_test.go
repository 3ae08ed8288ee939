package lexicon_test

import (
	"testing"

	"github.com/gnames/gnlex/pkg/config"
	"github.com/gnames/gnlex/pkg/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	l, _ := newLexicon(config.LexiconConfig{IgnoreCase: true})
	for _, e := range []lexicon.Entry{
		{Headword: "zed", Definition: "a word that ends with <i>Lum</i>"},
		{Headword: "alumi", Definition: "has lum"},
		{Headword: "kar", Definition: "Lum at the start"},
		{Headword: "Lum", Definition: "light"},
		{Headword: "tor", Definition: "tower"},
	} {
		_, err := l.Insert(e)
		require.NoError(t, err)
	}

	assert.Empty(t, l.Suggest(""))

	res := l.Suggest("lum")
	assert.Equal(t, []string{"Lum", "alumi", "kar", "zed"}, headwords(res))

	assert.Empty(t, l.Suggest("xyz"))
}

func TestSuggestCaseSensitive(t *testing.T) {
	l, _ := newLexicon(config.LexiconConfig{})
	for _, e := range []lexicon.Entry{
		{Headword: "Lum"},
		{Headword: "lum"},
		{Headword: "tor", Definition: "LUM"},
	} {
		_, err := l.Insert(e)
		require.NoError(t, err)
	}

	res := l.Suggest("lum")
	assert.Equal(t, []string{"lum", "tor"}, headwords(res),
		"headwords respect case, definitions never do")
}
