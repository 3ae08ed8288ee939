package lexicon_test

import (
	"testing"

	"github.com/gnames/gnlex/pkg/config"
	"github.com/gnames/gnlex/pkg/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaturalOrder(t *testing.T) {
	words := []string{"ba", "ab", "ça", "b", "ac", "ab"}

	tests := []struct {
		msg      string
		alphabet string
		res      []string
	}{
		{"string order", "", []string{"ab", "ab", "ac", "b", "ba", "ça"}},
		{"alphabet order", "çcba", []string{"ça", "ca", "b", "ba", "ac", "ab", "ab"}},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			l := lexicon.New(config.LexiconConfig{Alphabet: v.alphabet})
			ww := words
			if v.alphabet != "" {
				ww = append([]string{"ca"}, words...)
			}
			for _, w := range ww {
				_, err := l.Insert(lexicon.Entry{Headword: w})
				require.NoError(t, err)
			}
			assert.Equal(t, v.res, headwords(l.All()))
		})
	}
}

func TestUnknownRunesLast(t *testing.T) {
	l := lexicon.New(config.LexiconConfig{Alphabet: "zy"})
	for _, w := range []string{"a", "y", "z", "b"} {
		_, err := l.Insert(lexicon.Entry{Headword: w})
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"z", "y", "a", "b"}, headwords(l.All()))
}

func TestLocalOrder(t *testing.T) {
	l := lexicon.New(config.LexiconConfig{})
	for _, e := range []lexicon.Entry{
		{Headword: "lum", Translation: "light, Lamp"},
		{Headword: "tor", Translation: "tower"},
		{Headword: "vel", Translation: "apple"},
		{Headword: "kar"},
	} {
		_, err := l.Insert(e)
		require.NoError(t, err)
	}

	keys := l.LocalOrder()
	require.Len(t, keys, 4)
	var got []string
	for _, k := range keys {
		got = append(got, k.Key+":"+k.Entry.Headword)
	}
	assert.Equal(t, []string{"apple:vel", "Lamp:lum", "light:lum", "tower:tor"}, got)
	assert.Same(t, keys[1].Entry, keys[2].Entry, "one copy per entry")

	l.SetPolicy(config.LexiconConfig{LocalOrder: true})
	assert.Equal(t, []string{"kar", "vel", "lum", "tor"}, headwords(l.All()))
}
