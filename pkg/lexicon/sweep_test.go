package lexicon_test

import (
	"testing"

	"github.com/gnames/gnlex/pkg/config"
	"github.com/gnames/gnlex/pkg/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepDeprecatedInflections(t *testing.T) {
	l, inf := newLexicon(config.LexiconConfig{})
	cat, err := l.Insert(lexicon.Entry{Headword: "cat", TypeID: nounType})
	require.NoError(t, err)
	dog, err := l.Insert(lexicon.Entry{Headword: "dog", TypeID: nounType})
	require.NoError(t, err)
	run, err := l.Insert(lexicon.Entry{Headword: "toran", TypeID: verbType})
	require.NoError(t, err)

	inf.stored[cat] = map[string]string{"plural": "kitties", "dual": "catta"}
	inf.stored[dog] = map[string]string{"dual": "dogga", "genitive": "dogs'"}
	inf.stored[run] = map[string]string{"dual": "torandu"}

	// grammar change: the noun loses its genitive
	delete(inf.combos[nounType], "genitive")

	n := l.SweepDeprecatedInflections(nounType)
	assert.Equal(t, 3, n)
	assert.Equal(t, map[string]string{"plural": "kitties"}, inf.StoredValues(cat))
	assert.Empty(t, inf.StoredValues(dog))
	assert.Equal(t, map[string]string{"dual": "torandu"}, inf.StoredValues(run),
		"other types are untouched")

	assert.Equal(t, 0, l.SweepDeprecatedInflections(nounType))
}
