package lexicon_test

import (
	"strings"

	"github.com/gnames/gnlex/pkg/config"
	"github.com/gnames/gnlex/pkg/lexicon"
)

const (
	nounType = 1
	verbType = 2
)

type stubTypes map[int]lexicon.WordType

func (s stubTypes) WordType(id int) (lexicon.WordType, bool) {
	wt, ok := s[id]
	return wt, ok
}

func newTypes() stubTypes {
	return stubTypes{
		nounType: {ID: nounType, Name: "noun"},
		verbType: {ID: verbType, Name: "verb", Pattern: "[a-z]+an"},
	}
}

// stubInflector declines nouns by appending suffixes and keeps stored forms
// in memory.
type stubInflector struct {
	combos  map[int]map[string]string
	stored  map[int]map[string]string
	require string
}

func newInflector() *stubInflector {
	return &stubInflector{
		combos: map[int]map[string]string{
			nounType: {"plural": "s", "genitive": "'s"},
		},
		stored: make(map[int]map[string]string),
	}
}

func (s *stubInflector) Decline(typeID int, combinationID, headword string) string {
	suffix, ok := s.combos[typeID][combinationID]
	if !ok {
		return ""
	}
	return headword + suffix
}

func (s *stubInflector) CombinationIDs(typeID int) []string {
	var res []string
	for k := range s.combos[typeID] {
		res = append(res, k)
	}
	return res
}

func (s *stubInflector) RequirementsMet(lexicon.Entry, *lexicon.WordType) string {
	return s.require
}

func (s *stubInflector) StoredValues(entryID int) map[string]string {
	res := make(map[string]string)
	for k, v := range s.stored[entryID] {
		res[k] = v
	}
	return res
}

func (s *stubInflector) RemoveValues(entryID int, combinationIDs []string) {
	for _, id := range combinationIDs {
		delete(s.stored[entryID], id)
	}
}

func (s *stubInflector) ClearAll(entryID int) {
	delete(s.stored, entryID)
}

// stubPronouncer treats every rune as a phoneme, digraph "th" included.
type stubPronouncer struct{}

func (stubPronouncer) Pronounce(headword string) string {
	return strings.ToUpper(headword)
}

func (stubPronouncer) Phonemes(headword string) []string {
	var res []string
	rr := []rune(headword)
	for i := 0; i < len(rr); i++ {
		if rr[i] == 't' && i+1 < len(rr) && rr[i+1] == 'h' {
			res = append(res, "th")
			i++
			continue
		}
		res = append(res, string(rr[i]))
	}
	return res
}

func (stubPronouncer) AllPhonemes() []string {
	return []string{"a", "th", "k"}
}

func newLexicon(cfg config.LexiconConfig) (*lexicon.Lexicon, *stubInflector) {
	inf := newInflector()
	l := lexicon.New(cfg,
		lexicon.OptWordTypes(newTypes()),
		lexicon.OptInflector(inf),
		lexicon.OptPronouncer(stubPronouncer{}),
	)
	return l, inf
}

func headwords(ee []lexicon.Entry) []string {
	res := make([]string, len(ee))
	for i, e := range ee {
		res[i] = e.Headword
	}
	return res
}
