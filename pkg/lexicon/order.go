package lexicon

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// OrderKey is one position of the local-order view: an entry listed under
// one of its glosses.
type OrderKey struct {
	Key   string
	Entry *Entry
}

// alphaOrder compares headwords using the configured alphabet. Runes of the
// alphabet come first in alphabet order, other runes follow by code point.
type alphaOrder struct {
	rank map[rune]int
}

func newAlphaOrder(alphabet string) alphaOrder {
	res := alphaOrder{rank: make(map[rune]int)}
	for _, r := range alphabet {
		if _, ok := res.rank[r]; !ok {
			res.rank[r] = len(res.rank)
		}
	}
	return res
}

func (a alphaOrder) weight(r rune) int {
	if i, ok := a.rank[r]; ok {
		return i
	}
	return len(a.rank) + int(r)
}

func (a alphaOrder) compare(s1, s2 string) int {
	if len(a.rank) == 0 {
		return strings.Compare(s1, s2)
	}
	r1, r2 := []rune(s1), []rune(s2)
	for i := 0; i < len(r1) && i < len(r2); i++ {
		if c := cmp.Compare(a.weight(r1[i]), a.weight(r2[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(r1), len(r2))
}

func newLocalCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

// sorted orders entries in place and returns them. With the local-order
// policy entries are ordered by their first gloss, otherwise by headword.
func (l *Lexicon) sorted(ee []*Entry) []*Entry {
	alpha := newAlphaOrder(l.cfg.Alphabet)
	byHeadword := func(a, b *Entry) int {
		if c := alpha.compare(a.Headword, b.Headword); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	}

	if !l.cfg.LocalOrder {
		slices.SortFunc(ee, byHeadword)
		return ee
	}

	col := newLocalCollator()
	first := func(e *Entry) string {
		if gg := e.Glosses(); len(gg) > 0 {
			return gg[0]
		}
		return ""
	}
	slices.SortFunc(ee, func(a, b *Entry) int {
		if c := col.CompareString(first(a), first(b)); c != 0 {
			return c
		}
		return byHeadword(a, b)
	})
	return ee
}

// LocalOrder lists entries by gloss. An entry with several glosses appears
// once per gloss, every key referring to the same copy of the entry.
// Entries without glosses are left out.
func (l *Lexicon) LocalOrder() []OrderKey {
	l.mu.Lock()
	defer l.mu.Unlock()

	var res []OrderKey
	for _, e := range l.entries {
		gg := e.Glosses()
		if len(gg) == 0 {
			continue
		}
		c := e.Clone()
		for _, g := range gg {
			res = append(res, OrderKey{Key: g, Entry: &c})
		}
	}

	col := newLocalCollator()
	alpha := newAlphaOrder(l.cfg.Alphabet)
	slices.SortFunc(res, func(a, b OrderKey) int {
		if c := col.CompareString(a.Key, b.Key); c != 0 {
			return c
		}
		if c := alpha.compare(a.Entry.Headword, b.Entry.Headword); c != 0 {
			return c
		}
		return cmp.Compare(a.Entry.ID, b.Entry.ID)
	})
	return res
}
