package lexicon

import (
	"cmp"
	"slices"
	"strings"
)

// Suggest finds entries related to the text. Entries with the text as their
// headword come first, then entries whose headword contains the text, then
// entries whose definition contains it, earlier occurrences first. Ties keep
// natural order. Empty text gives no suggestions.
func (l *Lexicon) Suggest(text string) []Entry {
	if text == "" {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	type ranked struct {
		e   *Entry
		pos int
	}

	fold := l.folder()
	word := fold(text)
	def := strings.ToLower(text)

	var equal, contain []*Entry
	var defs []ranked
	for _, e := range l.sorted(l.values()) {
		head := fold(e.Headword)
		switch {
		case head == word:
			equal = append(equal, e)
		case strings.Contains(head, word):
			contain = append(contain, e)
		default:
			d, err := PlainText(e.Definition)
			if err != nil {
				d = e.Definition
			}
			if i := strings.Index(strings.ToLower(d), def); i >= 0 {
				defs = append(defs, ranked{e: e, pos: i})
			}
		}
	}

	slices.SortStableFunc(defs, func(a, b ranked) int {
		return cmp.Compare(a.pos, b.pos)
	})

	res := make([]Entry, 0, len(equal)+len(contain)+len(defs))
	res = append(res, clones(equal)...)
	res = append(res, clones(contain)...)
	for _, v := range defs {
		res = append(res, v.e.Clone())
	}
	return res
}
