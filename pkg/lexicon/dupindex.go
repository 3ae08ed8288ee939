package lexicon

// Field selects one of the duplicate-tracking maps.
type Field int

const (
	// HeadwordField counts exact headword strings.
	HeadwordField Field = iota
	// TranslationField counts trimmed translation glosses.
	TranslationField
)

// dupIndex keeps frequencies of headwords and glosses of live entries.
// A value disappears from its map when its count drops to zero.
type dupIndex struct {
	headwords    map[string]int
	translations map[string]int
}

func newDupIndex() *dupIndex {
	return &dupIndex{
		headwords:    make(map[string]int),
		translations: make(map[string]int),
	}
}

func (d *dupIndex) table(f Field) map[string]int {
	if f == TranslationField {
		return d.translations
	}
	return d.headwords
}

// bump adds delta to the count of value in the map of field f.
func (d *dupIndex) bump(f Field, value string, delta int) {
	m := d.table(f)
	n := m[value] + delta
	if n <= 0 {
		delete(m, value)
		return
	}
	m[value] = n
}

// add registers (delta 1) or unregisters (delta -1) every counted value of
// the entry. A gloss repeated within one translation counts once.
func (d *dupIndex) add(e *Entry, delta int) {
	d.bump(HeadwordField, e.Headword, delta)
	seen := make(map[string]struct{})
	for _, g := range e.Glosses() {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		d.bump(TranslationField, g, delta)
	}
}

// rebalance moves the counts of an entry from its old state to its new
// state. Old values are decremented first because both states can share
// values with each other and with other entries.
func (d *dupIndex) rebalance(old, cur *Entry) {
	d.add(old, -1)
	d.add(cur, 1)
}

func (d *dupIndex) count(f Field, value string) int {
	return d.table(f)[value]
}

func (d *dupIndex) multiple(f Field, value string) bool {
	return d.count(f, value) > 1
}

func (d *dupIndex) atLeastOnce(f Field, value string) bool {
	return d.count(f, value) > 0
}

// CountOf returns how many live entries hold the value in the given field.
// For TranslationField the value is a single gloss.
func (l *Lexicon) CountOf(f Field, value string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dups.count(f, value)
}

// HeadwordExists reports whether any entry has the headword.
func (l *Lexicon) HeadwordExists(headword string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dups.atLeastOnce(HeadwordField, headword)
}

// TranslationExists reports whether any entry has the gloss.
func (l *Lexicon) TranslationExists(gloss string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dups.atLeastOnce(TranslationField, gloss)
}

// HeadwordMultiple reports whether more than one entry has the headword.
func (l *Lexicon) HeadwordMultiple(headword string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dups.multiple(HeadwordField, headword)
}

// TranslationMultiple reports whether more than one entry has the gloss.
func (l *Lexicon) TranslationMultiple(gloss string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dups.multiple(TranslationField, gloss)
}
