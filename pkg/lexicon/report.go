package lexicon

import (
	"context"
	"maps"
	"slices"
)

// Report holds corpus statistics of a lexicon.
type Report struct {
	// EntryCount is the number of entries.
	EntryCount int `json:"entryCount"`

	// TypeCounts lists entries per word type, ordered by type id.
	TypeCounts []TypeCount `json:"typeCounts"`

	// Alphabet is the configured alphabet followed by other characters found
	// in headwords, in order of first appearance.
	Alphabet []string `json:"alphabet"`

	// Starts, Ends and Chars count headword initial characters, final
	// characters and all characters. Every Alphabet character is present.
	Starts map[string]int `json:"starts"`
	Ends   map[string]int `json:"ends"`
	Chars  map[string]int `json:"chars"`

	// Bigrams and Trigrams count contiguous character sequences.
	Bigrams  map[string]int `json:"bigrams"`
	Trigrams map[string]int `json:"trigrams"`

	// Phonemes are all known phonemes followed by unknown ones found in
	// headwords.
	Phonemes      []string       `json:"phonemes"`
	PhonemeCounts map[string]int `json:"phonemeCounts"`

	// PhonemePairs counts adjacent phonemes, keys are "a b".
	PhonemePairs map[string]int `json:"phonemePairs"`

	LetterMatrix  Matrix `json:"letterMatrix"`
	PhonemeMatrix Matrix `json:"phonemeMatrix"`
}

// TypeCount is the number of entries of a word type.
type TypeCount struct {
	TypeID int    `json:"typeId"`
	Name   string `json:"name,omitempty"`
	Count  int    `json:"count"`
}

// Matrix counts pairs of axis elements. Cells[r][c] is the count of
// Axis[r] followed by Axis[c]. Max is the largest cell.
type Matrix struct {
	Axis  []string `json:"axis"`
	Cells [][]int  `json:"cells"`
	Max   int      `json:"max"`
}

// Tally accumulates statistics. Tallies filled from separate parts of a
// lexicon can be merged.
type Tally struct {
	alphabet []rune
	pron     Pronouncer

	entries  int
	types    map[int]int
	starts   map[string]int
	ends     map[string]int
	chars    map[string]int
	bigrams  map[string]int
	trigrams map[string]int
	phonemes map[string]int
	pairs    map[string]int

	// runes and phons keep unexpected characters and phonemes in order of
	// first appearance.
	runes     []rune
	seenRunes map[rune]struct{}
	phons     []string
	seenPhons map[string]struct{}
}

// NewTally creates an empty Tally. Pronouncer can be nil.
func NewTally(alphabet string, pron Pronouncer) *Tally {
	res := &Tally{
		pron:      pron,
		types:     make(map[int]int),
		starts:    make(map[string]int),
		ends:      make(map[string]int),
		chars:     make(map[string]int),
		bigrams:   make(map[string]int),
		trigrams:  make(map[string]int),
		phonemes:  make(map[string]int),
		pairs:     make(map[string]int),
		seenRunes: make(map[rune]struct{}),
		seenPhons: make(map[string]struct{}),
	}
	for _, r := range alphabet {
		if _, ok := res.seenRunes[r]; ok {
			continue
		}
		res.seenRunes[r] = struct{}{}
		res.alphabet = append(res.alphabet, r)
	}
	if pron != nil {
		for _, p := range pron.AllPhonemes() {
			res.seenPhons[p] = struct{}{}
		}
	}
	return res
}

// Add counts one entry.
func (t *Tally) Add(e Entry) {
	t.entries++
	t.types[e.TypeID]++

	rr := []rune(e.Headword)
	if len(rr) == 0 {
		return
	}
	for _, r := range rr {
		t.seeRune(r)
	}

	t.starts[string(rr[0])]++
	t.ends[string(rr[len(rr)-1])]++
	for i := range rr {
		t.chars[string(rr[i])]++
		if i+2 <= len(rr) {
			t.bigrams[string(rr[i:i+2])]++
		}
		if i+3 <= len(rr) {
			t.trigrams[string(rr[i:i+3])]++
		}
	}

	if t.pron == nil {
		return
	}
	pp := t.pron.Phonemes(e.Headword)
	for i, p := range pp {
		t.seePhoneme(p)
		t.phonemes[p]++
		if i+1 < len(pp) {
			t.pairs[p+" "+pp[i+1]]++
		}
	}
}

func (t *Tally) seeRune(r rune) {
	if _, ok := t.seenRunes[r]; ok {
		return
	}
	t.seenRunes[r] = struct{}{}
	t.runes = append(t.runes, r)
}

func (t *Tally) seePhoneme(p string) {
	if _, ok := t.seenPhons[p]; ok {
		return
	}
	t.seenPhons[p] = struct{}{}
	t.phons = append(t.phons, p)
}

// Merge adds counts of o to t. Characters and phonemes first seen by o are
// placed after the ones already seen by t.
func (t *Tally) Merge(o *Tally) {
	t.entries += o.entries
	for k, v := range o.types {
		t.types[k] += v
	}
	for _, pair := range []struct{ dst, src map[string]int }{
		{t.starts, o.starts},
		{t.ends, o.ends},
		{t.chars, o.chars},
		{t.bigrams, o.bigrams},
		{t.trigrams, o.trigrams},
		{t.phonemes, o.phonemes},
		{t.pairs, o.pairs},
	} {
		for k, v := range pair.src {
			pair.dst[k] += v
		}
	}
	for _, r := range o.runes {
		t.seeRune(r)
	}
	for _, p := range o.phons {
		t.seePhoneme(p)
	}
}

// Report converts the tally to a Report. Word types supply type names and
// can be nil.
func (t *Tally) Report(types WordTypes) *Report {
	res := &Report{
		EntryCount:    t.entries,
		Starts:        make(map[string]int),
		Ends:          make(map[string]int),
		Chars:         make(map[string]int),
		Bigrams:       maps.Clone(t.bigrams),
		Trigrams:      maps.Clone(t.trigrams),
		PhonemeCounts: make(map[string]int),
		PhonemePairs:  maps.Clone(t.pairs),
	}

	ids := make([]int, 0, len(t.types))
	for id := range t.types {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		tc := TypeCount{TypeID: id, Count: t.types[id]}
		if types != nil && id != 0 {
			if wt, ok := types.WordType(id); ok {
				tc.Name = wt.Name
			}
		}
		res.TypeCounts = append(res.TypeCounts, tc)
	}

	for _, r := range slices.Concat(t.alphabet, t.runes) {
		s := string(r)
		res.Alphabet = append(res.Alphabet, s)
		res.Starts[s] = t.starts[s]
		res.Ends[s] = t.ends[s]
		res.Chars[s] = t.chars[s]
	}

	if t.pron != nil {
		res.Phonemes = append(res.Phonemes, t.pron.AllPhonemes()...)
	}
	res.Phonemes = append(res.Phonemes, t.phons...)
	for _, p := range res.Phonemes {
		res.PhonemeCounts[p] = t.phonemes[p]
	}

	res.LetterMatrix = newMatrix(res.Alphabet, func(a, b string) int {
		return t.bigrams[a+b]
	})
	res.PhonemeMatrix = newMatrix(res.Phonemes, func(a, b string) int {
		return t.pairs[a+" "+b]
	})
	return res
}

func newMatrix(axis []string, count func(row, col string) int) Matrix {
	res := Matrix{
		Axis:  axis,
		Cells: make([][]int, len(axis)),
	}
	for r, row := range axis {
		res.Cells[r] = make([]int, len(axis))
		for c, col := range axis {
			n := count(row, col)
			res.Cells[r][c] = n
			res.Max = max(res.Max, n)
		}
	}
	return res
}

// NewTally creates a Tally configured with the alphabet and the pronouncer
// of the lexicon.
func (l *Lexicon) NewTally() *Tally {
	l.mu.Lock()
	defer l.mu.Unlock()
	return NewTally(l.cfg.Alphabet, l.pron)
}

// ReportOf converts a tally to a Report using the word types of the lexicon.
func (l *Lexicon) ReportOf(t *Tally) *Report {
	return t.Report(l.types)
}

// Snapshot returns copies of all entries in natural order for scans that
// run outside of the lexicon lock.
func (l *Lexicon) Snapshot() []Entry {
	return l.All()
}

// BuildReport computes statistics over all entries in one pass. It stops
// with the context error if the context is canceled.
func (l *Lexicon) BuildReport(ctx context.Context) (*Report, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t := NewTally(l.cfg.Alphabet, l.pron)
	for i, e := range l.sorted(l.values()) {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		t.Add(*e)
	}
	return t.Report(l.types), nil
}
