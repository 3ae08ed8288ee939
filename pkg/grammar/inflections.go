package grammar

import (
	"cmp"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gnames/gnlex/pkg/lexicon"
)

// CacheSize is the maximum number of declined forms kept in memory.
const CacheSize = 50_000

// StoredValue is an inflected form entered manually for an entry.
type StoredValue struct {
	EntryID       int    `json:"entryId"`
	CombinationID string `json:"combinationId"`
	Value         string `json:"value"`
}

type formKey struct {
	typeID   int
	combo    string
	headword string
}

type compiledRule struct {
	re      *regexp.Regexp
	replace string
}

// Inflections generates inflected forms from the rules of a Grammar and
// keeps manually stored forms.
type Inflections struct {
	g     *Grammar
	rules map[int]map[string][]compiledRule
	cache *lru.Cache[formKey, string]

	mu     sync.Mutex
	stored map[int]map[string]string
}

// NewInflections compiles rules of the grammar. The grammar must not be
// changed afterwards.
func NewInflections(g *Grammar) (*Inflections, error) {
	res := &Inflections{
		g:      g,
		rules:  make(map[int]map[string][]compiledRule),
		stored: make(map[int]map[string]string),
	}
	cache, err := lru.New[formKey, string](CacheSize)
	if err != nil {
		return nil, err
	}
	res.cache = cache

	for _, t := range g.Types {
		combos := make(map[string][]compiledRule)
		for _, c := range t.Combinations {
			for _, r := range c.Rules {
				re, err := regexp.Compile(r.Match)
				if err != nil {
					return nil, fmt.Errorf("rule of %s/%s: %w", t.Name, c.ID, err)
				}
				combos[c.ID] = append(combos[c.ID], compiledRule{re: re, replace: r.Replace})
			}
		}
		res.rules[t.ID] = combos
	}
	return res, nil
}

// Decline applies the first matching rule of the combination to the
// headword. It returns an empty string when no rule matches.
func (inf *Inflections) Decline(typeID int, combinationID, headword string) string {
	key := formKey{typeID: typeID, combo: combinationID, headword: headword}
	if res, ok := inf.cache.Get(key); ok {
		return res
	}

	var res string
	for _, r := range inf.rules[typeID][combinationID] {
		if r.re.MatchString(headword) {
			res = r.re.ReplaceAllString(headword, r.replace)
			break
		}
	}
	inf.cache.Add(key, res)
	return res
}

// CombinationIDs returns combination ids of the word type in the order of
// the grammar.
func (inf *Inflections) CombinationIDs(typeID int) []string {
	t, ok := inf.g.wordType(typeID)
	if !ok {
		return nil
	}
	res := make([]string, len(t.Combinations))
	for i, c := range t.Combinations {
		res[i] = c.ID
	}
	return res
}

// RequirementsMet lists mandatory forms of the entry that can be neither
// generated nor found among stored forms. Generated forms do not count when
// the entry overrides automatic inflection.
func (inf *Inflections) RequirementsMet(e lexicon.Entry, wt *lexicon.WordType) string {
	if wt == nil {
		return ""
	}
	t, ok := inf.g.wordType(wt.ID)
	if !ok {
		return ""
	}

	stored := inf.StoredValues(e.ID)
	var missing []string
	for _, c := range t.Combinations {
		if !c.Mandatory || strings.TrimSpace(stored[c.ID]) != "" {
			continue
		}
		if !e.AutoInflectionOverride && inf.Decline(t.ID, c.ID, e.Headword) != "" {
			continue
		}
		missing = append(missing, c.ID)
	}
	if len(missing) == 0 {
		return ""
	}
	return fmt.Sprintf("mandatory %s forms are missing: %s",
		t.Name, strings.Join(missing, ", "))
}

// StoredValues returns a copy of manually stored forms of the entry.
func (inf *Inflections) StoredValues(entryID int) map[string]string {
	inf.mu.Lock()
	defer inf.mu.Unlock()
	return maps.Clone(inf.stored[entryID])
}

// SetValue stores a form of the entry. An empty value removes the form.
func (inf *Inflections) SetValue(entryID int, combinationID, value string) {
	inf.mu.Lock()
	defer inf.mu.Unlock()

	if value == "" {
		delete(inf.stored[entryID], combinationID)
		return
	}
	m, ok := inf.stored[entryID]
	if !ok {
		m = make(map[string]string)
		inf.stored[entryID] = m
	}
	m[combinationID] = value
}

// RemoveValues deletes stored forms of the entry.
func (inf *Inflections) RemoveValues(entryID int, combinationIDs []string) {
	inf.mu.Lock()
	defer inf.mu.Unlock()

	m := inf.stored[entryID]
	for _, id := range combinationIDs {
		delete(m, id)
	}
	if len(m) == 0 {
		delete(inf.stored, entryID)
	}
}

// ClearAll deletes every stored form of the entry.
func (inf *Inflections) ClearAll(entryID int) {
	inf.mu.Lock()
	defer inf.mu.Unlock()
	delete(inf.stored, entryID)
}

// Values returns all stored forms sorted by entry and combination.
func (inf *Inflections) Values() []StoredValue {
	inf.mu.Lock()
	defer inf.mu.Unlock()

	var res []StoredValue
	for id, m := range inf.stored {
		for combo, v := range m {
			res = append(res, StoredValue{EntryID: id, CombinationID: combo, Value: v})
		}
	}
	slices.SortFunc(res, func(a, b StoredValue) int {
		if c := cmp.Compare(a.EntryID, b.EntryID); c != 0 {
			return c
		}
		return cmp.Compare(a.CombinationID, b.CombinationID)
	})
	return res
}

// Load replaces all stored forms.
func (inf *Inflections) Load(vv []StoredValue) {
	inf.mu.Lock()
	inf.stored = make(map[int]map[string]string)
	inf.mu.Unlock()

	for _, v := range vv {
		inf.SetValue(v.EntryID, v.CombinationID, v.Value)
	}
}
