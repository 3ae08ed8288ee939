package grammar

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

type phonemeMatcher struct {
	re      *regexp.Regexp
	phoneme string
}

// Pronunciation turns headwords into phonemes with ordered grapheme rules.
type Pronunciation struct {
	rules []phonemeMatcher
	all   []string
}

// NewPronunciation compiles pronunciation rules of the grammar.
func NewPronunciation(g *Grammar) (*Pronunciation, error) {
	res := &Pronunciation{}
	seen := make(map[string]struct{})
	for _, r := range g.Pronunciation {
		re, err := regexp.Compile("^(?:" + r.Grapheme + ")")
		if err != nil {
			return nil, fmt.Errorf("grapheme %q: %w", r.Grapheme, err)
		}
		res.rules = append(res.rules, phonemeMatcher{re: re, phoneme: r.Phoneme})
		if _, ok := seen[r.Phoneme]; !ok {
			seen[r.Phoneme] = struct{}{}
			res.all = append(res.all, r.Phoneme)
		}
	}
	return res, nil
}

// Phonemes splits the headword from left to right. At every position the
// first rule that matches a non-empty prefix wins. A character no rule
// matches becomes a phoneme of its own.
func (p *Pronunciation) Phonemes(headword string) []string {
	var res []string
	rest := headword
	for rest != "" {
		n, ph := p.next(rest)
		res = append(res, ph)
		rest = rest[n:]
	}
	return res
}

func (p *Pronunciation) next(s string) (int, string) {
	for _, r := range p.rules {
		if loc := r.re.FindStringIndex(s); loc != nil && loc[1] > 0 {
			return loc[1], r.phoneme
		}
	}
	_, size := utf8.DecodeRuneInString(s)
	return size, s[:size]
}

// Pronounce returns the phonemes of the headword joined together.
func (p *Pronunciation) Pronounce(headword string) string {
	return strings.Join(p.Phonemes(headword), "")
}

// AllPhonemes returns distinct phonemes of the rules in rule order.
func (p *Pronunciation) AllPhonemes() []string {
	return p.all
}
