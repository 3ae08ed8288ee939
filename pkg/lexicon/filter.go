package lexicon

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// headwordTerm is one alternative of a headword filter. The term matches
// either as a whole-string regular expression or as a literal prefix.
type headwordTerm struct {
	raw string
	re  *regexp.Regexp
}

func newHeadwordTerm(term string) (headwordTerm, error) {
	re, err := regexp.Compile("^(?:" + term + ")$")
	if err != nil {
		return headwordTerm{}, err
	}
	return headwordTerm{raw: term, re: re}, nil
}

func (h headwordTerm) match(s string) bool {
	return h.re.MatchString(s) || strings.HasPrefix(s, h.raw)
}

// PlainText returns the text content of a definition with markup removed.
func PlainText(s string) (string, error) {
	if !strings.ContainsAny(s, "<&") {
		return s, nil
	}
	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			return sb.String(), nil
		case html.TextToken:
			sb.Write(z.Text())
		}
	}
}

// Filter returns entries that satisfy every non-empty field of the query.
// A field holds comma-separated alternatives, any of which may match.
//
//   - Headword terms are matched by MatchHeadword.
//   - Translation and pronunciation terms match as substrings.
//   - Definition terms match as substrings of the plain text of the
//     definition, always ignoring case.
//   - A non-zero TypeID must be equal to the type of the entry.
//
// Results come in natural order. Any failure returns *FilterError and no
// results.
func (l *Lexicon) Filter(q Entry) ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fold := l.folder()
	defTerms := splitTerms(strings.ToLower(q.Definition))
	trTerms := splitTerms(fold(q.Translation))
	prTerms := splitTerms(fold(q.Pronunciation))

	var hwTerms []headwordTerm
	for _, t := range splitTerms(fold(q.Headword)) {
		ht, err := newHeadwordTerm(t)
		if err != nil {
			return nil, &FilterError{
				Err: fmt.Errorf("headword term %q: %w", t, err),
			}
		}
		hwTerms = append(hwTerms, ht)
	}

	var res []*Entry
	for _, e := range l.entries {
		if q.TypeID != 0 && e.TypeID != q.TypeID {
			continue
		}

		if len(defTerms) > 0 {
			def, err := PlainText(e.Definition)
			if err != nil {
				return nil, &FilterError{
					Err: fmt.Errorf("definition of entry %d: %w", e.ID, err),
				}
			}
			if !containsAny(strings.ToLower(def), defTerms) {
				continue
			}
		}

		if len(trTerms) > 0 && !containsAny(fold(e.Translation), trTerms) {
			continue
		}

		if len(prTerms) > 0 && !containsAny(fold(e.Pronunciation), prTerms) {
			continue
		}

		if len(hwTerms) > 0 && !l.matchAnyHeadword(hwTerms, e) {
			continue
		}

		res = append(res, e)
	}
	return clones(l.sorted(res)), nil
}

// MatchHeadword reports whether the term matches the headword of the entry
// or one of its inflected forms. A term matches a form if the whole form
// matches the term as a regular expression, or if the form starts with the
// term. An empty term matches everything.
func (l *Lexicon) MatchHeadword(term string, e Entry) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fold := l.folder()
	term = fold(strings.TrimSpace(term))
	if term == "" {
		return true, nil
	}
	ht, err := newHeadwordTerm(term)
	if err != nil {
		return false, &FilterError{
			Err: fmt.Errorf("headword term %q: %w", term, err),
		}
	}
	return l.matchAnyHeadword([]headwordTerm{ht}, &e), nil
}

func (l *Lexicon) matchAnyHeadword(terms []headwordTerm, e *Entry) bool {
	fold := l.folder()
	head := fold(e.Headword)
	for _, t := range terms {
		if t.match(head) {
			return true
		}
	}

	wt, ok := l.types.WordType(e.TypeID)
	if !ok {
		return false
	}
	for _, cid := range l.inflect.CombinationIDs(wt.ID) {
		form := l.inflect.Decline(wt.ID, cid, e.Headword)
		if strings.TrimSpace(form) == "" {
			continue
		}
		form = fold(form)
		for _, t := range terms {
			if t.match(form) {
				return true
			}
		}
	}
	return false
}

// folder returns the case folding function of the current policy.
func (l *Lexicon) folder() func(string) string {
	if l.cfg.IgnoreCase {
		return strings.ToLower
	}
	return func(s string) string { return s }
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
