package lexicon

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gnames/gnlex/pkg/config"
)

// ValidationReport describes problems found in an entry. Every field
// holds zero or more diagnostics separated by new lines.
type ValidationReport struct {
	Headword    string
	Translation string
	Type        string
	Definition  string

	// ProceedOverride is set when the headword does not match the pattern of
	// its word type. Callers may let the user keep the entry anyway.
	ProceedOverride bool

	// Warnings are soft conditions that do not make the entry illegal, for
	// example a reference to an unknown word type.
	Warnings []string
}

// IsLegal is true when no field has diagnostics.
func (r ValidationReport) IsLegal() bool {
	return r.Headword == "" && r.Translation == "" &&
		r.Type == "" && r.Definition == ""
}

// Messages returns all diagnostics as a flat list, field by field.
func (r ValidationReport) Messages() []string {
	var res []string
	for _, s := range []string{r.Headword, r.Translation, r.Type, r.Definition} {
		if s == "" {
			continue
		}
		res = append(res, strings.Split(s, "\n")...)
	}
	return res
}

func appendLine(s, line string) string {
	if s == "" {
		return line
	}
	return s + "\n" + line
}

// Check validates the entry against the policy and the current content of
// the lexicon. If e.ID belongs to a stored entry, that entry does not count
// as a collision for itself.
func (l *Lexicon) Check(e Entry, policy config.LexiconConfig) ValidationReport {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.check(&e, policy, make(map[string]*regexp.Regexp))
}

// Illegal returns entries that do not pass Check under the current policy,
// in natural order.
func (l *Lexicon) Illegal() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	patterns := make(map[string]*regexp.Regexp)
	var res []*Entry
	for _, e := range l.entries {
		if !l.check(e, l.cfg, patterns).IsLegal() {
			res = append(res, e)
		}
	}
	return clones(l.sorted(res))
}

func (l *Lexicon) check(
	e *Entry,
	policy config.LexiconConfig,
	patterns map[string]*regexp.Regexp,
) ValidationReport {
	var res ValidationReport
	self := l.entries[e.ID]

	if strings.TrimSpace(e.Headword) == "" {
		res.Headword = "headword cannot be blank"
	}
	if e.TypeID == 0 && policy.TypeMandatory {
		res.Type = "word type is mandatory"
	}
	if strings.TrimSpace(e.Translation) == "" && policy.TranslationMandatory {
		res.Translation = "translation is mandatory"
	}

	if policy.HeadwordUnique && e.Headword != "" {
		n := l.dups.count(HeadwordField, e.Headword)
		if self != nil && self.Headword == e.Headword {
			n--
		}
		if n > 0 {
			res.Headword = appendLine(res.Headword,
				"headword must be unique: it exists in another entry")
		}
	}

	if policy.TranslationUnique {
		var own map[string]struct{}
		if self != nil {
			own = make(map[string]struct{})
			for _, g := range self.Glosses() {
				own[g] = struct{}{}
			}
		}
		for _, g := range uniq(e.Glosses()) {
			n := l.dups.count(TranslationField, g)
			if _, ok := own[g]; ok {
				n--
			}
			if n > 0 {
				res.Translation = appendLine(res.Translation, fmt.Sprintf(
					"translation must be unique: %q exists in another entry", g,
				))
			}
		}
	}

	var wt *WordType
	if e.TypeID != 0 {
		if t, ok := l.types.WordType(e.TypeID); ok {
			wt = &t
		} else {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("word type %d is not defined", e.TypeID))
		}
	}

	if msg := l.inflect.RequirementsMet(*e, wt); msg != "" {
		res.Definition = appendLine(res.Definition, msg)
	}

	if wt == nil || wt.Pattern == "" || e.RuleOverride {
		return res
	}

	re, ok := patterns[wt.Pattern]
	if !ok {
		var err error
		re, err = regexp.Compile("^(?:" + wt.Pattern + ")$")
		if err != nil {
			res.Definition = appendLine(res.Definition, fmt.Sprintf(
				"pattern of word type %s is invalid: %v", wt.Name, err,
			))
			return res
		}
		patterns[wt.Pattern] = re
	}
	if !re.MatchString(e.Headword) {
		res.Definition = appendLine(res.Definition, fmt.Sprintf(
			"headword does not match the pattern of word type %s", wt.Name,
		))
		res.ProceedOverride = true
	}
	return res
}

func uniq(ss []string) []string {
	seen := make(map[string]struct{}, len(ss))
	res := ss[:0:0]
	for _, s := range ss {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		res = append(res, s)
	}
	return res
}
