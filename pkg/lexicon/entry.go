package lexicon

import (
	"maps"
	"strings"
)

// GlossSeparator divides a translation into glosses and a filter field into
// OR-ed terms.
const GlossSeparator = ","

// Entry is a single lexicon record.
type Entry struct {
	// ID is assigned by the Lexicon on insert and never reused.
	ID int

	// Headword is the form of the word in the constructed language.
	Headword string

	// Translation holds one or more comma-separated glosses in the natural
	// language.
	Translation string

	// Definition is free text that may contain HTML markup.
	Definition string

	// TypeID refers to a word type (part of speech), 0 means untyped.
	TypeID int

	// Pronunciation is computed from the headword unless
	// PronunciationOverride is set.
	Pronunciation         string
	PronunciationOverride bool

	// RuleOverride suppresses pattern enforcement for the entry.
	RuleOverride bool

	// AutoInflectionOverride suppresses automatic generation of inflected
	// forms for the entry.
	AutoInflectionOverride bool

	// ClassValues maps class attribute ids to enumerated value ids.
	ClassValues map[int]int

	// ClassTexts maps class attribute ids to free text values.
	ClassTexts map[int]string
}

// Clone returns a deep copy of the entry.
func (e Entry) Clone() Entry {
	res := e
	if e.ClassValues != nil {
		res.ClassValues = maps.Clone(e.ClassValues)
	}
	if e.ClassTexts != nil {
		res.ClassTexts = maps.Clone(e.ClassTexts)
	}
	return res
}

// Glosses returns the trimmed, non-empty comma-separated components of the
// translation.
func (e Entry) Glosses() []string {
	return splitTerms(e.Translation)
}

// splitTerms splits s by GlossSeparator, trims every part and drops empty
// parts.
func splitTerms(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, GlossSeparator)
	res := make([]string, 0, len(parts))
	for _, v := range parts {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		res = append(res, v)
	}
	return res
}
