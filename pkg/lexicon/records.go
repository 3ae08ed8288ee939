package lexicon

import (
	"cmp"
	"fmt"
	"slices"
)

// Record is the flat form of an entry used by storage and export.
type Record struct {
	ID                     int          `json:"id"`
	Headword               string       `json:"headword"`
	Translation            string       `json:"translation"`
	Definition             string       `json:"definition,omitempty"`
	TypeID                 int          `json:"typeId"`
	Pronunciation          string       `json:"pronunciation,omitempty"`
	PronunciationOverride  bool         `json:"pronunciationOverride"`
	RuleOverride           bool         `json:"ruleOverride"`
	AutoInflectionOverride bool         `json:"autoInflectionOverride"`
	ClassValues            []ClassValue `json:"classValues,omitempty"`
	ClassTexts             []ClassText  `json:"classTexts,omitempty"`
}

// ClassValue is the enumerated value of a class attribute.
type ClassValue struct {
	AttributeID int `json:"attributeId"`
	ValueID     int `json:"valueId"`
}

// ClassText is the free text value of a class attribute.
type ClassText struct {
	AttributeID int    `json:"attributeId"`
	Text        string `json:"text"`
}

// NewRecord flattens the entry. Class values are sorted by attribute id.
func NewRecord(e Entry) Record {
	res := Record{
		ID:                     e.ID,
		Headword:               e.Headword,
		Translation:            e.Translation,
		Definition:             e.Definition,
		TypeID:                 e.TypeID,
		Pronunciation:          e.Pronunciation,
		PronunciationOverride:  e.PronunciationOverride,
		RuleOverride:           e.RuleOverride,
		AutoInflectionOverride: e.AutoInflectionOverride,
	}
	for k, v := range e.ClassValues {
		res.ClassValues = append(res.ClassValues, ClassValue{AttributeID: k, ValueID: v})
	}
	slices.SortFunc(res.ClassValues, func(a, b ClassValue) int {
		return cmp.Compare(a.AttributeID, b.AttributeID)
	})
	for k, v := range e.ClassTexts {
		res.ClassTexts = append(res.ClassTexts, ClassText{AttributeID: k, Text: v})
	}
	slices.SortFunc(res.ClassTexts, func(a, b ClassText) int {
		return cmp.Compare(a.AttributeID, b.AttributeID)
	})
	return res
}

// Entry rebuilds the entry from the record.
func (r Record) Entry() Entry {
	res := Entry{
		ID:                     r.ID,
		Headword:               r.Headword,
		Translation:            r.Translation,
		Definition:             r.Definition,
		TypeID:                 r.TypeID,
		Pronunciation:          r.Pronunciation,
		PronunciationOverride:  r.PronunciationOverride,
		RuleOverride:           r.RuleOverride,
		AutoInflectionOverride: r.AutoInflectionOverride,
	}
	if len(r.ClassValues) > 0 {
		res.ClassValues = make(map[int]int, len(r.ClassValues))
		for _, v := range r.ClassValues {
			res.ClassValues[v.AttributeID] = v.ValueID
		}
	}
	if len(r.ClassTexts) > 0 {
		res.ClassTexts = make(map[int]string, len(r.ClassTexts))
		for _, v := range r.ClassTexts {
			res.ClassTexts[v.AttributeID] = v.Text
		}
	}
	return res
}

// Records returns all entries as records in natural order.
func (l *Lexicon) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	ee := l.sorted(l.values())
	res := make([]Record, len(ee))
	for i, e := range ee {
		res[i] = NewRecord(*e)
	}
	return res
}

// Restore adds entries from records, keeping their ids and pronunciations.
// Records are checked before anything is added: if any id is invalid or
// already taken, the lexicon stays unchanged.
func (l *Lexicon) Restore(rr []Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	seen := make(map[int]struct{}, len(rr))
	for _, r := range rr {
		if r.ID <= 0 {
			return fmt.Errorf("restore: %w", &InvalidIDError{ID: r.ID})
		}
		if _, ok := seen[r.ID]; ok {
			return fmt.Errorf("restore: %w", &DuplicateIDError{ID: r.ID})
		}
		if _, ok := l.entries[r.ID]; ok {
			return fmt.Errorf("restore: %w", &DuplicateIDError{ID: r.ID})
		}
		seen[r.ID] = struct{}{}
	}

	for _, r := range rr {
		e := r.Entry()
		l.entries[e.ID] = &e
		l.dups.add(&e, 1)
		if e.ID >= l.nextID {
			l.nextID = e.ID + 1
		}
	}
	return nil
}
