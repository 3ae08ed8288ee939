package schema

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/gnames/gnlex/pkg/grammar"
	"github.com/gnames/gnlex/pkg/lexicon"
	"github.com/gnames/gnlex/pkg/storage"
	"github.com/google/uuid"
)

// Rows holds a snapshot split into table rows.
type Rows struct {
	Meta        Meta
	Entries     []Entry
	ClassValues []EntryClassValue
	ClassTexts  []EntryClassText
	Inflections []InflectionValue
}

// FromSnapshot converts a snapshot to table rows.
func FromSnapshot(s *storage.Snapshot) Rows {
	res := Rows{
		Meta: Meta{
			ID:        1,
			LexiconID: s.Meta.LexiconID.String(),
			Version:   s.Meta.Version,
			SavedAt:   s.Meta.SavedAt.UTC().Format(time.RFC3339),
		},
		Entries: make([]Entry, len(s.Records)),
	}

	for i, r := range s.Records {
		res.Entries[i] = Entry{
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
		for _, v := range r.ClassValues {
			res.ClassValues = append(res.ClassValues, EntryClassValue{
				EntryID:     r.ID,
				AttributeID: v.AttributeID,
				ValueID:     v.ValueID,
			})
		}
		for _, v := range r.ClassTexts {
			res.ClassTexts = append(res.ClassTexts, EntryClassText{
				EntryID:     r.ID,
				AttributeID: v.AttributeID,
				Text:        v.Text,
			})
		}
	}

	for _, v := range s.Inflections {
		res.Inflections = append(res.Inflections, InflectionValue{
			EntryID:       v.EntryID,
			CombinationID: v.CombinationID,
			Value:         v.Value,
		})
	}
	return res
}

// Snapshot assembles table rows back into a snapshot. Records are ordered
// by id, class values by attribute.
func (r Rows) Snapshot() (*storage.Snapshot, error) {
	res := &storage.Snapshot{}
	if r.Meta.LexiconID != "" {
		id, err := uuid.Parse(r.Meta.LexiconID)
		if err != nil {
			return nil, fmt.Errorf("lexicon id %q: %w", r.Meta.LexiconID, err)
		}
		savedAt, err := time.Parse(time.RFC3339, r.Meta.SavedAt)
		if err != nil {
			return nil, fmt.Errorf("saved_at %q: %w", r.Meta.SavedAt, err)
		}
		res.Meta = storage.Meta{
			LexiconID: id,
			Version:   r.Meta.Version,
			SavedAt:   savedAt,
		}
	}

	values := make(map[int][]lexicon.ClassValue)
	for _, v := range r.ClassValues {
		values[v.EntryID] = append(values[v.EntryID], lexicon.ClassValue{
			AttributeID: v.AttributeID,
			ValueID:     v.ValueID,
		})
	}
	texts := make(map[int][]lexicon.ClassText)
	for _, v := range r.ClassTexts {
		texts[v.EntryID] = append(texts[v.EntryID], lexicon.ClassText{
			AttributeID: v.AttributeID,
			Text:        v.Text,
		})
	}

	for _, e := range r.Entries {
		rec := lexicon.Record{
			ID:                     e.ID,
			Headword:               e.Headword,
			Translation:            e.Translation,
			Definition:             e.Definition,
			TypeID:                 e.TypeID,
			Pronunciation:          e.Pronunciation,
			PronunciationOverride:  e.PronunciationOverride,
			RuleOverride:           e.RuleOverride,
			AutoInflectionOverride: e.AutoInflectionOverride,
			ClassValues:            values[e.ID],
			ClassTexts:             texts[e.ID],
		}
		slices.SortFunc(rec.ClassValues, func(a, b lexicon.ClassValue) int {
			return cmp.Compare(a.AttributeID, b.AttributeID)
		})
		slices.SortFunc(rec.ClassTexts, func(a, b lexicon.ClassText) int {
			return cmp.Compare(a.AttributeID, b.AttributeID)
		})
		res.Records = append(res.Records, rec)
	}
	slices.SortFunc(res.Records, func(a, b lexicon.Record) int {
		return cmp.Compare(a.ID, b.ID)
	})

	for _, v := range r.Inflections {
		res.Inflections = append(res.Inflections, grammar.StoredValue{
			EntryID:       v.EntryID,
			CombinationID: v.CombinationID,
			Value:         v.Value,
		})
	}
	return res, nil
}

// TableRows are values of one table in column order.
type TableRows struct {
	Table   string
	Columns []string
	Values  [][]any
}

// Tables returns the rows of every table in creation order. Tables
// without rows are included with empty Values.
func (r Rows) Tables() []TableRows {
	m := r.Meta
	res := []TableRows{
		newTableRows(m, [][]any{{m.ID, m.LexiconID, m.Version, m.SavedAt}}),
	}

	entries := make([][]any, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = []any{
			e.ID, e.Headword, e.Translation, e.Definition, e.TypeID,
			e.Pronunciation, e.PronunciationOverride, e.RuleOverride,
			e.AutoInflectionOverride,
		}
	}
	res = append(res, newTableRows(Entry{}, entries))

	values := make([][]any, len(r.ClassValues))
	for i, v := range r.ClassValues {
		values[i] = []any{v.EntryID, v.AttributeID, v.ValueID}
	}
	res = append(res, newTableRows(EntryClassValue{}, values))

	texts := make([][]any, len(r.ClassTexts))
	for i, v := range r.ClassTexts {
		texts[i] = []any{v.EntryID, v.AttributeID, v.Text}
	}
	res = append(res, newTableRows(EntryClassText{}, texts))

	forms := make([][]any, len(r.Inflections))
	for i, v := range r.Inflections {
		forms[i] = []any{v.EntryID, v.CombinationID, v.Value}
	}
	return append(res, newTableRows(InflectionValue{}, forms))
}

func newTableRows(model DDLGenerator, values [][]any) TableRows {
	return TableRows{
		Table:   model.TableName(),
		Columns: Columns(model),
		Values:  values,
	}
}
