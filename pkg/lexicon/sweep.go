package lexicon

import (
	"log/slog"
	"slices"
)

// SweepDeprecatedInflections removes stored inflected forms of entries of
// the word type whose combinations are no longer defined for that type.
// It returns the number of removed forms.
func (l *Lexicon) SweepDeprecatedInflections(typeID int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	var valid map[string]struct{}
	var count int
	for _, e := range l.entries {
		if e.TypeID != typeID {
			continue
		}
		if valid == nil {
			valid = make(map[string]struct{})
			for _, id := range l.inflect.CombinationIDs(typeID) {
				valid[id] = struct{}{}
			}
		}

		var stale []string
		for id := range l.inflect.StoredValues(e.ID) {
			if _, ok := valid[id]; !ok {
				stale = append(stale, id)
			}
		}
		if len(stale) == 0 {
			continue
		}
		slices.Sort(stale)
		l.inflect.RemoveValues(e.ID, stale)
		count += len(stale)
	}

	if count > 0 {
		slog.Info("Removed deprecated inflections", "type", typeID, "count", count)
	}
	return count
}
