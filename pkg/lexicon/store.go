package lexicon

import "log/slog"

// Insert adds a copy of the entry to the lexicon and returns its id.
// Entries with ID 0 receive the next free id. An explicit id that is taken
// results in *DuplicateIDError, a negative id in *InvalidIDError.
func (l *Lexicon) Insert(e Entry) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.insert(e)
}

func (l *Lexicon) insert(e Entry) (int, error) {
	switch {
	case e.ID < 0:
		return 0, &InvalidIDError{ID: e.ID}
	case e.ID == 0:
		e.ID = l.nextID
	default:
		if _, ok := l.entries[e.ID]; ok {
			return 0, &DuplicateIDError{ID: e.ID}
		}
	}
	if e.ID >= l.nextID {
		l.nextID = e.ID + 1
	}

	ins := e.Clone()
	l.pronounce(&ins)
	l.entries[ins.ID] = &ins
	l.dups.add(&ins, 1)
	slog.Debug("Inserted entry", "id", ins.ID, "headword", ins.Headword)
	return ins.ID, nil
}

// Modify replaces the state of the entry with the given id. The id field of
// e is ignored.
func (l *Lexicon) Modify(id int, e Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	old, ok := l.entries[id]
	if !ok {
		return &NotFoundError{ID: id}
	}

	mod := e.Clone()
	mod.ID = id
	l.pronounce(&mod)
	l.dups.rebalance(old, &mod)
	l.entries[id] = &mod
	slog.Debug("Modified entry", "id", id, "headword", mod.Headword)
	return nil
}

// Delete removes the entry and every inflected form stored for it.
func (l *Lexicon) Delete(id int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	old, ok := l.entries[id]
	if !ok {
		return &NotFoundError{ID: id}
	}

	l.dups.add(old, -1)
	delete(l.entries, id)
	l.inflect.ClearAll(id)
	slog.Debug("Deleted entry", "id", id, "headword", old.Headword)
	return nil
}

// Get returns a copy of the entry with the given id.
func (l *Lexicon) Get(id int) (Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[id]
	if !ok {
		return Entry{}, &NotFoundError{ID: id}
	}
	return e.Clone(), nil
}

// All returns copies of all entries in natural order.
func (l *Lexicon) All() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return clones(l.sorted(l.values()))
}

// Len returns the number of entries.
func (l *Lexicon) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Buffer returns the staging entry. Callers fill it in and then call
// CommitBuffer.
func (l *Lexicon) Buffer() *Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buffer
}

// ClearBuffer discards the staging entry.
func (l *Lexicon) ClearBuffer() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buffer = &Entry{}
}

// CommitBuffer inserts a copy of the staging entry and starts a new empty
// one. On error the staging entry is kept so it can be corrected.
func (l *Lexicon) CommitBuffer() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id, err := l.insert(*l.buffer)
	if err != nil {
		return 0, err
	}
	l.buffer = &Entry{}
	return id, nil
}

// AddEntry stages the entry and commits it. On error the entry stays in
// the buffer.
func (l *Lexicon) AddEntry(e Entry) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	stage := e.Clone()
	l.buffer = &stage
	id, err := l.insert(stage)
	if err != nil {
		return 0, err
	}
	l.buffer = &Entry{}
	return id, nil
}

// RecalcPronunciations recomputes the pronunciation of every entry that
// does not override it. It returns the number of entries that changed.
func (l *Lexicon) RecalcPronunciations() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	var count int
	for _, e := range l.entries {
		before := e.Pronunciation
		l.pronounce(e)
		if e.Pronunciation != before {
			count++
		}
	}
	return count
}

func (l *Lexicon) pronounce(e *Entry) {
	if l.pron == nil || e.PronunciationOverride {
		return
	}
	e.Pronunciation = l.pron.Pronounce(e.Headword)
}

// values returns the stored entries in no particular order.
func (l *Lexicon) values() []*Entry {
	res := make([]*Entry, 0, len(l.entries))
	for _, e := range l.entries {
		res = append(res, e)
	}
	return res
}

func clones(ee []*Entry) []Entry {
	res := make([]Entry, len(ee))
	for i, e := range ee {
		res[i] = e.Clone()
	}
	return res
}
