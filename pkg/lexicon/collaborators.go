package lexicon

// WordType is a part of speech as seen by the lexicon engine.
type WordType struct {
	ID int

	// Name is the display label of the type.
	Name string

	// Pattern is a regular expression every headword of this type has to
	// match in full. Empty pattern means no restriction.
	Pattern string
}

// WordTypes is a registry of word types.
type WordTypes interface {
	// WordType returns the type with the given id, false if it is absent.
	WordType(id int) (WordType, bool)
}

// Inflector generates and stores inflected forms (declensions and
// conjugations) of entries.
type Inflector interface {
	// Decline returns the form of headword for the given combination of
	// the word type. Empty string means the form cannot be generated.
	Decline(typeID int, combinationID, headword string) string

	// CombinationIDs returns ids of all inflection combinations currently
	// defined for the word type.
	CombinationIDs(typeID int) []string

	// RequirementsMet returns a description of unmet inflection
	// requirements of the entry, or an empty string.
	RequirementsMet(e Entry, wt *WordType) string

	// StoredValues returns manually stored forms of the entry keyed by
	// combination id.
	StoredValues(entryID int) map[string]string

	// RemoveValues deletes stored forms of the entry for the given
	// combination ids.
	RemoveValues(entryID int, combinationIDs []string)

	// ClearAll deletes every stored form of the entry.
	ClearAll(entryID int)
}

// Pronouncer converts headwords to their pronunciation.
type Pronouncer interface {
	// Pronounce returns the pronunciation of the headword.
	Pronounce(headword string) string

	// Phonemes splits the headword into ordered phoneme tokens.
	Phonemes(headword string) []string

	// AllPhonemes returns every phoneme known to the pronouncer in its
	// canonical order.
	AllPhonemes() []string
}

type noTypes struct{}

func (noTypes) WordType(int) (WordType, bool) { return WordType{}, false }

type noInflections struct{}

func (noInflections) Decline(int, string, string) string { return "" }

func (noInflections) CombinationIDs(int) []string { return nil }

func (noInflections) RequirementsMet(Entry, *WordType) string { return "" }

func (noInflections) StoredValues(int) map[string]string { return nil }

func (noInflections) RemoveValues(int, []string) {}

func (noInflections) ClearAll(int) {}
