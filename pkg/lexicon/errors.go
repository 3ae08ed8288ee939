package lexicon

import "fmt"

// NotFoundError is returned when an operation refers to an entry id that
// is not in the lexicon.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entry %d not found", e.ID)
}

// DuplicateIDError is returned when an insert uses an explicit id that
// already belongs to another entry.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("entry id %d is already taken", e.ID)
}

// InvalidIDError is returned for negative explicit ids.
type InvalidIDError struct {
	ID int
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("entry id %d is invalid", e.ID)
}

// FilterError wraps any failure that happened during a filter pass.
type FilterError struct {
	Err error
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("filtering error: %v", e.Err)
}

func (e *FilterError) Unwrap() error {
	return e.Err
}
