package contact

import "errors"

var (
	// ErrNotFound is returned when no contact has the requested id.
	ErrNotFound = errors.New("contact not found")

	// ErrSave wraps a persistence failure after a mutation.
	// The mutation itself has already been applied in memory.
	ErrSave = errors.New("save contacts")
)
