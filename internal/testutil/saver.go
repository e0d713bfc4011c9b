package testutil

import (
	"context"
	"slices"

	"github.com/roach88/contacts/internal/contact"
)

// MemorySaver records every full save instead of touching disk.
//
// Set Err to make the next saves fail; the snapshot is still not recorded
// for failed calls, mirroring a write that never reached storage.
type MemorySaver struct {
	Err   error
	saves [][]contact.Contact
	calls int
}

// NewMemorySaver creates an empty recording saver.
func NewMemorySaver() *MemorySaver {
	return &MemorySaver{}
}

// Save implements contact.Saver.
func (m *MemorySaver) Save(_ context.Context, contacts []contact.Contact) error {
	m.calls++
	if m.Err != nil {
		return m.Err
	}
	m.saves = append(m.saves, slices.Clone(contacts))
	return nil
}

// Calls returns how many times Save was invoked, failed calls included.
func (m *MemorySaver) Calls() int {
	return m.calls
}

// Saved returns the number of successful saves.
func (m *MemorySaver) Saved() int {
	return len(m.saves)
}

// Last returns the most recent successfully saved snapshot, or nil.
func (m *MemorySaver) Last() []contact.Contact {
	if len(m.saves) == 0 {
		return nil
	}
	return m.saves[len(m.saves)-1]
}
