package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/contacts/internal/contact"
)

// createTestSQLite opens a fresh SQLite backend in a temp directory.
func createTestSQLite(t *testing.T) *SQLiteBackend {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	b, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b
}

// sampleContacts returns contacts exercising every escaped character.
func sampleContacts() []contact.Contact {
	return []contact.Contact{
		{ID: 3, Name: "Bob", Phone: "555-0100", Email: "bob@example.com", Address: "1 Main St"},
		{ID: 1, Name: "A\tB", Phone: `\t`, Email: "x\ny", Address: "back\\slash\r"},
		{ID: 7, Name: "Zoë", Phone: "", Email: "", Address: ""},
	}
}
