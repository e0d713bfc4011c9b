package store

import (
	"context"
	"fmt"

	"github.com/roach88/contacts/internal/codec"
	"github.com/roach88/contacts/internal/contact"
)

// Kind names a backend implementation.
type Kind string

const (
	KindFile   Kind = "tsv"
	KindSQLite Kind = "sqlite"
)

// DefaultPath is the flat file used when no path is configured.
const DefaultPath = "contacts_db.txt"

// Kinds lists the supported backends.
var Kinds = []Kind{KindFile, KindSQLite}

// Backend loads and saves the full contact list.
type Backend interface {
	contact.Saver

	// Load reads every stored contact. A missing store is reported through
	// LoadResult.Missing, never as an error.
	Load(ctx context.Context) (LoadResult, error)

	// Close releases any held resources.
	Close() error

	// Path returns the location of the backing storage.
	Path() string
}

// LoadResult is the outcome of Backend.Load.
type LoadResult struct {
	Contacts []contact.Contact
	Stats    codec.Stats
	Missing  bool // nothing existed at Path yet
}

// Open returns the backend of the given kind rooted at path.
func Open(kind Kind, path string) (Backend, error) {
	if path == "" {
		path = DefaultPath
	}
	switch kind {
	case KindFile, "":
		return NewFileBackend(path), nil
	case KindSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown backend %q: must be one of %v", kind, Kinds)
	}
}
