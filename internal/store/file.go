package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/roach88/contacts/internal/codec"
	"github.com/roach88/contacts/internal/contact"
)

// FileBackend stores contacts in an escaped-TSV flat file.
type FileBackend struct {
	path string
	perm fs.FileMode
}

// NewFileBackend returns a backend for the file at path. The file is not
// touched until Load or Save.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path, perm: 0o644}
}

// Path returns the backing file path.
func (b *FileBackend) Path() string {
	return b.path
}

// Load decodes the file. A missing file yields an empty result with Missing set.
func (b *FileBackend) Load(_ context.Context) (LoadResult, error) {
	f, err := os.Open(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return LoadResult{Missing: true}, nil
	}
	if err != nil {
		return LoadResult{}, fmt.Errorf("load %s: %w", b.path, err)
	}
	defer f.Close()

	contacts, stats, err := codec.Decode(f)
	if err != nil {
		return LoadResult{}, fmt.Errorf("load %s: %w", b.path, err)
	}
	return LoadResult{Contacts: contacts, Stats: stats}, nil
}

// Save rewrites the whole file from contacts.
func (b *FileBackend) Save(_ context.Context, contacts []contact.Contact) error {
	tmp, err := os.CreateTemp(filepath.Dir(b.path), "."+filepath.Base(b.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", b.path, err)
	}
	if err := b.writeTemp(tmp, contacts); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", b.path, err)
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", b.path, err)
	}
	return nil
}

// writeTemp encodes contacts into f, syncs and closes it. f is closed on
// every path.
func (b *FileBackend) writeTemp(f *os.File, contacts []contact.Contact) error {
	if err := codec.Encode(f, contacts); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(b.perm); err != nil {
		f.Close()
		return fmt.Errorf("chmod: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync: %w", err)
	}
	return f.Close()
}

// Close is a no-op; the file is never held open.
func (b *FileBackend) Close() error {
	return nil
}
