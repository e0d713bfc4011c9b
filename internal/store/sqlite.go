package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/contacts/internal/contact"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 0 - database created before versioning (no contacts table yet)
// 1 - contacts table keyed by position with UNIQUE id
const currentSchemaVersion = 1

// SQLiteBackend stores contacts in a single SQLite table.
type SQLiteBackend struct {
	db      *sql.DB
	path    string
	created bool
}

// OpenSQLite creates or opens a SQLite database at path.
// Applies required pragmas and the schema automatically.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	_, statErr := os.Stat(path)
	created := errors.Is(statErr, fs.ErrNotExist)

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLiteBackend{db: db, path: path, created: created}, nil
}

// Path returns the database file path.
func (b *SQLiteBackend) Path() string {
	return b.path
}

// Load returns every contact ordered by position.
// A database created by this process reports Missing.
func (b *SQLiteBackend) Load(ctx context.Context) (LoadResult, error) {
	rows, err := b.db.QueryContext(ctx, `
		SELECT id, name, phone, email, address
		FROM contacts
		ORDER BY position ASC
	`)
	if err != nil {
		return LoadResult{}, fmt.Errorf("load contacts: %w", err)
	}
	defer rows.Close()

	var contacts []contact.Contact
	for rows.Next() {
		var c contact.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address); err != nil {
			return LoadResult{}, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return LoadResult{}, fmt.Errorf("iterate contacts: %w", err)
	}

	res := LoadResult{Contacts: contacts, Missing: b.created && len(contacts) == 0}
	res.Stats.Lines = len(contacts)
	res.Stats.Loaded = len(contacts)
	return res, nil
}

// Save replaces every row with contacts in a single transaction.
func (b *SQLiteBackend) Save(ctx context.Context, contacts []contact.Contact) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save contacts: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if _, err := tx.ExecContext(ctx, `DELETE FROM contacts`); err != nil {
		return fmt.Errorf("save contacts: clear: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO contacts (position, id, name, phone, email, address)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("save contacts: prepare: %w", err)
	}
	defer stmt.Close()

	for i, c := range contacts {
		if _, err := stmt.ExecContext(ctx, i, c.ID, c.Name, c.Phone, c.Email, c.Address); err != nil {
			return fmt.Errorf("save contacts: insert %d: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save contacts: commit: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates the contacts table and records the schema version.
// This function is idempotent.
func applySchema(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	if version > currentSchemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, currentSchemaVersion)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (b *SQLiteBackend) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := b.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
