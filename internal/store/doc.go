// Package store provides the durable side of the contact list.
//
// Two backends implement Backend:
//   - FileBackend: the default escaped-TSV flat file (see package codec)
//   - SQLiteBackend: a single SQLite table holding the same records
//
// Both follow the same contract:
//   - Load on startup; a missing file/database is an empty list, not an error
//   - Save rewrites the complete list on every call (last writer wins)
//   - Record order on disk is store order
//
// # File Backend
//
// Saves go to a temporary file in the target directory which is synced and
// renamed over the target, so a crash mid-save leaves the previous file
// intact. No file handle is held between operations.
//
// # SQLite Backend
//
//   - WAL mode, synchronous=NORMAL, busy_timeout=5000
//   - Save is one transaction: DELETE all rows, INSERT in store order
//   - Load orders by position, the row's index at save time
//   - Schema version tracked in PRAGMA user_version
package store
