// Package contact holds the in-memory contact list and its CRUD operations.
//
// A Store owns every Contact record and the next-id counter. Callers only ever
// receive copies; mutating a returned Contact has no effect on the store.
//
// Every mutating operation (Add, Update, Delete, SortByName) ends with a full
// save through the injected Saver. A failed save keeps the in-memory change
// and is reported as an error wrapping ErrSave.
//
// The Store is single-threaded by contract and performs no locking.
package contact
