// Package testutil provides deterministic helpers shared by package tests:
// a recording in-memory saver, scripted console input and golden-file
// assertions.
package testutil
