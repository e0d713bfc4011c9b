package harness

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/shell"
	"github.com/roach88/contacts/internal/store"
)

// fileName is the contacts file created inside each scenario directory.
const fileName = "contacts_db.txt"

// Run executes a scenario in a fresh temporary directory and evaluates its
// assertions. Errors are returned only when the session itself could not be
// set up or completed.
//
// Execution flow:
// 1. Seed the contacts file from Contacts or File
// 2. Load it through the file backend, as the program does at startup
// 3. Drive the menu with Input
// 4. Reload the file and evaluate assertions
func Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	dir, err := os.MkdirTemp("", "contacts-scenario-")
	if err != nil {
		return nil, fmt.Errorf("failed to create scenario dir: %w", err)
	}
	defer os.RemoveAll(dir)

	backend := store.NewFileBackend(filepath.Join(dir, fileName))
	if err := seed(ctx, backend, scenario); err != nil {
		return nil, err
	}

	loaded, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load seeded file: %w", err)
	}

	var out bytes.Buffer
	st := contact.NewStore(loaded.Contacts, backend)
	sh := shell.New(strings.NewReader(inputText(scenario.Input)), &out, st)
	sh.ReportLoad(backend.Path(), loaded)
	if err := sh.Run(ctx); err != nil {
		return nil, fmt.Errorf("session failed: %w", err)
	}

	result := NewResult()
	result.Output = out.String()

	raw, err := os.ReadFile(backend.Path())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read final file: %w", err)
	}
	result.File = string(raw)

	final, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload final file: %w", err)
	}
	if final.Contacts != nil {
		result.Final = final.Contacts
	}

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}
	return result, nil
}

func seed(ctx context.Context, backend *store.FileBackend, scenario *Scenario) error {
	switch {
	case scenario.File != "":
		if err := os.WriteFile(backend.Path(), []byte(scenario.File), 0o644); err != nil {
			return fmt.Errorf("failed to seed file: %w", err)
		}
	case len(scenario.Contacts) > 0:
		if err := backend.Save(ctx, scenario.Contacts); err != nil {
			return fmt.Errorf("failed to seed contacts: %w", err)
		}
	}
	return nil
}

func inputText(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
