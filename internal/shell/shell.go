// Package shell implements the interactive contact menu.
//
// The shell is a blocking read-dispatch-render loop over an input reader and
// an output writer. Each menu number maps to a Command, and each Command to a
// handler method. User-input mistakes re-prompt locally; persistence failures
// are printed and the loop carries on with the in-memory state intact.
//
// End of input behaves like choosing Exit.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/store"
	"github.com/roach88/contacts/internal/view"
)

const banner = "======================================"

// errQuit ends the loop after a successful Exit.
var errQuit = errors.New("quit")

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the diagnostics logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.log = l
		}
	}
}

// Shell drives a contact.Store from console input.
type Shell struct {
	in       *bufio.Reader
	out      io.Writer
	store    *contact.Store
	log      *zap.Logger
	style    styles
	handlers map[Command]func(context.Context) error
}

// New creates a shell reading commands from in and rendering to out.
func New(in io.Reader, out io.Writer, st *contact.Store, opts ...Option) *Shell {
	s := &Shell{
		in:    bufio.NewReader(in),
		out:   out,
		store: st,
		log:   zap.NewNop(),
		style: newStyles(out),
	}
	s.handlers = map[Command]func(context.Context) error{
		CommandAdd:    s.add,
		CommandView:   s.viewAll,
		CommandSearch: s.search,
		CommandUpdate: s.update,
		CommandDelete: s.delete,
		CommandSort:   s.sort,
		CommandExit:   s.exit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReportLoad prints the startup summary for a backend load.
func (s *Shell) ReportLoad(path string, res store.LoadResult) {
	if res.Missing {
		fmt.Fprintf(s.out, "No database file found. A new one will be created: %s\n", path)
		return
	}
	s.okf("Loaded %d contact(s) from %s", len(res.Contacts), path)
	if n := res.Stats.Skipped + res.Stats.Duplicates; n > 0 {
		s.failf("Skipped %d unreadable line(s) in %s", n, path)
		s.log.Warn("skipped records on load",
			zap.String("path", path),
			zap.Int("malformed", res.Stats.Skipped),
			zap.Int("duplicate_ids", res.Stats.Duplicates))
	}
}

// Run loops until Exit or end of input. Both perform a final save and
// return nil; only unrecoverable input errors are returned.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.printMenu()
		n, err := s.readInt("Enter choice: ")
		if err == nil {
			cmd := Command(n)
			handler, ok := s.handlers[cmd]
			if !ok {
				s.failf("Invalid choice. Try again.")
				fmt.Fprintln(s.out)
				continue
			}
			s.log.Debug("command", zap.Stringer("command", cmd))
			err = handler(ctx)
		}

		switch {
		case err == nil:
			fmt.Fprintln(s.out)
		case errors.Is(err, errQuit):
			return nil
		case errors.Is(err, io.EOF):
			s.log.Debug("end of input")
			_ = s.exit(ctx)
			return nil
		default:
			return err
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, banner)
	fmt.Fprintln(s.out, s.style.title.Render("       CONTACT MANAGEMENT SYSTEM      "))
	fmt.Fprintln(s.out, banner)
	for _, c := range Commands {
		fmt.Fprintf(s.out, "%d. %s\n", int(c), c)
	}
	fmt.Fprintln(s.out, banner)
}

func (s *Shell) add(ctx context.Context) error {
	s.section("Add Contact")

	var fields [4]string
	for i, prompt := range []string{"Name: ", "Phone: ", "Email: ", "Address: "} {
		v, err := s.readRequired(prompt)
		if err != nil {
			return err
		}
		fields[i] = v
	}

	c, err := s.store.Add(ctx, fields[0], fields[1], fields[2], fields[3])
	s.reportSave(err)
	s.okf("Contact added successfully. ID = %d", c.ID)
	return nil
}

func (s *Shell) viewAll(_ context.Context) error {
	s.section("All Contacts")
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, "No contacts found.")
		return nil
	}
	return view.Table(s.out, s.store.All())
}

func (s *Shell) search(_ context.Context) error {
	s.section("Search Contact")
	fmt.Fprintf(s.out, "Search by: 1) %s  2) %s  3) %s  4) %s\n", SearchByID, SearchByName, SearchByPhone, SearchByEmail)

	n, err := s.readInt("Enter option: ")
	if err != nil {
		return err
	}

	var m contact.Matcher
	switch SearchMode(n) {
	case SearchByID:
		id, err := s.readInt("Enter ID: ")
		if err != nil {
			return err
		}
		m = contact.ByID(id)
	case SearchByName:
		q, err := s.readRequired("Enter name keyword: ")
		if err != nil {
			return err
		}
		m = contact.ByName(q)
	case SearchByPhone:
		q, err := s.readRequired("Enter phone keyword: ")
		if err != nil {
			return err
		}
		m = contact.ByPhone(q)
	case SearchByEmail:
		q, err := s.readRequired("Enter email keyword: ")
		if err != nil {
			return err
		}
		m = contact.ByEmail(q)
	default:
		s.failf("Invalid search option.")
		return nil
	}

	results := s.store.Find(m)
	s.log.Debug("search", zap.Stringer("mode", SearchMode(n)), zap.Int("matches", len(results)))
	if len(results) == 0 {
		fmt.Fprintln(s.out, "No matching contacts found.")
		return nil
	}
	s.okf("Matches found: %d", len(results))
	return view.Table(s.out, results)
}

func (s *Shell) update(ctx context.Context) error {
	s.section("Update Contact")
	c, ok, err := s.lookup("Enter Contact ID to update: ")
	if err != nil || !ok {
		return err
	}

	fmt.Fprintln(s.out, "Current details:")
	if err := view.Table(s.out, []contact.Contact{c}); err != nil {
		return err
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Enter new values (press ENTER to keep old value):")
	var p contact.Patch
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"New Name: ", &p.Name},
		{"New Phone: ", &p.Phone},
		{"New Email: ", &p.Email},
		{"New Address: ", &p.Address},
	} {
		v, err := s.readOptional(f.prompt)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	_, err = s.store.Update(ctx, c.ID, p)
	if errors.Is(err, contact.ErrNotFound) {
		s.failf("Contact not found.")
		return nil
	}
	s.reportSave(err)
	s.okf("Contact updated successfully.")
	return nil
}

func (s *Shell) delete(ctx context.Context) error {
	s.section("Delete Contact")
	c, ok, err := s.lookup("Enter Contact ID to delete: ")
	if err != nil || !ok {
		return err
	}

	fmt.Fprintln(s.out, "Deleting:")
	if err := view.Table(s.out, []contact.Contact{c}); err != nil {
		return err
	}

	ans, err := s.readLine("Are you sure? (y/n): ")
	if err != nil {
		return err
	}
	if strings.ToLower(strings.TrimSpace(ans)) != "y" {
		fmt.Fprintln(s.out, "Cancelled.")
		return nil
	}

	err = s.store.Delete(ctx, c.ID)
	if errors.Is(err, contact.ErrNotFound) {
		s.failf("Contact not found.")
		return nil
	}
	s.reportSave(err)
	s.okf("Contact deleted successfully.")
	return nil
}

func (s *Shell) sort(ctx context.Context) error {
	s.section("Sort Contacts by Name")
	s.reportSave(s.store.SortByName(ctx))
	s.okf("Contacts sorted by name.")
	return nil
}

func (s *Shell) exit(ctx context.Context) error {
	s.reportSave(s.store.Save(ctx))
	fmt.Fprintln(s.out, "Bye.")
	return errQuit
}

// lookup reads an id and fetches the contact, printing a message when absent.
func (s *Shell) lookup(prompt string) (contact.Contact, bool, error) {
	id, err := s.readInt(prompt)
	if err != nil {
		return contact.Contact{}, false, err
	}
	c, ok := s.store.FindByID(id)
	if !ok {
		s.failf("Contact not found.")
	}
	return c, ok, nil
}

// reportSave tells the user a save failed. The in-memory change stands.
func (s *Shell) reportSave(err error) {
	if err == nil {
		return
	}
	s.log.Error("save failed", zap.Error(err))
	s.failf("Failed to save contacts: %v", err)
}

func (s *Shell) section(name string) {
	fmt.Fprintln(s.out, s.style.dim.Render("---- "+name+" ----"))
}

func (s *Shell) okf(format string, args ...any) {
	fmt.Fprintf(s.out, "%s %s\n", s.style.ok.Render(okMark), fmt.Sprintf(format, args...))
}

func (s *Shell) failf(format string, args ...any) {
	fmt.Fprintf(s.out, "%s %s\n", s.style.fail.Render(failMark), fmt.Sprintf(format, args...))
}
