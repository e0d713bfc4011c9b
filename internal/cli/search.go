package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/contacts/internal/contact"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	*RootOptions
	By string
}

// SearchFields lists the values accepted by --by.
var SearchFields = []string{"id", "name", "phone", "email"}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find contacts by id, name, phone or email",
		Long: `Find contacts without opening the menu.

  id     exact id
  name   substring, case-insensitive
  phone  substring, case-sensitive
  email  substring, case-insensitive

Matches are printed in stored order.

Example:
  contacts search ali
  contacts search --by id 3
  contacts search --by email example.com --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return searchContacts(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.By, "by", "name", "field to search (id|name|phone|email)")

	return cmd
}

func searchContacts(opts *SearchOptions, query string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	m, err := matcherFor(opts.By, query)
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidQuery, err.Error(), map[string]string{"by": opts.By, "query": query})
		return WrapExitError(ExitCommandError, "invalid search", err)
	}

	sess, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return err
	}
	defer sess.Close()

	results := sess.store.Find(m)
	formatter.VerboseLog("%d of %d contact(s) matched %s=%q", len(results), sess.store.Len(), opts.By, query)
	return formatter.Contacts(results, "No matching contacts found.")
}

// matcherFor builds the matcher for a --by field and query.
func matcherFor(by, query string) (contact.Matcher, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}
	switch by {
	case "id":
		id, err := strconv.Atoi(query)
		if err != nil {
			return nil, fmt.Errorf("id must be a number, got %q", query)
		}
		return contact.ByID(id), nil
	case "name":
		return contact.ByName(query), nil
	case "phone":
		return contact.ByPhone(query), nil
	case "email":
		return contact.ByEmail(query), nil
	default:
		return nil, fmt.Errorf("unknown search field %q: must be one of %v", by, SearchFields)
	}
}
