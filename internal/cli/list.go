package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/contacts/internal/contact"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Sort bool
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every contact",
		Long: `Print every contact in stored order without opening the menu.

--sort orders the output by name (case-insensitive) without rewriting the
contacts file.

Example:
  contacts list
  contacts list --sort --format yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listContacts(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Sort, "sort", false, "order by name instead of stored order")

	return cmd
}

func listContacts(opts *ListOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	sess, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return err
	}
	defer sess.Close()

	all := sess.store.All()
	formatter.VerboseLog("Loaded %d contact(s) from %s", len(all), sess.backend.Path())
	if opts.Sort {
		contact.SortByName(all)
	}
	return formatter.Contacts(all, "No contacts found.")
}
