package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/contacts/internal/shell"
	"github.com/roach88/contacts/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" | "json" | "yaml"
	ConfigFile string
	File       string
	Backend    string
	LogLevel   string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command. Without a subcommand it starts
// the interactive menu.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Personal contact manager",
		Long: `A console contact manager backed by a local flat file.

Run without arguments to open the interactive menu. Every change is written
back to the contacts file immediately.

Example:
  contacts
  contacts --file ~/friends.txt
  contacts list --sort --format json
  contacts search --by email example.com`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(opts, cmd)
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	pf.StringVar(&opts.Format, "format", "text", "output format for list/search (text|json|yaml)")
	pf.StringVar(&opts.ConfigFile, "config", "", "config file (default ./contacts.yaml if present)")
	pf.StringVar(&opts.File, "file", store.DefaultPath, "contacts file or database path")
	pf.StringVar(&opts.Backend, "backend", string(store.KindFile), "storage backend (tsv|sqlite)")
	pf.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))

	return cmd
}

func runShell(opts *RootOptions, cmd *cobra.Command) error {
	sess, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), sess.store, shell.WithLogger(sess.log))
	sh.ReportLoad(sess.backend.Path(), sess.loaded)
	fmt.Fprintln(cmd.OutOrStdout())

	if err := sh.Run(cmd.Context()); err != nil {
		return WrapExitError(ExitFailure, "interactive session failed", err)
	}
	return nil
}
