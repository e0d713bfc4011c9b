package main

import (
	"context"
	"fmt"
	"os"

	"github.com/roach88/contacts/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "contacts: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
