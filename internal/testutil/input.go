package testutil

import (
	"io"
	"strings"
)

// Input joins console lines into a reader, newline-terminating each one.
//
//	sh := shell.New(testutil.Input("1", "Ann", "555", "a@x", "Main St", "7"), out, st)
func Input(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
