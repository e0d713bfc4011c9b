package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/contacts/internal/testutil"
)

// execute runs the root command with args and scripted stdin.
func execute(t *testing.T, stdin []string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(testutil.Input(stdin...))
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeContactsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contacts_db.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "contacts", cmd.Use)
	assert.Contains(t, cmd.Long, "interactive menu")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"list", "search"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	fileFlag := cmd.PersistentFlags().Lookup("file")
	require.NotNil(t, fileFlag)
	assert.Equal(t, "contacts_db.txt", fileFlag.DefValue)

	backendFlag := cmd.PersistentFlags().Lookup("backend")
	require.NotNil(t, backendFlag)
	assert.Equal(t, "tsv", backendFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, nil, "list", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestShell_AddPersistsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts_db.txt")

	out, _, err := execute(t, []string{"1", "Ann", "555", "ann@example.com", "1 Main St", "7"}, "--file", path)
	require.NoError(t, err)

	assert.Contains(t, out, "No database file found. A new one will be created: "+path)
	assert.Contains(t, out, "Contact added successfully. ID = 1")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1\tAnn\t555\tann@example.com\t1 Main St\n", string(data))
}

func TestShell_NextIDFollowsLoadedMax(t *testing.T) {
	path := writeContactsFile(t, "4\tAnn\t1\ta@x\tA\n9\tBen\t2\tb@x\tB\n")

	out, _, err := execute(t, []string{"1", "Cy", "3", "c@x", "C", "7"}, "--file", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Loaded 2 contact(s)")
	assert.Contains(t, out, "ID = 10")
}

func TestShell_SkipsMalformedLines(t *testing.T) {
	path := writeContactsFile(t, "1\tAnn\t555\ta@x\tMain\n2\tBroken\t556\n")

	out, _, err := execute(t, []string{"2", "7"}, "--file", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Loaded 1 contact(s)")
	assert.Contains(t, out, "Skipped 1 unreadable line(s)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1\tAnn\t555\ta@x\tMain\n", string(data), "exit save rewrites only what parsed")
}

func TestShell_DeleteCancelledLeavesFileUnchanged(t *testing.T) {
	content := "1\tAnn\t555\ta@x\tMain\n2\tBen\t556\tb@x\tSide\n"
	path := writeContactsFile(t, content)

	out, _, err := execute(t, []string{"5", "2", "n", "7"}, "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestShell_SortRewritesFile(t *testing.T) {
	path := writeContactsFile(t, "1\tBob\t1\tb@x\tB\n2\talice\t2\ta@x\tA\n")

	_, _, err := execute(t, []string{"6", "7"}, "--file", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2\talice\t2\ta@x\tA\n1\tBob\t1\tb@x\tB\n", string(data))
}

func TestShell_SQLiteBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.db")

	_, _, err := execute(t, []string{"1", "Ann", "555", "a@x", "Main", "7"}, "--backend", "sqlite", "--file", path)
	require.NoError(t, err)

	out, _, err := execute(t, nil, "list", "--backend", "sqlite", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Ann")
}

func TestShell_UnreadableFileIsCommandError(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, []string{"7"}, "--file", dir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "remove or repair")
}

func TestShell_InvalidBackend(t *testing.T) {
	_, _, err := execute(t, []string{"7"}, "--backend", "csv", "--file", filepath.Join(t.TempDir(), "x"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestShell_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "from-config.txt")
	cfgPath := filepath.Join(dir, "contacts.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("file: "+dataPath+"\n"), 0o644))

	_, _, err := execute(t, []string{"1", "Ann", "1", "a@x", "A", "7"}, "--config", cfgPath)
	require.NoError(t, err)

	_, err = os.Stat(dataPath)
	assert.NoError(t, err, "config file chose the data path")
}

func TestShell_VerboseLogsToStderr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts_db.txt")

	out, errOut, err := execute(t, []string{"7"}, "--file", path, "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "contacts loaded")
	assert.NotContains(t, out, "contacts loaded")
}
