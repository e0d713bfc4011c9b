package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/contacts/internal/contact"
)

const searchFixture = "1\tAlice Smith\t555-0100\tAlice@Example.com\tA\n" +
	"2\tBob\t555-0199\tbob@work.org\tB\n" +
	"3\tMalice\tABC-1\tm@example.com\tC\n"

func searchIDs(t *testing.T, args ...string) []int {
	t.Helper()
	path := writeContactsFile(t, searchFixture)

	out, _, err := execute(t, nil, append([]string{"search", "--format", "json", "--file", path}, args...)...)
	require.NoError(t, err)

	var resp struct {
		Data []contact.Contact `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	ids := []int{}
	for _, c := range resp.Data {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestSearch_Fields(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []int
	}{
		{"default is name", []string{"ALICE"}, []int{1, 3}},
		{"id", []string{"--by", "id", "2"}, []int{2}},
		{"phone case-sensitive", []string{"--by", "phone", "abc"}, []int{}},
		{"phone", []string{"--by", "phone", "555"}, []int{1, 2}},
		{"email", []string{"--by", "email", "EXAMPLE"}, []int{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, searchIDs(t, tt.args...))
		})
	}
}

func TestSearch_NoMatchText(t *testing.T) {
	out, _, err := execute(t, nil, "search", "--file", writeContactsFile(t, searchFixture), "zed")
	require.NoError(t, err)
	assert.Contains(t, out, "No matching contacts found.")
}

func TestSearch_InvalidQuery(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown field", []string{"--by", "zip", "x"}},
		{"non-numeric id", []string{"--by", "id", "abc"}},
		{"blank query", []string{"   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"search", "--file", writeContactsFile(t, searchFixture)}, tt.args...)
			out, _, err := execute(t, nil, args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, out, "Error [E001]")
		})
	}
}

func TestSearch_RequiresQuery(t *testing.T) {
	_, _, err := execute(t, nil, "search")
	require.Error(t, err)
}

func TestMatcherFor(t *testing.T) {
	m, err := matcherFor("id", " 7 ")
	require.NoError(t, err)
	assert.True(t, m(contact.Contact{ID: 7}))
	assert.False(t, m(contact.Contact{ID: 8}))
}
