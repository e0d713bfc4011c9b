package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/contacts/internal/contact"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)
	return buf.String()
}

func assertOutputContains(output string, a Assertion) error {
	if strings.Contains(output, a.Text) {
		return nil
	}
	return &AssertionError{
		Type:     AssertOutputContains,
		Expected: fmt.Sprintf("output containing %q", a.Text),
		Actual:   "not found in transcript",
	}
}

func assertOutputCount(output string, a Assertion) error {
	n := strings.Count(output, a.Text)
	if n == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertOutputCount,
		Expected: fmt.Sprintf("%q exactly %d time(s)", a.Text, a.Count),
		Actual:   fmt.Sprintf("%d time(s)", n),
	}
}

func assertFinalIDs(final []contact.Contact, a Assertion) error {
	ids := make([]int, len(final))
	for i, c := range final {
		ids[i] = c.ID
	}
	if slices.Equal(ids, a.IDs) {
		return nil
	}
	return &AssertionError{
		Type:     AssertFinalIDs,
		Expected: fmt.Sprintf("ids %v", a.IDs),
		Actual:   fmt.Sprintf("ids %v", ids),
	}
}

func assertFinalState(final []contact.Contact, a Assertion) error {
	i := slices.IndexFunc(final, func(c contact.Contact) bool { return c.ID == a.ID })
	if i < 0 {
		return &AssertionError{
			Type:     AssertFinalState,
			Expected: fmt.Sprintf("contact %d", a.ID),
			Actual:   "not in final file",
		}
	}

	var mismatches []string
	for _, field := range sortedKeys(a.Expect) {
		got := stateFields[field](final[i])
		if got != a.Expect[field] {
			mismatches = append(mismatches, fmt.Sprintf("%s=%q (want %q)", field, got, a.Expect[field]))
		}
	}
	if len(mismatches) == 0 {
		return nil
	}
	return &AssertionError{
		Type:     AssertFinalState,
		Expected: fmt.Sprintf("contact %d with %v", a.ID, a.Expect),
		Actual:   strings.Join(mismatches, ", "),
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// EvaluateAssertions runs every assertion against result and returns the
// failure messages, in assertion order.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertOutputContains:
			err = assertOutputContains(result.Output, assertion)
		case AssertOutputCount:
			err = assertOutputCount(result.Output, assertion)
		case AssertFinalIDs:
			err = assertFinalIDs(result.Final, assertion)
		case AssertFinalState:
			err = assertFinalState(result.Final, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
