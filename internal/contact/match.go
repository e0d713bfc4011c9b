package contact

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Matcher selects contacts for Find.
type Matcher func(Contact) bool

// ByID matches the contact with exactly this id.
func ByID(id int) Matcher {
	return func(c Contact) bool { return c.ID == id }
}

// ByName matches contacts whose name contains substr, ignoring case.
func ByName(substr string) Matcher {
	needle := fold(substr)
	return func(c Contact) bool { return strings.Contains(fold(c.Name), needle) }
}

// ByPhone matches contacts whose phone contains substr. Case-sensitive.
func ByPhone(substr string) Matcher {
	return func(c Contact) bool { return strings.Contains(c.Phone, substr) }
}

// ByEmail matches contacts whose email contains substr, ignoring case.
func ByEmail(substr string) Matcher {
	needle := fold(substr)
	return func(c Contact) bool { return strings.Contains(fold(c.Email), needle) }
}

// fold lower-cases s with locale-neutral rules. A Caser is stateful, so a
// fresh one is built per call.
func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}
