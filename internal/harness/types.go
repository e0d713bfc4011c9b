package harness

import "github.com/roach88/contacts/internal/contact"

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every assertion holds.
	Pass bool `json:"pass"`

	// Output is the full console transcript.
	Output string `json:"output"`

	// Final holds the contacts reloaded from the file after the session.
	Final []contact.Contact `json:"final"`

	// File is the raw file content after the session.
	File string `json:"file"`

	// Errors contains assertion failure messages.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Final:  []contact.Contact{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
