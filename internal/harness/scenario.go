package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/contacts/internal/contact"
)

// Scenario is one scripted menu session plus the checks to run afterwards.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Contacts are saved to the file before the session starts.
	Contacts []contact.Contact `yaml:"contacts,omitempty"`

	// File is written verbatim before the session. Mutually exclusive
	// with Contacts.
	File string `yaml:"file,omitempty"`

	// Input is the console input, one entry per line. Running out of
	// input ends the session like choosing Exit.
	Input []string `yaml:"input"`

	// Assertions validate the transcript and the final file.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates the transcript or the final contact list.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Text is the transcript fragment (output_contains, output_count).
	Text string `yaml:"text,omitempty"`

	// Count is the expected number of occurrences (output_count).
	Count int `yaml:"count,omitempty"`

	// IDs is the expected id order (final_ids).
	IDs []int `yaml:"ids,omitempty"`

	// ID selects the contact (final_state).
	ID int `yaml:"id,omitempty"`

	// Expect maps field names to values (final_state). Subset match.
	Expect map[string]string `yaml:"expect,omitempty"`
}

// Assertion type constants.
const (
	AssertOutputContains = "output_contains"
	AssertOutputCount    = "output_count"
	AssertFinalIDs       = "final_ids"
	AssertFinalState     = "final_state"
)

// stateFields are the keys accepted in a final_state expect map.
var stateFields = map[string]func(contact.Contact) string{
	"name":    func(c contact.Contact) string { return c.Name },
	"phone":   func(c contact.Contact) string { return c.Phone },
	"email":   func(c contact.Contact) string { return c.Email },
	"address": func(c contact.Contact) string { return c.Address },
}

// LoadScenario reads and parses a scenario YAML file.
// Unknown fields are rejected so typos surface as errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Contacts) > 0 && s.File != "" {
		return fmt.Errorf("contacts and file are mutually exclusive")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertOutputContains:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for output_contains", index)
		}
	case AssertOutputCount:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for output_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for output_count", index)
		}
	case AssertFinalIDs:
		if a.IDs == nil {
			return fmt.Errorf("assertions[%d]: ids is required for final_ids (use [] for none)", index)
		}
	case AssertFinalState:
		if len(a.Expect) == 0 {
			return fmt.Errorf("assertions[%d]: expect is required for final_state", index)
		}
		for field := range a.Expect {
			if _, ok := stateFields[field]; !ok {
				return fmt.Errorf("assertions[%d]: unknown field %q in final_state", index, field)
			}
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
