package contact

import "strings"

// Contact is one entry in the address book.
type Contact struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Phone   string `json:"phone" yaml:"phone"`
	Email   string `json:"email" yaml:"email"`
	Address string `json:"address" yaml:"address"`
}

// Patch carries replacement values for Update.
// A field that is blank after trimming leaves the stored value untouched.
type Patch struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// IsEmpty reports whether applying the patch would change nothing.
func (p Patch) IsEmpty() bool {
	return isBlank(p.Name) && isBlank(p.Phone) && isBlank(p.Email) && isBlank(p.Address)
}

// apply overwrites the non-blank fields of c with trimmed patch values.
func (p Patch) apply(c *Contact) {
	if !isBlank(p.Name) {
		c.Name = strings.TrimSpace(p.Name)
	}
	if !isBlank(p.Phone) {
		c.Phone = strings.TrimSpace(p.Phone)
	}
	if !isBlank(p.Email) {
		c.Email = strings.TrimSpace(p.Email)
	}
	if !isBlank(p.Address) {
		c.Address = strings.TrimSpace(p.Address)
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
