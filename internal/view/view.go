// Package view renders contacts as a fixed-width console table.
package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/roach88/contacts/internal/contact"
)

// Ellipsis marks a truncated cell.
const Ellipsis = "..."

// Column widths. A cell wider than its column is truncated.
const (
	WidthID      = 5
	WidthName    = 20
	WidthPhone   = 15
	WidthEmail   = 25
	WidthAddress = 30
)

// Rule is the line printed under the header.
var Rule = strings.Repeat("-", 91)

// Truncate shortens s to at most max display columns, ending in Ellipsis when
// anything was cut.
func Truncate(s string, max int) string {
	if runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, Ellipsis)
}

// HeaderLine returns the column titles padded to their widths.
func HeaderLine() string {
	return join("ID", "NAME", "PHONE", "EMAIL", "ADDRESS")
}

// Row renders one contact padded to the column widths.
func Row(c contact.Contact) string {
	return join(
		strconv.Itoa(c.ID),
		Truncate(c.Name, WidthName),
		Truncate(c.Phone, WidthPhone),
		Truncate(c.Email, WidthEmail),
		Truncate(c.Address, WidthAddress),
	)
}

// Header writes the title line and rule.
func Header(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", HeaderLine(), Rule)
	return err
}

// Table writes the header followed by one row per contact.
func Table(w io.Writer, contacts []contact.Contact) error {
	if err := Header(w); err != nil {
		return err
	}
	for _, c := range contacts {
		if _, err := fmt.Fprintln(w, Row(c)); err != nil {
			return err
		}
	}
	return nil
}

func join(id, name, phone, email, address string) string {
	return strings.Join([]string{
		runewidth.FillRight(id, WidthID),
		runewidth.FillRight(name, WidthName),
		runewidth.FillRight(phone, WidthPhone),
		runewidth.FillRight(email, WidthEmail),
		runewidth.FillRight(address, WidthAddress),
	}, " ")
}
