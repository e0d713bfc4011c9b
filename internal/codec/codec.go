package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roach88/contacts/internal/contact"
)

// FieldCount is the number of tab-separated fields in every record line.
const FieldCount = 5

// maxLineSize bounds a single record line when decoding. Longer lines are
// skipped as malformed.
const maxLineSize = 1 << 20

// ErrMalformed marks a line that cannot be decoded into a contact.
var ErrMalformed = errors.New("malformed record")

// Stats summarizes a Decode pass.
type Stats struct {
	Lines      int // non-blank lines read
	Loaded     int // contacts decoded
	Skipped    int // malformed or oversized lines dropped
	Duplicates int // well-formed lines dropped because their id was already loaded
}

// EncodeLine renders one contact without a line terminator.
func EncodeLine(c contact.Contact) string {
	return strings.Join([]string{
		strconv.Itoa(c.ID),
		Escape(c.Name),
		Escape(c.Phone),
		Escape(c.Email),
		Escape(c.Address),
	}, "\t")
}

// DecodeLine parses one record line. The line must not include its terminator.
func DecodeLine(line string) (contact.Contact, error) {
	parts := strings.Split(line, "\t")
	if len(parts) != FieldCount {
		return contact.Contact{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformed, FieldCount, len(parts))
	}

	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return contact.Contact{}, fmt.Errorf("%w: invalid id %q", ErrMalformed, parts[0])
	}

	return contact.Contact{
		ID:      id,
		Name:    Unescape(parts[1]),
		Phone:   Unescape(parts[2]),
		Email:   Unescape(parts[3]),
		Address: Unescape(parts[4]),
	}, nil
}

// Encode writes every contact as one LF-terminated line.
func Encode(w io.Writer, contacts []contact.Contact) error {
	bw := bufio.NewWriter(w)
	for _, c := range contacts {
		if _, err := bw.WriteString(EncodeLine(c)); err != nil {
			return fmt.Errorf("encode contact %d: %w", c.ID, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("encode contact %d: %w", c.ID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Decode reads records until EOF, skipping blank and malformed lines.
// Only read errors are returned; bad records are reported through Stats.
func Decode(r io.Reader) ([]contact.Contact, Stats, error) {
	var (
		stats    Stats
		contacts []contact.Contact
		seen     = make(map[int]bool)
	)

	br := bufio.NewReader(r)
	for {
		line, tooLong, err := readLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return contacts, stats, fmt.Errorf("decode: %w", err)
		}
		if !tooLong && strings.TrimSpace(line) == "" {
			continue
		}
		stats.Lines++

		if tooLong {
			stats.Skipped++
			continue
		}
		c, err := DecodeLine(line)
		if err != nil {
			stats.Skipped++
			continue
		}
		if seen[c.ID] {
			stats.Duplicates++
			continue
		}
		seen[c.ID] = true
		contacts = append(contacts, c)
	}

	stats.Loaded = len(contacts)
	return contacts, stats, nil
}

// readLine returns the next line without its LF or CRLF terminator. A line
// longer than maxLineSize is consumed and dropped, reported with tooLong set.
// The final line need not be terminated.
func readLine(br *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, rerr := br.ReadLine()
		if rerr != nil {
			if errors.Is(rerr, io.EOF) && (len(buf) > 0 || tooLong) {
				return string(buf), tooLong, nil
			}
			return "", false, rerr
		}
		if !tooLong {
			if len(buf)+len(chunk) > maxLineSize {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}
