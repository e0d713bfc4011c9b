package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readLine prompts and returns the next input line without its terminator.
// Lines have no length limit. End of input is io.EOF.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		fmt.Fprintln(s.out)
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// readInt re-prompts until the trimmed line parses as an integer.
func (s *Shell) readInt(prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, nil
		}
		s.failf("Please enter a valid number.")
	}
}

// readRequired re-prompts until a non-blank value is entered. The value is trimmed.
func (s *Shell) readRequired(prompt string) (string, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return "", err
		}
		if v := strings.TrimSpace(line); v != "" {
			return v, nil
		}
		s.failf("This field cannot be empty.")
	}
}

// readOptional returns the line as typed; blank means keep the old value.
func (s *Shell) readOptional(prompt string) (string, error) {
	return s.readLine(prompt)
}
