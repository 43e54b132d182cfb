package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompt writes label to w and reads one line from r, split on whitespace.
//
// A last line without a trailing newline is still returned. io.EOF is only
// returned when nothing at all could be read.
func Prompt(w io.Writer, r *bufio.Reader, label string) ([]string, error) {
	if _, err := fmt.Fprint(w, label); err != nil {
		return nil, fmt.Errorf("fail to write prompt: %w", err)
	}
	line, err := r.ReadString('\n')
	if err != nil {
		// If we get EOF before any input, propagate it directly so the caller
		// knows the input is closed.
		if errors.Is(err, io.EOF) {
			if line == "" {
				return nil, err
			}
		} else {
			return nil, fmt.Errorf("fail to read line: %w", err)
		}
	}
	return strings.Fields(line), nil
}
