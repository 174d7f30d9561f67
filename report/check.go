package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMismatch is returned by Check when the outputs differ.
var ErrMismatch = errors.New("digest mismatch")

// Check compares a previously stored output against a fresh
// one. Surrounding whitespace on each line and trailing line
// terminators are ignored. The error names the first differing
// 1-based line.
func Check(expected string, actual string) error {
	const errCtx = "checking digests"

	exp := splitOutput(expected)
	act := splitOutput(actual)

	for i := range max(len(exp), len(act)) {
		if i >= len(exp) || i >= len(act) {
			return fmt.Errorf(
				"%s: line %d: %w: %d lines expected, got %d",
				errCtx, i+1, ErrMismatch, len(exp), len(act),
			)
		}

		if strings.TrimSpace(exp[i]) != strings.TrimSpace(act[i]) {
			return fmt.Errorf(
				"%s: line %d: %w", errCtx, i+1, ErrMismatch,
			)
		}
	}

	return nil
}

func splitOutput(s string) []string {
	s = strings.TrimRight(s, "\r\n")
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}
