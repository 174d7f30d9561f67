package lines

import (
	"strings"
	"unicode"
)

// Split breaks input into logical lines. Both "\r\n" and a lone
// "\n" terminate a line; a lone "\r" is ordinary text. Empty
// leading and trailing lines are preserved, so "a\n" yields
// ["a", ""] and "" yields [""].
func Split(input string) []string {
	parts := strings.Split(input, "\n")

	// Only a "\r" followed by "\n" belongs to a terminator,
	// so the last part keeps its trailing "\r".
	for i := range len(parts) - 1 {
		parts[i] = strings.TrimSuffix(parts[i], "\r")
	}

	return parts
}

// Trim removes leading and trailing whitespace, including line
// terminators, non-breaking spaces and the byte order mark.
// U+0085 (NEL) is not whitespace here and is kept.
func Trim(s string) string {
	return strings.TrimFunc(s, isTrimSpace)
}

func isTrimSpace(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
}
