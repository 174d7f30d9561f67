package lines_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/byte4ever/textdigest/lines"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{""}},
		{"single", "abc", []string{"abc"}},
		{"lf", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb", []string{"a", "b"}},
		{"mixed", "a\r\nb\nc", []string{"a", "b", "c"}},
		{"trailing terminator", "a\n", []string{"a", ""}},
		{"leading terminator", "\na", []string{"", "a"}},
		{"blank middle", "a\n\nb", []string{"a", "", "b"}},
		{"lone cr kept", "a\rb", []string{"a\rb"}},
		{"trailing cr kept", "a\r\nb\r", []string{"a", "b\r"}},
		{"cr before crlf", "\r\r\n", []string{"\r", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, lines.Split(tt.input))
		})
	}
}

func TestTrim(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", lines.Trim(" x "))
	assert.Equal(t, "x y", lines.Trim("\t x y \r\n"))
	assert.Equal(t, "x", lines.Trim("\u00a0\uFEFFx\u2028"))
	assert.Equal(t, "", lines.Trim(" \t\n "))
	assert.Equal(t, "a\rb", lines.Trim("a\rb"))
	assert.Equal(t, "\u0085x\u0085", lines.Trim("\u0085x\u0085"))
	assert.Equal(t, "\u0085x", lines.Trim(" \u0085x\t"))
}

func FuzzSplit(f *testing.F) {
	f.Add("a\nb")
	f.Add("a\r\nb\r\n")
	f.Add("")
	f.Add("\r")

	f.Fuzz(func(t *testing.T, input string) {
		parts := lines.Split(input)

		assert.NotEmpty(t, parts)

		for _, p := range parts {
			assert.NotContains(t, p, "\n")
		}
	})
}
