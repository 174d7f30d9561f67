package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/textdigest/config"
	"github.com/byte4ever/textdigest/digest"
	"github.com/byte4ever/textdigest/lines"
	"github.com/byte4ever/textdigest/report"
)

// writeTemp creates a temporary file with content and
// returns its path.
func writeTemp(
	tb testing.TB,
	content string,
) string {
	tb.Helper()

	pa := filepath.Join(tb.TempDir(), "textdigest.yaml")
	require.NoError(
		tb,
		os.WriteFile(pa, []byte(content), 0o600),
	)

	return pa
}

func TestDefault(t *testing.T) {
	t.Parallel()

	st := config.Default()

	assert.Equal(t, lines.Config{Algorithm: digest.SHA1}, st.Lines)
	assert.Equal(t, report.FormatPlain, st.Format)
	assert.Zero(t, st.Parallelism)
	require.NoError(t, st.Validate())
}

func TestLoad_empty_path_returns_default(t *testing.T) {
	t.Parallel()

	st, err := config.Load("")

	require.NoError(t, err)
	assert.Equal(t, config.Default(), st)
}

func TestLoad_full_file(t *testing.T) {
	t.Parallel()

	pa := writeTemp(t, `
multiline: true
keep_empty_lines: true
trim: true
algorithm: sha-384
parallelism: 3
format: template
template: "{digest}  {line}"
`)

	st, err := config.Load(pa)

	require.NoError(t, err)
	assert.Equal(t, lines.Config{
		Multiline:      true,
		KeepEmptyLines: true,
		Trim:           true,
		Algorithm:      digest.SHA384,
	}, st.Lines)
	assert.Equal(t, 3, st.Parallelism)
	assert.Equal(t, report.FormatTemplate, st.Format)
	assert.Equal(t, "{digest}  {line}", st.Template)
}

func TestLoad_partial_file_keeps_defaults(t *testing.T) {
	t.Parallel()

	pa := writeTemp(t, "trim: true\n")

	st, err := config.Load(pa)

	require.NoError(t, err)
	assert.True(t, st.Lines.Trim)
	assert.False(t, st.Lines.Multiline)
	assert.Equal(t, digest.SHA1, st.Lines.Algorithm)
	assert.Equal(t, report.FormatPlain, st.Format)
}

func TestLoad_missing_file(t *testing.T) {
	t.Parallel()

	_, err := config.Load("/nonexistent/textdigest.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestParse_empty_document(t *testing.T) {
	t.Parallel()

	st, err := config.Parse([]byte("  \n"))

	require.NoError(t, err)
	assert.Equal(t, config.Default(), st)
}

func TestParse_rejects_invalid_values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"unknown algorithm", "algorithm: md5\n"},
		{"unknown format", "format: xml\n"},
		{"negative parallelism", "parallelism: -2\n"},
		{"template without text", "format: template\n"},
		{"unknown key", "multilines: true\n"},
		{"wrong type", "trim: [1, 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Parse([]byte(tt.doc))

			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestValidate_invalid_algorithm(t *testing.T) {
	t.Parallel()

	st := config.Default()
	st.Lines.Algorithm = digest.Algorithm(8)

	require.ErrorIs(t, st.Validate(), config.ErrInvalid)
}
