package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasttemplate"

	"github.com/byte4ever/textdigest/lines"
)

// Format names an output rendering.
type Format string

// Supported formats.
const (
	FormatPlain    Format = "plain"
	FormatJSON     Format = "json"
	FormatTemplate Format = "template"
)

// ErrUnknownFormat is returned by ParseFormat for names outside
// the supported set.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat validates a format name. The empty name selects
// FormatPlain.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatPlain:
		return FormatPlain, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatTemplate:
		return FormatTemplate, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
}

// Renderer turns line digests into display text.
type Renderer struct {
	Format Format

	// Template is expanded once per line for FormatTemplate.
	// Tags are {digest}, {line}, {index} and {algorithm}.
	Template string
}

// document is the JSON rendering.
type document struct {
	Algorithm      string      `json:"algorithm"`
	Multiline      bool        `json:"multiline"`
	KeepEmptyLines bool        `json:"keep_empty_lines"`
	Trim           bool        `json:"trim"`
	Output         string      `json:"output"`
	Digests        []lineEntry `json:"digests"`
}

// lineEntry is one digested line. Line is 1-based.
type lineEntry struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Digest string `json:"digest"`
}

// Render formats lds, produced with cfg, without a trailing
// newline.
func (re Renderer) Render(
	cfg lines.Config,
	lds []lines.LineDigest,
) (string, error) {
	const errCtx = "rendering report"

	switch re.Format {
	case "", FormatPlain:
		return lines.Join(lds), nil
	case FormatJSON:
		out, err := renderJSON(cfg, lds)
		if err != nil {
			return "", fmt.Errorf("%s: %w", errCtx, err)
		}

		return out, nil
	case FormatTemplate:
		out, err := renderTemplate(re.Template, cfg, lds)
		if err != nil {
			return "", fmt.Errorf("%s: %w", errCtx, err)
		}

		return out, nil
	default:
		return "", fmt.Errorf(
			"%s: %w %q", errCtx, ErrUnknownFormat, re.Format,
		)
	}
}

func renderJSON(
	cfg lines.Config,
	lds []lines.LineDigest,
) (string, error) {
	doc := document{
		Algorithm:      cfg.Algorithm.String(),
		Multiline:      cfg.Multiline,
		KeepEmptyLines: cfg.KeepEmptyLines,
		Trim:           cfg.Trim,
		Output:         lines.Join(lds),
		Digests:        make([]lineEntry, 0, len(lds)),
	}

	for _, ld := range lds {
		doc.Digests = append(doc.Digests, lineEntry{
			Line:   ld.Index + 1,
			Text:   ld.Text,
			Digest: ld.Hex,
		})
	}

	by, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling json: %w", err)
	}

	return string(by), nil
}

// renderTemplate expands tpl with single-brace tags for every
// line. Unknown tags expand to the empty string.
func renderTemplate(
	tpl string,
	cfg lines.Config,
	lds []lines.LineDigest,
) (string, error) {
	if tpl == "" {
		return "", errors.New("empty template")
	}

	tmpl, err := fasttemplate.NewTemplate(tpl, "{", "}")
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	rendered := make([]string, 0, len(lds))

	for _, ld := range lds {
		rendered = append(rendered, tmpl.ExecuteString(
			map[string]interface{}{
				"digest":    ld.Hex,
				"line":      ld.Text,
				"index":     strconv.Itoa(ld.Index + 1),
				"algorithm": cfg.Algorithm.String(),
			},
		))
	}

	return strings.Join(rendered, "\n"), nil
}
