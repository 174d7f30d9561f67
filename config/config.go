package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/byte4ever/textdigest/digest"
	"github.com/byte4ever/textdigest/lines"
	"github.com/byte4ever/textdigest/report"
)

// ErrInvalid is returned for configuration values that fail
// validation.
var ErrInvalid = errors.New("invalid configuration")

// Settings is the resolved configuration of a textdigest run.
type Settings struct {
	// Lines controls splitting, normalization and hashing.
	Lines lines.Config

	// Parallelism bounds concurrent line hashing. 0 means
	// one worker per CPU.
	Parallelism int

	// Format selects the output rendering.
	Format report.Format

	// Template is used when Format is report.FormatTemplate.
	Template string
}

// fileSettings mirrors the YAML document. Pointers distinguish
// an absent key from an explicit false.
type fileSettings struct {
	Multiline      *bool  `yaml:"multiline"`
	KeepEmptyLines *bool  `yaml:"keep_empty_lines"`
	Trim           *bool  `yaml:"trim"`
	Algorithm      string `yaml:"algorithm"`
	Parallelism    *int   `yaml:"parallelism"`
	Format         string `yaml:"format"`
	Template       string `yaml:"template"`
}

// Default returns the settings used when nothing is configured:
// every toggle off, SHA-1, plain output.
func Default() Settings {
	return Settings{
		Lines:  lines.Config{Algorithm: digest.SHA1},
		Format: report.FormatPlain,
	}
}

// Load reads the YAML file at path. An empty path returns
// Default.
func Load(path string) (Settings, error) {
	const errCtx = "loading config"

	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	st, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf(
			"%s: %s: %w", errCtx, path, err,
		)
	}

	return st, nil
}

// Parse decodes a YAML document over Default and validates the
// result. Unknown keys are rejected.
func Parse(data []byte) (Settings, error) {
	const errCtx = "parsing config"

	st := Default()

	if len(bytes.TrimSpace(data)) == 0 {
		return st, nil
	}

	var fs fileSettings
	if err := yaml.UnmarshalWithOptions(
		data, &fs, yaml.DisallowUnknownField(),
	); err != nil {
		return Settings{}, fmt.Errorf(
			"%s: %w: %w", errCtx, ErrInvalid, err,
		)
	}

	if err := fs.apply(&st); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := st.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	return st, nil
}

func (fs fileSettings) apply(st *Settings) error {
	if fs.Multiline != nil {
		st.Lines.Multiline = *fs.Multiline
	}

	if fs.KeepEmptyLines != nil {
		st.Lines.KeepEmptyLines = *fs.KeepEmptyLines
	}

	if fs.Trim != nil {
		st.Lines.Trim = *fs.Trim
	}

	if fs.Parallelism != nil {
		st.Parallelism = *fs.Parallelism
	}

	if fs.Algorithm != "" {
		alg, err := digest.ParseAlgorithm(fs.Algorithm)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}

		st.Lines.Algorithm = alg
	}

	if fs.Format != "" {
		format, err := report.ParseFormat(fs.Format)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}

		st.Format = format
	}

	if fs.Template != "" {
		st.Template = fs.Template
	}

	return nil
}

// Validate checks cross-field constraints.
func (st Settings) Validate() error {
	if !st.Lines.Algorithm.Valid() {
		return fmt.Errorf(
			"%w: algorithm %s", ErrInvalid, st.Lines.Algorithm,
		)
	}

	if st.Parallelism < 0 {
		return fmt.Errorf(
			"%w: parallelism %d is negative",
			ErrInvalid, st.Parallelism,
		)
	}

	if _, err := report.ParseFormat(string(st.Format)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if st.Format == report.FormatTemplate && st.Template == "" {
		return fmt.Errorf(
			"%w: template format requires a template", ErrInvalid,
		)
	}

	return nil
}
