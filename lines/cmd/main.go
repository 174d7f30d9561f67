// Command textdigest prints the SHA digest of its input, or one
// digest per line in multiline mode. Settings come from an
// optional YAML file and are overridden by explicitly set flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/byte4ever/textdigest/config"
	"github.com/byte4ever/textdigest/digest"
	"github.com/byte4ever/textdigest/lines"
	"github.com/byte4ever/textdigest/report"
)

// options holds the raw flag values.
type options struct {
	configPath  string
	multiline   bool
	keepEmpty   bool
	trim        bool
	algorithm   string
	parallelism int
	format      string
	template    string
	input       string
	output      string
	check       string
	verbose     bool
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt,
	)

	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout)

	stop()

	if err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout io.Writer,
) error {
	const errCtx = "textdigest"

	var opts options

	fs := newFlagSet(&opts)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if opts.verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	st, err := resolveSettings(fs, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	input, err := readInput(opts.input, stdin)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	pr := lines.Processor{Parallelism: st.Parallelism}

	lds, err := pr.Digests(ctx, input, st.Lines)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	slog.Debug(
		"digested input",
		"bytes", len(input),
		"digests", len(lds),
		"algorithm", st.Lines.Algorithm.String(),
	)

	if opts.check != "" {
		return checkOutput(opts.check, lines.Join(lds))
	}

	re := report.Renderer{Format: st.Format, Template: st.Template}

	rendered, err := re.Render(st.Lines, lds)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := writeOutput(opts.output, stdout, rendered); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func newFlagSet(opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("textdigest", flag.ContinueOnError)

	fs.StringVar(
		&opts.configPath, "config", "",
		"YAML settings file",
	)
	fs.BoolVar(
		&opts.multiline, "multiline", false,
		"digest each line separately",
	)
	fs.BoolVar(
		&opts.keepEmpty, "keep_empty_lines", false,
		"digest empty lines instead of dropping them",
	)
	fs.BoolVar(
		&opts.trim, "trim", false,
		"strip surrounding whitespace before hashing",
	)
	fs.StringVar(
		&opts.algorithm, "algorithm", digest.SHA1.String(),
		"SHA-1, SHA-256, SHA-384 or SHA-512",
	)
	fs.IntVar(
		&opts.parallelism, "parallelism", 0,
		"concurrent line hashing (0: one per CPU)",
	)
	fs.StringVar(
		&opts.format, "format", string(report.FormatPlain),
		"output format: plain, json or template",
	)
	fs.StringVar(
		&opts.template, "template", "",
		"per-line template with {digest}, {line}, {index}, {algorithm}",
	)
	fs.StringVar(
		&opts.input, "input", "",
		"input file path (default: stdin)",
	)
	fs.StringVar(
		&opts.output, "output", "",
		"output file path (default: stdout)",
	)
	fs.StringVar(
		&opts.check, "check", "",
		"compare the plain digest list against this file instead "+
			"of printing (excludes -format, -template, -output)",
	)
	fs.BoolVar(
		&opts.verbose, "verbose", false,
		"enable debug logging",
	)

	return fs
}

// checkExcluded names the flags that only affect printed output
// and therefore conflict with -check.
var checkExcluded = map[string]bool{
	"format":   true,
	"template": true,
	"output":   true,
}

// resolveSettings loads the config file and applies the flags
// that were set explicitly on the command line.
func resolveSettings(
	fs *flag.FlagSet,
	opts options,
) (config.Settings, error) {
	const errCtx = "resolving settings"

	st, err := config.Load(opts.configPath)
	if err != nil {
		return config.Settings{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	var applyErr error

	fs.Visit(func(fl *flag.Flag) {
		if applyErr != nil {
			return
		}

		if opts.check != "" && checkExcluded[fl.Name] {
			applyErr = fmt.Errorf(
				"-%s cannot be combined with -check", fl.Name,
			)

			return
		}

		switch fl.Name {
		case "multiline":
			st.Lines.Multiline = opts.multiline
		case "keep_empty_lines":
			st.Lines.KeepEmptyLines = opts.keepEmpty
		case "trim":
			st.Lines.Trim = opts.trim
		case "parallelism":
			st.Parallelism = opts.parallelism
		case "template":
			st.Template = opts.template
		case "algorithm":
			st.Lines.Algorithm, applyErr = digest.ParseAlgorithm(
				opts.algorithm,
			)
		case "format":
			st.Format, applyErr = report.ParseFormat(opts.format)
		}
	})

	if applyErr != nil {
		return config.Settings{}, fmt.Errorf(
			"%s: %w: %w", errCtx, config.ErrInvalid, applyErr,
		)
	}

	if err := st.Validate(); err != nil {
		return config.Settings{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	return st, nil
}

func readInput(path string, stdin io.Reader) (string, error) {
	const errCtx = "reading input"

	if path == "" {
		by, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%s: %w", errCtx, err)
		}

		return string(by), nil
	}

	by, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return string(by), nil
}

// writeOutput writes rendered followed by a newline unless it
// is empty.
func writeOutput(path string, stdout io.Writer, rendered string) error {
	const errCtx = "writing output"

	if rendered != "" {
		rendered += "\n"
	}

	if path != "" {
		//nolint:gosec // path from CLI flag
		if err := os.WriteFile(path, []byte(rendered), 0o666); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	if _, err := io.WriteString(stdout, rendered); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// checkOutput compares the plain digest list with the stored
// file at path.
func checkOutput(path string, actual string) error {
	const errCtx = "checking output"

	expected, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := report.Check(string(expected), actual); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	slog.Info("digests match", "file", path)

	return nil
}
