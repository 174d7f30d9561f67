package lines

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/byte4ever/textdigest/digest"
)

// Config selects how input is normalized and hashed. Every
// combination of fields is valid.
type Config struct {
	// Multiline digests each line separately instead of
	// the whole input.
	Multiline bool

	// KeepEmptyLines digests empty units instead of
	// dropping them.
	KeepEmptyLines bool

	// Trim strips surrounding whitespace from each unit
	// before the empty check and hashing.
	Trim bool

	// Algorithm is the hash function applied to each unit.
	Algorithm digest.Algorithm
}

// LineDigest is the digest of one kept unit.
type LineDigest struct {
	// Index is the 0-based position of the unit in the
	// split input. Always 0 in single-line mode.
	Index int

	// Text is the unit after normalization.
	Text string

	digest.Result
}

type sumFunc func(string, digest.Algorithm) (digest.Result, error)

// Processor digests input text according to a Config. The zero
// value is ready to use and safe for concurrent calls.
type Processor struct {
	// Parallelism bounds the number of lines hashed at once.
	// Values <= 0 use runtime.GOMAXPROCS(0).
	Parallelism int

	sum sumFunc
}

var defaultProcessor Processor

// Process runs the default Processor with a background context.
func Process(input string, cfg Config) (string, error) {
	return defaultProcessor.Process(
		context.Background(), input, cfg,
	)
}

// Process returns the reassembled output for input: the hex
// digests of the kept units in source order joined by "\n",
// or "" when no unit was kept.
func (pr *Processor) Process(
	ctx context.Context,
	input string,
	cfg Config,
) (string, error) {
	const errCtx = "processing input"

	lds, err := pr.Digests(ctx, input, cfg)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return Join(lds), nil
}

// Digests returns one LineDigest per kept unit, ordered by
// Index. A suppressed single-line input yields an empty slice.
func (pr *Processor) Digests(
	ctx context.Context,
	input string,
	cfg Config,
) ([]LineDigest, error) {
	const errCtx = "digesting lines"

	if !cfg.Algorithm.Valid() {
		return nil, fmt.Errorf(
			"%s: %w: %s",
			errCtx, digest.ErrUnsupportedAlgorithm, cfg.Algorithm,
		)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	units := []string{input}
	if cfg.Multiline {
		units = Split(input)
	}

	kept := selectUnits(units, cfg)

	slog.Debug(
		"selected units",
		"units", len(units),
		"kept", len(kept),
		"algorithm", cfg.Algorithm.String(),
	)

	if len(kept) == 0 {
		return []LineDigest{}, nil
	}

	if err := pr.digestAll(ctx, kept, cfg.Algorithm); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return kept, nil
}

// selectUnits normalizes units and drops the suppressed ones,
// keeping source indexes.
func selectUnits(units []string, cfg Config) []LineDigest {
	kept := make([]LineDigest, 0, len(units))

	for i, unit := range units {
		if cfg.Trim {
			unit = Trim(unit)
		}

		if unit == "" && !cfg.KeepEmptyLines {
			continue
		}

		kept = append(kept, LineDigest{Index: i, Text: unit})
	}

	return kept
}

// digestAll fills in the Result of every entry in lds. Each
// goroutine owns exactly one slot, so completion order does
// not affect the output order.
func (pr *Processor) digestAll(
	ctx context.Context,
	lds []LineDigest,
	alg digest.Algorithm,
) error {
	sum := pr.hashFunc()

	if len(lds) == 1 {
		res, err := sum(lds[0].Text, alg)
		if err != nil {
			return err
		}

		lds[0].Result = res

		return nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(pr.parallelism())

	for i := range lds {
		if egCtx.Err() != nil {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			res, err := sum(lds[i].Text, alg)
			if err != nil {
				return fmt.Errorf("line %d: %w", lds[i].Index+1, err)
			}

			lds[i].Result = res

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	// The loop may stop early without any goroutine failing.
	return ctx.Err()
}

func (pr *Processor) hashFunc() sumFunc {
	if pr.sum != nil {
		return pr.sum
	}

	return digest.Sum
}

func (pr *Processor) parallelism() int {
	if pr.Parallelism > 0 {
		return pr.Parallelism
	}

	return runtime.GOMAXPROCS(0)
}

// Join reassembles the hex digests of lds with "\n" and no
// trailing separator.
func Join(lds []LineDigest) string {
	var sb strings.Builder

	for i, ld := range lds {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(ld.Hex)
	}

	return sb.String()
}
