package digest

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"
)

// ErrUnavailable is returned when the hash primitive for an
// algorithm is not linked into the binary.
var ErrUnavailable = errors.New("hash primitive unavailable")

// Result holds a digest and its lowercase hex rendering.
type Result struct {
	Sum []byte
	Hex string
}

// NewHasher returns a fresh hash.Hash for alg.
func NewHasher(alg Algorithm) (hash.Hash, error) {
	const errCtx = "creating hasher"

	ch, ok := cryptoHashes[alg]
	if !ok {
		return nil, fmt.Errorf(
			"%s: %w: %s", errCtx, ErrUnsupportedAlgorithm, alg,
		)
	}

	if !ch.Available() {
		return nil, fmt.Errorf(
			"%s: %w: %s", errCtx, ErrUnavailable, alg,
		)
	}

	return ch.New(), nil
}

// Sum hashes the UTF-8 bytes of text with alg. Any text,
// including the empty string, is valid input. Each run of
// invalid UTF-8 bytes is hashed as one U+FFFD.
func Sum(text string, alg Algorithm) (Result, error) {
	const errCtx = "computing digest"

	ha, err := NewHasher(alg)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	// hash.Hash.Write never returns an error.
	_, _ = ha.Write([]byte(strings.ToValidUTF8(text, "\uFFFD")))

	sum := ha.Sum(nil)

	return Result{
		Sum: sum,
		Hex: hex.EncodeToString(sum),
	}, nil
}

// HexSum is Sum returning only the hex rendering.
func HexSum(text string, alg Algorithm) (string, error) {
	res, err := Sum(text, alg)
	if err != nil {
		return "", err
	}

	return res.Hex, nil
}
